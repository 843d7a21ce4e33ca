package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gabapcia/multiguard/internal/multisig"
)

// toUint64 converts a uint256 output that must fit in 64 bits.
func toUint64(method string, v *big.Int) (uint64, error) {
	if v == nil || !v.IsUint64() {
		return 0, fmt.Errorf("%s: value %v does not fit in uint64", method, v)
	}
	return v.Uint64(), nil
}

// FactoryAddress implements multisig.Contracts.
func (c *client) FactoryAddress() common.Address {
	return c.factory
}

// Owner implements multisig.Contracts.
func (c *client) Owner(ctx context.Context, wallet common.Address, index uint64) (common.Address, error) {
	values, err := c.callValues(ctx, &multiSigWalletABI, wallet, "owners", new(big.Int).SetUint64(index))
	if err != nil {
		return common.Address{}, err
	}

	return value[common.Address](values, 0)
}

// transactionOutput mirrors the outputs of the transactions getter.
type transactionOutput struct {
	To               common.Address
	Value            *big.Int
	Data             []byte
	Executed         bool
	NumConfirmations *big.Int
}

// Transaction implements multisig.Contracts.
func (c *client) Transaction(ctx context.Context, wallet common.Address, index uint64) (multisig.Transaction, error) {
	output, err := c.call(ctx, &multiSigWalletABI, wallet, "transactions", new(big.Int).SetUint64(index))
	if err != nil {
		return multisig.Transaction{}, err
	}

	var out transactionOutput
	if err := multiSigWalletABI.UnpackIntoInterface(&out, "transactions", output); err != nil {
		return multisig.Transaction{}, fmt.Errorf("unpack transactions: %w", err)
	}

	confirmations, err := toUint64("transactions", out.NumConfirmations)
	if err != nil {
		return multisig.Transaction{}, err
	}

	return multisig.Transaction{
		Index:            index,
		To:               out.To,
		Value:            out.Value,
		Data:             out.Data,
		Executed:         out.Executed,
		NumConfirmations: confirmations,
	}, nil
}

// Threshold implements multisig.Contracts.
func (c *client) Threshold(ctx context.Context, wallet common.Address) (uint64, error) {
	values, err := c.callValues(ctx, &multiSigWalletABI, wallet, "threshold")
	if err != nil {
		return 0, err
	}

	threshold, err := value[*big.Int](values, 0)
	if err != nil {
		return 0, err
	}

	return toUint64("threshold", threshold)
}

// IsOwner implements multisig.Contracts.
func (c *client) IsOwner(ctx context.Context, wallet, account common.Address) (bool, error) {
	values, err := c.callValues(ctx, &multiSigWalletABI, wallet, "isOwner", account)
	if err != nil {
		return false, err
	}

	return value[bool](values, 0)
}

// IsConfirmed implements multisig.Contracts.
func (c *client) IsConfirmed(ctx context.Context, wallet common.Address, index uint64, owner common.Address) (bool, error) {
	values, err := c.callValues(ctx, &multiSigWalletABI, wallet, "confirmations", new(big.Int).SetUint64(index), owner)
	if err != nil {
		return false, err
	}

	return value[bool](values, 0)
}

// Balance implements multisig.Contracts.
func (c *client) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	raw, err := c.conn.Fetch(ctx, "eth_getBalance", account, "latest")
	if err != nil {
		return nil, err
	}

	var balance hexutil.Big
	if err := json.Unmarshal(raw, &balance); err != nil {
		return nil, fmt.Errorf("decode eth_getBalance result: %w", err)
	}

	return balance.ToInt(), nil
}

// ChainID implements multisig.Contracts.
func (c *client) ChainID(ctx context.Context) (uint64, error) {
	raw, err := c.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return 0, err
	}

	var chainID hexutil.Uint64
	if err := json.Unmarshal(raw, &chainID); err != nil {
		return 0, fmt.Errorf("decode eth_chainId result: %w", err)
	}

	return uint64(chainID), nil
}

// WalletsByCreator implements multisig.Contracts.
func (c *client) WalletsByCreator(ctx context.Context, creator common.Address) ([]common.Address, error) {
	values, err := c.callValues(ctx, &walletFactoryABI, c.factory, "getWalletsByCreator", creator)
	if err != nil {
		return nil, err
	}

	return value[[]common.Address](values, 0)
}

// OwnerLimits implements multisig.Contracts.
func (c *client) OwnerLimits(ctx context.Context) (uint64, uint64, error) {
	limit := func(method string) (uint64, error) {
		values, err := c.callValues(ctx, &walletFactoryABI, c.factory, method)
		if err != nil {
			return 0, err
		}

		v, err := value[*big.Int](values, 0)
		if err != nil {
			return 0, err
		}

		return toUint64(method, v)
	}

	minOwners, err := limit("MIN_OWNERS")
	if err != nil {
		return 0, 0, err
	}

	maxOwners, err := limit("MAX_OWNERS")
	if err != nil {
		return 0, 0, err
	}

	return minOwners, maxOwners, nil
}

// PredictWalletAddress implements multisig.Contracts.
func (c *client) PredictWalletAddress(ctx context.Context, creator common.Address, owners []common.Address, threshold uint64) (common.Address, common.Hash, error) {
	values, err := c.callValues(ctx, &walletFactoryABI, c.factory, "predictWalletAddress", creator, owners, new(big.Int).SetUint64(threshold))
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	predicted, err := value[common.Address](values, 0)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	salt, err := value[[32]byte](values, 1)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	return predicted, common.Hash(salt), nil
}

// EncodeCreateWallet implements multisig.CallEncoder.
func (c *client) EncodeCreateWallet(owners []common.Address, threshold uint64) ([]byte, error) {
	return walletFactoryABI.Pack("createWallet", owners, new(big.Int).SetUint64(threshold))
}

// EncodeSubmitTransaction implements multisig.CallEncoder.
func (c *client) EncodeSubmitTransaction(to common.Address, amount *big.Int, data []byte) ([]byte, error) {
	if amount == nil {
		amount = new(big.Int)
	}
	if data == nil {
		data = []byte{}
	}
	return multiSigWalletABI.Pack("submitTransaction", to, amount, data)
}

// EncodeConfirmTransaction implements multisig.CallEncoder.
func (c *client) EncodeConfirmTransaction(index uint64) ([]byte, error) {
	return multiSigWalletABI.Pack("confirmTransaction", new(big.Int).SetUint64(index))
}

// EncodeExecuteTransaction implements multisig.CallEncoder.
func (c *client) EncodeExecuteTransaction(index uint64) ([]byte, error) {
	return multiSigWalletABI.Pack("executeTransaction", new(big.Int).SetUint64(index))
}
