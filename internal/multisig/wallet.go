package multisig

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrCallReverted is returned by Contracts when a read call reverted. For
	// indexed getters this is how the contract reports an index past the end.
	ErrCallReverted = errors.New("contract call reverted")

	// ErrInvalidAddress is returned for malformed or zero addresses.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrDuplicateOwner is returned when an owner appears twice.
	ErrDuplicateOwner = errors.New("duplicate owner")

	// ErrOwnerCount is returned when the owner list is outside the factory limits.
	ErrOwnerCount = errors.New("owner count out of range")

	// ErrInvalidThreshold is returned when the threshold is zero or exceeds the owner count.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrWrongNetwork is returned when the RPC provider serves another chain.
	ErrWrongNetwork = errors.New("wrong network")

	// ErrTransactionNotFound is returned when a transaction index does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAlreadyExecuted is returned when acting on an executed transaction.
	ErrAlreadyExecuted = errors.New("transaction already executed")

	// ErrNotExecutable is returned when a transaction lacks confirmations.
	ErrNotExecutable = errors.New("transaction does not have enough confirmations")

	// ErrInvalidFilter is returned for an unknown transaction filter.
	ErrInvalidFilter = errors.New("invalid transaction filter")
)

// Transaction is one entry of a wallet's transaction list, as stored by the
// multisig contract.
type Transaction struct {
	Index            uint64         `json:"index"`
	To               common.Address `json:"to"`
	Value            *big.Int       `json:"value"`
	Data             hexutil.Bytes  `json:"data"`
	Executed         bool           `json:"executed"`
	NumConfirmations uint64         `json:"numConfirmations"`
}

// IsZero reports whether t holds only default values, which is what the
// contract returns for a slot that was never written.
func (t Transaction) IsZero() bool {
	return t.To == (common.Address{}) &&
		(t.Value == nil || t.Value.Sign() == 0) &&
		len(t.Data) == 0 &&
		!t.Executed &&
		t.NumConfirmations == 0
}

// WalletInfo summarizes a multisig wallet.
type WalletInfo struct {
	Address      common.Address   `json:"address"`
	Owners       []common.Address `json:"owners"`
	Threshold    uint64           `json:"threshold"`
	Balance      *big.Int         `json:"balance"`
	BalanceEther string           `json:"balanceEther"`
	IsOwner      bool             `json:"isOwner"`
}

// PendingTransaction is a Transaction seen from one owner's point of view.
type PendingTransaction struct {
	Transaction
	ValueEther        string `json:"valueEther"`
	Threshold         uint64 `json:"threshold"`
	IsConfirmedByUser bool   `json:"isConfirmedByUser"`
	CanExecute        bool   `json:"canExecute"`
}

// UnsignedCall is a contract call ready to be signed and broadcast by an
// external wallet.
type UnsignedCall struct {
	To    common.Address `json:"to"`
	Value *big.Int       `json:"value"`
	Data  hexutil.Bytes  `json:"data"`
}

// PreparedWallet is the factory call that creates a wallet, with the address
// the wallet will be deployed at when a creator was given.
type PreparedWallet struct {
	Call             UnsignedCall    `json:"call"`
	PredictedAddress *common.Address `json:"predictedAddress,omitempty"`
	Salt             *common.Hash    `json:"salt,omitempty"`
}

// CreateWalletParams describes a wallet to be created by the factory.
type CreateWalletParams struct {
	Creator   string   `json:"creator" validate:"omitempty,eth_addr"`
	Owners    []string `json:"owners"`
	Threshold uint64   `json:"threshold"`
}

// SubmitTransactionParams describes a transaction proposed to a wallet.
type SubmitTransactionParams struct {
	To    string `json:"to" validate:"required,eth_addr"`
	Value string `json:"value" validate:"required,ether"`
	Data  string `json:"data" validate:"hexdata"`
}

// Filter selects which transactions ListTransactions returns.
type Filter string

const (
	// FilterAll returns every transaction.
	FilterAll Filter = "all"

	// FilterPending returns transactions not yet executed.
	FilterPending Filter = "pending"

	// FilterExecutable returns transactions that can be executed now.
	FilterExecutable Filter = "executable"
)

// ParseFilter parses a filter name. An empty name means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterExecutable:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

// match reports whether tx passes f.
func (f Filter) match(tx PendingTransaction) bool {
	switch f {
	case FilterPending:
		return !tx.Executed
	case FilterExecutable:
		return tx.CanExecute
	default:
		return true
	}
}

// Contracts reads the wallet factory and multisig wallet contracts.
type Contracts interface {
	// FactoryAddress returns the address of the wallet factory.
	FactoryAddress() common.Address

	// Owner reads owners(index) of wallet. It fails with ErrCallReverted
	// past the last owner.
	Owner(ctx context.Context, wallet common.Address, index uint64) (common.Address, error)

	// Transaction reads transactions(index) of wallet. It fails with
	// ErrCallReverted past the last transaction.
	Transaction(ctx context.Context, wallet common.Address, index uint64) (Transaction, error)

	// Threshold reads the number of confirmations required by wallet.
	Threshold(ctx context.Context, wallet common.Address) (uint64, error)

	// IsOwner reports whether account owns wallet.
	IsOwner(ctx context.Context, wallet, account common.Address) (bool, error)

	// IsConfirmed reports whether owner confirmed transaction index.
	IsConfirmed(ctx context.Context, wallet common.Address, index uint64, owner common.Address) (bool, error)

	// Balance returns the native balance of account in wei.
	Balance(ctx context.Context, account common.Address) (*big.Int, error)

	// ChainID returns the chain id served by the provider.
	ChainID(ctx context.Context) (uint64, error)

	// WalletsByCreator lists the wallets deployed by creator through the factory.
	WalletsByCreator(ctx context.Context, creator common.Address) ([]common.Address, error)

	// OwnerLimits reads the factory's MIN_OWNERS and MAX_OWNERS.
	OwnerLimits(ctx context.Context) (minOwners, maxOwners uint64, err error)

	// PredictWalletAddress returns the address createWallet would deploy to.
	PredictWalletAddress(ctx context.Context, creator common.Address, owners []common.Address, threshold uint64) (common.Address, common.Hash, error)
}

// CallEncoder builds calldata for the state-changing contract methods.
type CallEncoder interface {
	EncodeCreateWallet(owners []common.Address, threshold uint64) ([]byte, error)
	EncodeSubmitTransaction(to common.Address, value *big.Int, data []byte) ([]byte, error)
	EncodeConfirmTransaction(index uint64) ([]byte, error)
	EncodeExecuteTransaction(index uint64) ([]byte, error)
}
