package multisig

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/enumerate"
	"github.com/gabapcia/multiguard/internal/pkg/ethunit"
	"github.com/gabapcia/multiguard/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
)

// owners enumerates the owners of wallet. A wallet whose first owners read
// fails has no owners. The list is discarded once ctx is done, since it may
// have been cut short.
func (s *service) owners(ctx context.Context, wallet common.Address) ([]common.Address, error) {
	seq := enumerate.Fetch(ctx, func(ctx context.Context, index uint64) (common.Address, error) {
		return s.contracts.Owner(ctx, wallet, index)
	}, s.enumerateOptions(s.cfg.ownersMaxProbe)...)

	owners := seq.Collect()
	observeEnumeration(ctx, s, "owners", seq)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enumerate owners: %w", err)
	}

	return owners, nil
}

// GetWalletInfo implements Service.
func (s *service) GetWalletInfo(ctx context.Context, wallet, user string) (WalletInfo, error) {
	ctx, span := s.startSpan(ctx, "GetWalletInfo", attribute.String("wallet", wallet), attribute.String("user", user))
	defer span.End()

	walletAddr, err := parseAddress("wallet", wallet)
	if err != nil {
		return WalletInfo{}, fail(span, err)
	}

	userAddr, err := parseOptionalAddress("user", user)
	if err != nil {
		return WalletInfo{}, fail(span, err)
	}

	ctx = logger.Derive(ctx, "wallet.address", walletAddr.Hex())

	key := walletInfoKey(walletAddr, userAddr)
	var info WalletInfo
	if s.loadCached(ctx, key, &info) {
		return info, nil
	}

	var threshold uint64
	if err := s.read(ctx, func() (err error) {
		threshold, err = s.contracts.Threshold(ctx, walletAddr)
		return err
	}); err != nil {
		return WalletInfo{}, fail(span, fmt.Errorf("read threshold: %w", err))
	}

	var balance *big.Int
	if err := s.read(ctx, func() (err error) {
		balance, err = s.contracts.Balance(ctx, walletAddr)
		return err
	}); err != nil {
		return WalletInfo{}, fail(span, fmt.Errorf("read balance: %w", err))
	}

	var isOwner bool
	if userAddr != (common.Address{}) {
		if err := s.read(ctx, func() (err error) {
			isOwner, err = s.contracts.IsOwner(ctx, walletAddr, userAddr)
			return err
		}); err != nil {
			return WalletInfo{}, fail(span, fmt.Errorf("read owner status: %w", err))
		}
	}

	if balance == nil {
		balance = new(big.Int)
	}

	owners, err := s.owners(ctx, walletAddr)
	if err != nil {
		return WalletInfo{}, fail(span, err)
	}

	info = WalletInfo{
		Address:      walletAddr,
		Owners:       owners,
		Threshold:    threshold,
		Balance:      balance,
		BalanceEther: ethunit.FormatEther(balance),
		IsOwner:      isOwner,
	}

	s.storeCached(ctx, key, info, s.cfg.walletInfoTTL)
	return info, nil
}

// UserWallets implements Service.
func (s *service) UserWallets(ctx context.Context, creator string) ([]common.Address, error) {
	ctx, span := s.startSpan(ctx, "UserWallets", attribute.String("creator", creator))
	defer span.End()

	creatorAddr, err := parseAddress("creator", creator)
	if err != nil {
		return nil, fail(span, err)
	}

	key := creatorWalletsKey(creatorAddr)
	var wallets []common.Address
	if s.loadCached(ctx, key, &wallets) && wallets != nil {
		return wallets, nil
	}

	if err := s.read(ctx, func() (err error) {
		wallets, err = s.contracts.WalletsByCreator(ctx, creatorAddr)
		return err
	}); err != nil {
		return nil, fail(span, fmt.Errorf("read wallets by creator: %w", err))
	}

	if wallets == nil {
		wallets = []common.Address{}
	}

	s.storeCached(ctx, key, wallets, s.cfg.userWalletsTTL)
	return wallets, nil
}
