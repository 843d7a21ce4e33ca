package multisig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ErrCacheMiss is returned by Cache.Load when key holds no value.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores read views for a limited time.
type Cache interface {
	// Load decodes the value stored under key into dst. It returns
	// ErrCacheMiss when the key is absent or expired.
	Load(ctx context.Context, key string, dst any) error

	// Store saves v under key for ttl.
	Store(ctx context.Context, key string, v any, ttl time.Duration) error

	// Purge removes every key starting with prefix.
	Purge(ctx context.Context, prefix string) error
}

// nopCache never holds anything.
type nopCache struct{}

var _ Cache = nopCache{}

func (nopCache) Load(context.Context, string, any) error { return ErrCacheMiss }

func (nopCache) Store(context.Context, string, any, time.Duration) error { return nil }

func (nopCache) Purge(context.Context, string) error { return nil }

func walletPrefix(wallet common.Address) string {
	return fmt.Sprintf("wallet:%s:", wallet.Hex())
}

func walletInfoKey(wallet, user common.Address) string {
	return walletPrefix(wallet) + "info:" + user.Hex()
}

func transactionsKey(wallet, user common.Address) string {
	return walletPrefix(wallet) + "transactions:" + user.Hex()
}

func creatorWalletsKey(creator common.Address) string {
	return fmt.Sprintf("creator:%s:wallets", creator.Hex())
}
