// Package txwatch polls a multisig wallet and reports changes to its
// transactions: new submissions, new confirmations, transactions reaching
// the threshold and executions.
package txwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/logger"
	"github.com/gabapcia/multiguard/internal/pkg/resilience/retry"
	"github.com/gabapcia/multiguard/internal/pkg/validator"
	"github.com/gabapcia/multiguard/internal/pkg/x/chflow"
)

const (
	// DefaultInterval is roughly one Ethereum block.
	DefaultInterval = 12 * time.Second

	eventChannelBufferSize = 10
)

// Wallets is the subset of multisig.Service the watcher reads from.
type Wallets interface {
	ListTransactions(ctx context.Context, wallet, user string, filter multisig.Filter) ([]multisig.PendingTransaction, error)
	Invalidate(ctx context.Context, wallet string) error
}

// Service watches wallets for transaction changes.
type Service interface {
	// Watch starts polling wallet and returns a channel of events. user,
	// when set, fills the per-user confirmation flag of each transaction.
	// The channel is closed once ctx is canceled.
	Watch(ctx context.Context, wallet, user string) (<-chan Event, error)
}

type config struct {
	interval          time.Duration
	retry             retry.Retry
	checkpointStorage CheckpointStorage
	announceExisting  bool
}

// Option configures the watcher.
type Option func(*config)

type service struct {
	wallets Wallets
	cfg     config
}

var _ Service = (*service)(nil)

// New returns a watcher reading from wallets.
func New(wallets Wallets, opts ...Option) *service {
	cfg := config{
		interval: DefaultInterval,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(time.Second),
			retry.WithMaxDelay(5*time.Second),
			retry.WithRetryIf(multisig.IsRetryable),
		),
		checkpointStorage: nopCheckpoint{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallets: wallets,
		cfg:     cfg,
	}
}

// WithInterval sets the time between refreshes. Non-positive values are
// ignored.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithRetry sets the retry policy of each refresh.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCheckpointStorage persists snapshots between runs.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithAnnounceExisting reports the transactions found on the first refresh
// as submitted when no checkpoint exists.
func WithAnnounceExisting(b bool) Option {
	return func(c *config) {
		c.announceExisting = b
	}
}

// Watch implements Service.
func (s *service) Watch(ctx context.Context, wallet, user string) (<-chan Event, error) {
	if err := validator.Var(wallet, "required,eth_addr"); err != nil {
		return nil, fmt.Errorf("%w: wallet: %w", multisig.ErrInvalidAddress, err)
	}

	if user != "" {
		if err := validator.Var(user, "eth_addr"); err != nil {
			return nil, fmt.Errorf("%w: user: %w", multisig.ErrInvalidAddress, err)
		}
	}

	address := common.HexToAddress(wallet)
	ctx = logger.Derive(ctx, "wallet.address", address.Hex())

	snapshot, err := s.cfg.checkpointStorage.LoadCheckpoint(ctx, address)
	if err != nil && !errors.Is(err, ErrNoCheckpointFound) {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}

	events := make(chan Event, eventChannelBufferSize)
	go s.run(ctx, address, user, snapshot, events)

	return events, nil
}

// run refreshes the wallet until ctx is done, then closes events.
func (s *service) run(ctx context.Context, wallet common.Address, user string, snapshot Snapshot, events chan<- Event) {
	defer close(events)

	ticker := time.NewTicker(s.cfg.interval)
	defer ticker.Stop()

	logger.Info(ctx, "transaction watch started", "watch.interval", s.cfg.interval.String())
	for {
		var ok bool
		if snapshot, ok = s.refresh(ctx, wallet, user, snapshot, events); !ok {
			logger.Info(ctx, "transaction watch stopped")
			return
		}

		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			logger.Info(ctx, "transaction watch stopped")
			return
		}
	}
}

// refresh lists the wallet's transactions, emits the changes since snapshot
// and returns the new snapshot. It returns false once ctx is done.
func (s *service) refresh(ctx context.Context, wallet common.Address, user string, snapshot Snapshot, events chan<- Event) (Snapshot, bool) {
	var txs []multisig.PendingTransaction
	err := s.cfg.retry.Execute(ctx, func() error {
		if err := s.wallets.Invalidate(ctx, wallet.Hex()); err != nil {
			logger.Warn(ctx, "could not invalidate cached wallet views", "error", err)
		}

		var err error
		txs, err = s.wallets.ListTransactions(ctx, wallet.Hex(), user, multisig.FilterAll)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return snapshot, false
		}

		logger.Error(ctx, "transaction refresh failed", "error", err)
		failure := Event{Type: EventRefreshFailed, Wallet: wallet.Hex(), Err: err}
		return snapshot, chflow.Send(ctx, events, failure)
	}

	changes, next := diff(wallet.Hex(), snapshot, txs, s.cfg.announceExisting)
	for _, event := range changes {
		if !chflow.Send(ctx, events, event) {
			return snapshot, false
		}
	}

	if changed(snapshot, next) {
		if err := s.cfg.checkpointStorage.SaveCheckpoint(ctx, wallet, next); err != nil {
			logger.Warn(ctx, "could not save transaction checkpoint", "error", err)
		}
	}

	logger.Debug(ctx, "transactions refreshed", "transactions.count", len(txs), "events.count", len(changes))
	return next, true
}
