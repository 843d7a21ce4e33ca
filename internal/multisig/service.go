// Package multisig reads multi-signature wallets deployed by a wallet factory
// and prepares the unsigned calls an external signer needs to create wallets
// and to submit, confirm and execute their transactions.
//
// Wallet owners and transactions are stored by the contracts as indexed
// collections without a length getter. They are read with the enumerate
// package, one index at a time, until the first reverted read.
package multisig

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/enumerate"
	"github.com/gabapcia/multiguard/internal/pkg/logger"
	"github.com/gabapcia/multiguard/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/multiguard/internal/multisig"

const (
	// DefaultOwnersMaxProbe matches the factory's MAX_OWNERS.
	DefaultOwnersMaxProbe = 10

	// DefaultTransactionsMaxProbe bounds the transaction list of one wallet.
	DefaultTransactionsMaxProbe = 1000

	// SepoliaChainID is the chain the contracts are deployed on by default.
	SepoliaChainID = 11155111
)

// Service reads wallets and prepares unsigned calls.
type Service interface {
	// GetWalletInfo returns the owners, threshold and balance of wallet and
	// whether user is one of its owners. An empty user is never an owner.
	GetWalletInfo(ctx context.Context, wallet, user string) (WalletInfo, error)

	// ListTransactions returns the transactions of wallet that pass filter,
	// in index order, annotated with user's confirmation state.
	ListTransactions(ctx context.Context, wallet, user string, filter Filter) ([]PendingTransaction, error)

	// UserWallets lists the wallets deployed by creator through the factory.
	UserWallets(ctx context.Context, creator string) ([]common.Address, error)

	// PrepareCreateWallet validates params and builds the factory call that
	// deploys the wallet.
	PrepareCreateWallet(ctx context.Context, params CreateWalletParams) (PreparedWallet, error)

	// PrepareSubmitTransaction builds the call proposing a transaction to wallet.
	PrepareSubmitTransaction(ctx context.Context, wallet string, params SubmitTransactionParams) (UnsignedCall, error)

	// PrepareConfirmTransaction builds the call confirming transaction index.
	PrepareConfirmTransaction(ctx context.Context, wallet string, index uint64) (UnsignedCall, error)

	// PrepareExecuteTransaction builds the call executing transaction index.
	PrepareExecuteTransaction(ctx context.Context, wallet string, index uint64) (UnsignedCall, error)

	// ValidateNetwork reports the chain served by the provider and whether it
	// is the required one.
	ValidateNetwork(ctx context.Context) (Network, error)

	// Invalidate drops every cached view of wallet.
	Invalidate(ctx context.Context, wallet string) error
}

type service struct {
	contracts Contracts
	encoder   CallEncoder
	cfg       config

	tracer trace.Tracer
	probes metric.Int64Histogram
}

var _ Service = (*service)(nil)

type config struct {
	ownersMaxProbe       uint64
	transactionsMaxProbe uint64
	stopOnSentinel       bool
	requiredChainID      uint64

	cache           Cache
	walletInfoTTL   time.Duration
	transactionsTTL time.Duration
	userWalletsTTL  time.Duration

	retry retry.Retry
}

// Option configures the service.
type Option func(*config)

// New returns a Service reading through contracts and encoding calls with
// encoder.
//
// Defaults:
//   - owners max probe:       10
//   - transactions max probe: 1000
//   - stop on sentinel:       off
//   - required chain:         Sepolia (11155111)
//   - cache:                  none
//   - TTLs:                   30s wallet info, 30s transactions, 5m user wallets
//   - retry:                  3 attempts from 200ms, reverted calls not retried
func New(contracts Contracts, encoder CallEncoder, opts ...Option) *service {
	cfg := config{
		ownersMaxProbe:       DefaultOwnersMaxProbe,
		transactionsMaxProbe: DefaultTransactionsMaxProbe,
		requiredChainID:      SepoliaChainID,
		cache:                nopCache{},
		walletInfoTTL:        30 * time.Second,
		transactionsTTL:      30 * time.Second,
		userWalletsTTL:       5 * time.Minute,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithRetryIf(IsRetryable),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	probes, err := otel.Meter(instrumentationName).Int64Histogram(
		"multiguard.enumerate.probes",
		metric.WithDescription("Number of indices read to enumerate one collection."),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		probes = noop.Int64Histogram{}
	}

	return &service{
		contracts: contracts,
		encoder:   encoder,
		cfg:       cfg,
		tracer:    otel.Tracer(instrumentationName),
		probes:    probes,
	}
}

// IsRetryable reports whether a failed read is worth another attempt. A
// reverted call gives the same answer every time.
func IsRetryable(err error) bool {
	return !errors.Is(err, ErrCallReverted) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// WithOwnersMaxProbe caps the owner enumeration. Zero means unbounded.
// Default: 10.
func WithOwnersMaxProbe(n uint64) Option {
	return func(c *config) {
		c.ownersMaxProbe = n
	}
}

// WithTransactionsMaxProbe caps the transaction enumeration. Zero means
// unbounded. Default: 1000.
func WithTransactionsMaxProbe(n uint64) Option {
	return func(c *config) {
		c.transactionsMaxProbe = n
	}
}

// WithStopOnSentinel ends enumerations at the first zero-valued element
// (zero owner address or empty transaction) as well as at the first revert.
func WithStopOnSentinel(enabled bool) Option {
	return func(c *config) {
		c.stopOnSentinel = enabled
	}
}

// WithRequiredChainID sets the chain the Prepare operations require.
// Default: 11155111 (Sepolia).
func WithRequiredChainID(id uint64) Option {
	return func(c *config) {
		c.requiredChainID = id
	}
}

// WithCache stores read views in cache.
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithCacheTTL sets how long wallet info, transaction lists and user wallet
// lists stay cached. Zero keeps the current value.
func WithCacheTTL(walletInfo, transactions, userWallets time.Duration) Option {
	return func(c *config) {
		if walletInfo > 0 {
			c.walletInfoTTL = walletInfo
		}
		if transactions > 0 {
			c.transactionsTTL = transactions
		}
		if userWallets > 0 {
			c.userWalletsTTL = userWallets
		}
	}
}

// WithRetry sets the retry policy of scalar reads.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// uint64Attr keeps the full uint64 range, which an Int64 attribute would wrap.
func uint64Attr(key string, v uint64) attribute.KeyValue {
	return attribute.String(key, strconv.FormatUint(v, 10))
}

func (s *service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "multisig."+name, trace.WithAttributes(attrs...))
}

// fail records err on span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *service) enumerateOptions(maxProbe uint64) []enumerate.Option {
	opts := []enumerate.Option{enumerate.WithMaxProbe(maxProbe)}
	if s.cfg.stopOnSentinel {
		opts = append(opts, enumerate.WithStopOnSentinel())
	}
	return opts
}

// observeEnumeration records how collection was enumerated. A read that ended
// the collection without reverting is logged, since it can hide a broken
// provider behind a short list.
func observeEnumeration[T any](ctx context.Context, s *service, collection string, seq *enumerate.Sequence[T]) {
	s.probes.Record(ctx, int64(seq.Probes()), metric.WithAttributes(
		attribute.String("collection", collection),
		attribute.String("termination", seq.Termination().String()),
	))

	if err := seq.Err(); err != nil && seq.Termination() == enumerate.EndOfCollection && !errors.Is(err, ErrCallReverted) {
		logger.Warn(ctx, "enumeration ended by a failed read",
			"enumeration.collection", collection,
			"enumeration.probes", seq.Probes(),
			"error", err,
		)
	}
}

// read runs a scalar read with the configured retry policy.
func (s *service) read(ctx context.Context, op func() error) error {
	return s.cfg.retry.Execute(ctx, op)
}

// loadCached reports whether key was found in the cache. Cache failures are
// logged and treated as misses.
func (s *service) loadCached(ctx context.Context, key string, dst any) bool {
	err := s.cfg.cache.Load(ctx, key, dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrCacheMiss):
		return false
	default:
		logger.Warn(ctx, "cache load failed", "cache.key", key, "error", err)
		return false
	}
}

func (s *service) storeCached(ctx context.Context, key string, v any, ttl time.Duration) {
	if err := s.cfg.cache.Store(ctx, key, v, ttl); err != nil {
		logger.Warn(ctx, "cache store failed", "cache.key", key, "error", err)
	}
}

// Invalidate implements Service.
func (s *service) Invalidate(ctx context.Context, wallet string) error {
	ctx, span := s.startSpan(ctx, "Invalidate", attribute.String("wallet", wallet))
	defer span.End()

	walletAddr, err := parseAddress("wallet", wallet)
	if err != nil {
		return fail(span, err)
	}

	if err := s.cfg.cache.Purge(ctx, walletPrefix(walletAddr)); err != nil {
		return fail(span, err)
	}

	return nil
}
