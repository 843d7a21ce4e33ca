// Package retry runs operations that may fail temporarily, such as contract
// reads against a flaky RPC node. It wraps avast/retry-go with exponential
// backoff and exposes functional options.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithRetryIf(isTransient))
//	err := r.Execute(ctx, func() error {
//	    threshold, err = contracts.Threshold(ctx, wallet)
//	    return err
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is not retryable, or ctx is done. The operation must be safe
	// to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts, including the first
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // upper bound for the backoff delay
	lastErrOnly bool             // whether to return only the last error
	retryIf     func(error) bool // nil retries every error
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with exponential backoff.
//
// Defaults:
//   - attempts:    3
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. The first attempt runs immediately.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly selects between returning the last error (true) and all
// attempt errors combined (false). Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which fn returns true. Other
// errors are returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
