// Package http builds the retrying HTTP client used to reach RPC providers.
// It wraps HashiCorp's retryablehttp.Client and exposes functional options
// for timeouts, retry behavior and request logging.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/multiguard/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout        time.Duration // maximum duration for a single HTTP request
	retryWaitMin   time.Duration // minimum delay between retry attempts
	retryWaitMax   time.Duration // maximum delay between retry attempts
	retryMax       int           // maximum number of retry attempts
	requestLogging bool          // forward retryablehttp logs to the logger package
}

// Option configures the HTTP client.
type Option func(*config)

// leveledLogger forwards retryablehttp's logs to the global logger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Info(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

// NewClient creates a retryablehttp.Client. Defaults:
//
//   - timeout:        5 seconds
//   - retryWaitMin:   1 second
//   - retryWaitMax:   5 seconds
//   - retryMax:       2 retries
//   - requestLogging: off
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.requestLogging {
		client.Logger = leveledLogger{}
	}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// NewStandardClient returns a *http.Client backed by a retryablehttp.Client
// built with opts.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the maximum duration of a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retries for failed requests.
// Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRequestLogging forwards retryablehttp's request logs to the logger
// package. The logger must be initialized first.
func WithRequestLogging() Option {
	return func(c *config) {
		c.requestLogging = true
	}
}
