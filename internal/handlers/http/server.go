// Package http serves the multisig service over a JSON HTTP API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultRequestTimeout    = 30 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

type config struct {
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
}

// Option configures the server.
type Option func(*config)

// WithRequestTimeout bounds the time spent serving one request.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// WithShutdownTimeout bounds the time Serve waits for in-flight requests
// once its context is done.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

type server struct {
	svc    multisig.Service
	engine *gin.Engine
	cfg    config
}

// NewServer builds the API router on top of svc.
func NewServer(svc multisig.Service, opts ...Option) *server {
	cfg := config{
		requestTimeout:  defaultRequestTimeout,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &server{
		svc: svc,
		cfg: cfg,
	}
	s.engine = s.routes()

	return s
}

// Handler returns the router.
func (s *server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info(ctx, "http server listening", "http.addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "http server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *server) routes() *gin.Engine {
	router := gin.New()
	router.Use(
		requestID(),
		recovery(),
		logRequests(),
		timeout(s.cfg.requestTimeout),
	)

	v1 := router.Group("/v1")
	v1.GET("/network", s.network)
	v1.GET("/creators/:creator/wallets", s.userWallets)
	v1.POST("/factory/calls/create", s.prepareCreateWallet)

	wallet := v1.Group("/wallets/:wallet")
	wallet.GET("", s.walletInfo)
	wallet.GET("/transactions", s.listTransactions)
	wallet.DELETE("/cache", s.invalidate)
	wallet.POST("/calls/submit", s.prepareSubmitTransaction)
	wallet.POST("/calls/confirm", s.prepareConfirmTransaction)
	wallet.POST("/calls/execute", s.prepareExecuteTransaction)

	return router
}
