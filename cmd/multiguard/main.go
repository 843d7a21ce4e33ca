// Command multiguard reads multisig wallets deployed by a wallet factory and
// prepares unsigned calls for them, from the command line or over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/handlers/cli"
	httpapi "github.com/gabapcia/multiguard/internal/handlers/http"
	"github.com/gabapcia/multiguard/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/multiguard/internal/infra/storage/redis"
	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/logger"
	"github.com/gabapcia/multiguard/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/multiguard/internal/pkg/transport/http"
	"github.com/gabapcia/multiguard/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/multiguard/internal/txwatch"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpOpts := []transporthttp.Option{
		transporthttp.WithTimeout(cfg.RPCTimeout),
		transporthttp.WithRetryMax(cfg.RPCRetryMax),
	}
	if cfg.LogLevel == "debug" {
		httpOpts = append(httpOpts, transporthttp.WithRequestLogging())
	}

	conn := jsonrpc.NewClient(transporthttp.NewStandardClient(httpOpts...), cfg.RPCURL)
	contracts := ethereum.NewClient(conn, common.HexToAddress(cfg.FactoryAddress))

	serviceOpts := []multisig.Option{
		multisig.WithOwnersMaxProbe(cfg.MaxOwnersProbe),
		multisig.WithTransactionsMaxProbe(cfg.MaxTransactionsProbe),
		multisig.WithStopOnSentinel(cfg.StopOnSentinel),
		multisig.WithRequiredChainID(cfg.RequiredChainID),
		multisig.WithCacheTTL(cfg.WalletInfoTTL, cfg.TransactionsTTL, cfg.UserWalletsTTL),
	}
	watchOpts := []txwatch.Option{
		txwatch.WithInterval(cfg.WatchInterval),
	}

	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer store.Close()

		serviceOpts = append(serviceOpts, multisig.WithCache(store))
		watchOpts = append(watchOpts, txwatch.WithCheckpointStorage(store))
	}

	svc := multisig.New(contracts, contracts, serviceOpts...)
	watcher := txwatch.New(svc, watchOpts...)

	gin.SetMode(gin.ReleaseMode)
	server := httpapi.NewServer(svc)

	return cli.Run(ctx, svc, watcher, server)
}
