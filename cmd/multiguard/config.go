package main

import (
	"fmt"
	"time"

	"github.com/gabapcia/multiguard/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read by loadConfig.
const envPrefix = "MULTIGUARD"

type config struct {
	RPCURL          string        `envconfig:"RPC_URL" required:"true"`
	RPCTimeout      time.Duration `envconfig:"RPC_TIMEOUT" default:"5s"`
	RPCRetryMax     int           `envconfig:"RPC_RETRY_MAX" default:"2"`
	FactoryAddress  string        `envconfig:"FACTORY_ADDRESS" required:"true"`
	RequiredChainID uint64        `envconfig:"REQUIRED_CHAIN_ID" default:"11155111"`

	MaxOwnersProbe       uint64 `envconfig:"MAX_OWNERS_PROBE" default:"10"`
	MaxTransactionsProbe uint64 `envconfig:"MAX_TRANSACTIONS_PROBE" default:"1000"`
	StopOnSentinel       bool   `envconfig:"STOP_ON_SENTINEL" default:"false"`

	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisUsername   string        `envconfig:"REDIS_USERNAME"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"REDIS_DB" default:"0"`
	WalletInfoTTL   time.Duration `envconfig:"WALLET_INFO_TTL" default:"30s"`
	TransactionsTTL time.Duration `envconfig:"TRANSACTIONS_TTL" default:"30s"`
	UserWalletsTTL  time.Duration `envconfig:"USER_WALLETS_TTL" default:"5m"`

	WatchInterval time.Duration `envconfig:"WATCH_INTERVAL" default:"12s"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"multiguard"`
}

// loadConfig reads the configuration from MULTIGUARD_* environment variables.
func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	if err := validator.Var(cfg.FactoryAddress, "eth_addr"); err != nil {
		return config{}, fmt.Errorf("%s_FACTORY_ADDRESS: %w", envPrefix, err)
	}

	if err := validator.Var(cfg.RPCURL, "url"); err != nil {
		return config{}, fmt.Errorf("%s_RPC_URL: %w", envPrefix, err)
	}

	return cfg, nil
}
