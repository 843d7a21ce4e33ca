// Package cli exposes the multisig service as the multiguard command-line
// application.
package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/txwatch"

	"github.com/urfave/cli/v3"
)

// Server serves the HTTP API until ctx is done.
type Server interface {
	Serve(ctx context.Context, addr string) error
}

// Run initializes and executes the multiguard CLI application.
//
// It registers all available commands, including:
//
//   - `wallets`: Lists the wallets deployed by a creator.
//   - `info`: Shows owners, threshold and balance of a wallet.
//   - `transactions`: Lists the transactions of a wallet.
//   - `network`: Checks the chain served by the RPC provider.
//   - `calldata`: Builds unsigned calls for the factory and wallets.
//   - `watch`: Streams transaction changes of a wallet.
//   - `serve`: Runs the HTTP API.
//
// Results are written to stdout as JSON.
func Run(ctx context.Context, svc multisig.Service, watcher txwatch.Service, server Server) error {
	return newApp(svc, watcher, server).Run(ctx, os.Args)
}

func newApp(svc multisig.Service, watcher txwatch.Service, server Server) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "multiguard",
		Description:           "Read multisig wallets and prepare their transactions for signing.",
		Usage:                 "multiguard [command] [flags]",
		Commands: []*cli.Command{
			userWalletsCommand(svc),
			walletInfoCommand(svc),
			listTransactionsCommand(svc),
			networkCommand(svc),
			calldataCommand(svc),
			watchCommand(watcher),
			serveCommand(server),
		},
	}
}

// writeJSON prints v as indented JSON on the application's writer.
func writeJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
