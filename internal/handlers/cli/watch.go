package cli

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/gabapcia/multiguard/internal/txwatch"

	"github.com/urfave/cli/v3"
)

// watchCommand returns a CLI command that streams transaction changes of a
// wallet as JSON lines.
//
// Usage example:
//
//	multiguard watch --wallet 0xABC123...
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchCommand(watcher txwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Poll a multisig wallet and print every transaction change.",
		Usage:       "Streams wallet transaction events. Terminates gracefully on Ctrl+C or termination signals.",
		Flags:       []cli.Flag{walletFlag(), userFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			events, err := watcher.Watch(ctx, c.String("wallet"), c.String("user"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			for event := range events {
				if err := enc.Encode(event); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// serveCommand returns a CLI command that runs the HTTP API.
//
// Usage example:
//
//	multiguard serve --addr :8080
//
// The server shuts down gracefully on SIGINT or SIGTERM.
func serveCommand(server Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serve the wallet read API and call preparation endpoints over HTTP.",
		Usage:       "Runs the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to listen on",
				Value: ":8080",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Serve(ctx, c.String("addr"))
		},
	}
}
