package cli

import (
	"context"

	"github.com/gabapcia/multiguard/internal/multisig"

	"github.com/urfave/cli/v3"
)

func walletFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "wallet",
		Usage:    "Multisig wallet address",
		Required: true,
	}
}

func userFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "user",
		Usage: "Connected account, used to compute ownership and confirmation flags",
	}
}

// userWalletsCommand returns a CLI command that lists the wallets a creator
// deployed through the factory.
//
// Usage example:
//
//	multiguard wallets --creator 0xABC123...
func userWalletsCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "List the multisig wallets deployed by a creator through the factory.",
		Usage:       "Lists wallets created by an account.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "creator",
				Usage:    "Account that created the wallets",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := svc.UserWallets(ctx, c.String("creator"))
			if err != nil {
				return err
			}

			return writeJSON(c, wallets)
		},
	}
}

// walletInfoCommand returns a CLI command that shows a wallet summary.
//
// Usage example:
//
//	multiguard info --wallet 0xABC123... --user 0xDEF456...
func walletInfoCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "info",
		Description: "Show the owners, threshold and balance of a multisig wallet.",
		Usage:       "Shows a wallet summary.",
		Flags:       []cli.Flag{walletFlag(), userFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := svc.GetWalletInfo(ctx, c.String("wallet"), c.String("user"))
			if err != nil {
				return err
			}

			return writeJSON(c, info)
		},
	}
}

// listTransactionsCommand returns a CLI command that lists the transactions
// of a wallet.
//
// Usage example:
//
//	multiguard transactions --wallet 0xABC123... --filter pending
func listTransactionsCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "List the transactions of a multisig wallet with their confirmation state.",
		Usage:       "Lists wallet transactions. Filter is one of all, pending or executable.",
		Flags: []cli.Flag{
			walletFlag(),
			userFlag(),
			&cli.StringFlag{
				Name:  "filter",
				Usage: "Transactions to include (all, pending, executable)",
				Value: string(multisig.FilterAll),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := multisig.ParseFilter(c.String("filter"))
			if err != nil {
				return err
			}

			txs, err := svc.ListTransactions(ctx, c.String("wallet"), c.String("user"), filter)
			if err != nil {
				return err
			}

			return writeJSON(c, txs)
		},
	}
}

// networkCommand returns a CLI command that reports whether the RPC provider
// serves the required chain.
func networkCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "network",
		Description: "Check the chain served by the RPC provider against the required chain.",
		Usage:       "Shows the current network.",
		Action: func(ctx context.Context, c *cli.Command) error {
			network, err := svc.ValidateNetwork(ctx)
			if err != nil {
				return err
			}

			return writeJSON(c, network)
		},
	}
}
