package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/multiguard/internal/multisig"

	"github.com/urfave/cli/v3"
)

// parseUint parses a flag holding a non-negative integer.
func parseUint(c *cli.Command, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.String(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", name, c.String(name), err)
	}
	return v, nil
}

func indexFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "index",
		Usage:    "Transaction index in the wallet",
		Required: true,
	}
}

// calldataCommand groups the commands that build unsigned calls. None of them
// signs or broadcasts anything.
//
// Usage example:
//
//	multiguard calldata confirm --wallet 0xABC123... --index 3
func calldataCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "calldata",
		Description: "Build unsigned contract calls to be signed and sent by an external wallet.",
		Usage:       "Prepares create, submit, confirm and execute calls.",
		Commands: []*cli.Command{
			createWalletCalldataCommand(svc),
			submitTransactionCalldataCommand(svc),
			confirmTransactionCalldataCommand(svc),
			executeTransactionCalldataCommand(svc),
		},
	}
}

func createWalletCalldataCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Build the factory call that deploys a new multisig wallet.",
		Usage:       "Prepares a createWallet call. Repeat --owner for each owner.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "creator",
				Usage: "Account that will send the call, used to predict the wallet address",
			},
			&cli.StringSliceFlag{
				Name:     "owner",
				Usage:    "Owner address (repeatable)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "threshold",
				Usage:    "Confirmations required to execute a transaction",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			threshold, err := parseUint(c, "threshold")
			if err != nil {
				return err
			}

			prepared, err := svc.PrepareCreateWallet(ctx, multisig.CreateWalletParams{
				Creator:   c.String("creator"),
				Owners:    c.StringSlice("owner"),
				Threshold: threshold,
			})
			if err != nil {
				return err
			}

			return writeJSON(c, prepared)
		},
	}
}

func submitTransactionCalldataCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "submit",
		Description: "Build the wallet call that proposes a new transaction.",
		Usage:       "Prepares a submitTransaction call. Value is in ether.",
		Flags: []cli.Flag{
			walletFlag(),
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Destination address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Amount in ether (e.g., 0.5)",
				Value: "0",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Hex-encoded calldata for the destination",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			call, err := svc.PrepareSubmitTransaction(ctx, c.String("wallet"), multisig.SubmitTransactionParams{
				To:    c.String("to"),
				Value: c.String("value"),
				Data:  c.String("data"),
			})
			if err != nil {
				return err
			}

			return writeJSON(c, call)
		},
	}
}

func confirmTransactionCalldataCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "confirm",
		Description: "Build the wallet call that confirms a pending transaction.",
		Usage:       "Prepares a confirmTransaction call.",
		Flags:       []cli.Flag{walletFlag(), indexFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			index, err := parseUint(c, "index")
			if err != nil {
				return err
			}

			call, err := svc.PrepareConfirmTransaction(ctx, c.String("wallet"), index)
			if err != nil {
				return err
			}

			return writeJSON(c, call)
		},
	}
}

func executeTransactionCalldataCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "execute",
		Description: "Build the wallet call that executes a confirmed transaction.",
		Usage:       "Prepares an executeTransaction call.",
		Flags:       []cli.Flag{walletFlag(), indexFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			index, err := parseUint(c, "index")
			if err != nil {
				return err
			}

			call, err := svc.PrepareExecuteTransaction(ctx, c.String("wallet"), index)
			if err != nil {
				return err
			}

			return writeJSON(c, call)
		},
	}
}
