package multisig

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/enumerate"
	"github.com/gabapcia/multiguard/internal/pkg/ethunit"
	"github.com/gabapcia/multiguard/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
)

// transactions enumerates every transaction of wallet, executed or not. The
// list is discarded once ctx is done, since it may have been cut short.
func (s *service) transactions(ctx context.Context, wallet common.Address) ([]Transaction, error) {
	seq := enumerate.Fetch(ctx, func(ctx context.Context, index uint64) (Transaction, error) {
		tx, err := s.contracts.Transaction(ctx, wallet, index)
		if err != nil {
			return Transaction{}, err
		}

		tx.Index = index
		if tx.Value == nil {
			tx.Value = new(big.Int)
		}
		return tx, nil
	}, s.enumerateOptions(s.cfg.transactionsMaxProbe)...)

	txs := seq.Collect()
	observeEnumeration(ctx, s, "transactions", seq)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enumerate transactions: %w", err)
	}

	return txs, nil
}

// ListTransactions implements Service.
func (s *service) ListTransactions(ctx context.Context, wallet, user string, filter Filter) ([]PendingTransaction, error) {
	ctx, span := s.startSpan(ctx, "ListTransactions",
		attribute.String("wallet", wallet),
		attribute.String("user", user),
		attribute.String("filter", string(filter)),
	)
	defer span.End()

	filter, err := ParseFilter(string(filter))
	if err != nil {
		return nil, fail(span, err)
	}

	walletAddr, err := parseAddress("wallet", wallet)
	if err != nil {
		return nil, fail(span, err)
	}

	userAddr, err := parseOptionalAddress("user", user)
	if err != nil {
		return nil, fail(span, err)
	}

	ctx = logger.Derive(ctx, "wallet.address", walletAddr.Hex())

	key := transactionsKey(walletAddr, userAddr)
	var all []PendingTransaction
	if !s.loadCached(ctx, key, &all) {
		if all, err = s.pendingTransactions(ctx, walletAddr, userAddr); err != nil {
			return nil, fail(span, err)
		}
		s.storeCached(ctx, key, all, s.cfg.transactionsTTL)
	}

	out := make([]PendingTransaction, 0, len(all))
	for _, tx := range all {
		if filter.match(tx) {
			out = append(out, tx)
		}
	}

	return out, nil
}

// pendingTransactions enumerates the transactions of wallet and annotates
// each with the threshold and user's confirmation.
func (s *service) pendingTransactions(ctx context.Context, wallet, user common.Address) ([]PendingTransaction, error) {
	var threshold uint64
	if err := s.read(ctx, func() (err error) {
		threshold, err = s.contracts.Threshold(ctx, wallet)
		return err
	}); err != nil {
		return nil, fmt.Errorf("read threshold: %w", err)
	}

	txs, err := s.transactions(ctx, wallet)
	if err != nil {
		return nil, err
	}

	out := make([]PendingTransaction, 0, len(txs))
	for _, tx := range txs {
		var confirmed bool
		if user != (common.Address{}) {
			if err := s.read(ctx, func() (err error) {
				confirmed, err = s.contracts.IsConfirmed(ctx, wallet, tx.Index, user)
				return err
			}); err != nil {
				return nil, fmt.Errorf("read confirmation of transaction %d: %w", tx.Index, err)
			}
		}

		out = append(out, PendingTransaction{
			Transaction:       tx,
			ValueEther:        ethunit.FormatEther(tx.Value),
			Threshold:         threshold,
			IsConfirmedByUser: confirmed,
			CanExecute:        CanExecute(tx, threshold),
		})
	}

	return out, nil
}

// CanExecute reports whether tx has enough confirmations to be executed and
// has not been executed yet.
func CanExecute(tx Transaction, threshold uint64) bool {
	return !tx.Executed && tx.NumConfirmations >= threshold
}
