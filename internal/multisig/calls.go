package multisig

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gabapcia/multiguard/internal/pkg/ethunit"
	"github.com/gabapcia/multiguard/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
)

// PrepareSubmitTransaction implements Service.
func (s *service) PrepareSubmitTransaction(ctx context.Context, wallet string, params SubmitTransactionParams) (UnsignedCall, error) {
	ctx, span := s.startSpan(ctx, "PrepareSubmitTransaction", attribute.String("wallet", wallet), attribute.String("to", params.To))
	defer span.End()

	walletAddr, err := parseAddress("wallet", wallet)
	if err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	if err := validator.Validate(params); err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	to, err := parseAddress("to", params.To)
	if err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	value, err := ethunit.ParseEther(params.Value)
	if err != nil {
		return UnsignedCall{}, fail(span, errors.Join(validator.ErrValidationFailed, err))
	}

	var data []byte
	if params.Data != "" && params.Data != "0x" {
		if data, err = hexutil.Decode(params.Data); err != nil {
			return UnsignedCall{}, fail(span, errors.Join(validator.ErrValidationFailed, err))
		}
	}

	if err := s.requireNetwork(ctx); err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	calldata, err := s.encoder.EncodeSubmitTransaction(to, value, data)
	if err != nil {
		return UnsignedCall{}, fail(span, fmt.Errorf("encode submitTransaction: %w", err))
	}

	return UnsignedCall{To: walletAddr, Value: new(big.Int), Data: calldata}, nil
}

// PrepareConfirmTransaction implements Service.
func (s *service) PrepareConfirmTransaction(ctx context.Context, wallet string, index uint64) (UnsignedCall, error) {
	ctx, span := s.startSpan(ctx, "PrepareConfirmTransaction", attribute.String("wallet", wallet), uint64Attr("index", index))
	defer span.End()

	walletAddr, tx, err := s.lookupOpenTransaction(ctx, wallet, index)
	if err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	calldata, err := s.encoder.EncodeConfirmTransaction(tx.Index)
	if err != nil {
		return UnsignedCall{}, fail(span, fmt.Errorf("encode confirmTransaction: %w", err))
	}

	return UnsignedCall{To: walletAddr, Value: new(big.Int), Data: calldata}, nil
}

// PrepareExecuteTransaction implements Service.
func (s *service) PrepareExecuteTransaction(ctx context.Context, wallet string, index uint64) (UnsignedCall, error) {
	ctx, span := s.startSpan(ctx, "PrepareExecuteTransaction", attribute.String("wallet", wallet), uint64Attr("index", index))
	defer span.End()

	walletAddr, tx, err := s.lookupOpenTransaction(ctx, wallet, index)
	if err != nil {
		return UnsignedCall{}, fail(span, err)
	}

	var threshold uint64
	if err := s.read(ctx, func() (err error) {
		threshold, err = s.contracts.Threshold(ctx, walletAddr)
		return err
	}); err != nil {
		return UnsignedCall{}, fail(span, fmt.Errorf("read threshold: %w", err))
	}

	if !CanExecute(tx, threshold) {
		return UnsignedCall{}, fail(span, fmt.Errorf("%w: %d of %d confirmations", ErrNotExecutable, tx.NumConfirmations, threshold))
	}

	calldata, err := s.encoder.EncodeExecuteTransaction(tx.Index)
	if err != nil {
		return UnsignedCall{}, fail(span, fmt.Errorf("encode executeTransaction: %w", err))
	}

	return UnsignedCall{To: walletAddr, Value: new(big.Int), Data: calldata}, nil
}

// lookupOpenTransaction checks the network and reads transaction index of
// wallet, failing when it does not exist or was already executed.
func (s *service) lookupOpenTransaction(ctx context.Context, wallet string, index uint64) (common.Address, Transaction, error) {
	walletAddr, err := parseAddress("wallet", wallet)
	if err != nil {
		return common.Address{}, Transaction{}, err
	}

	if err := s.requireNetwork(ctx); err != nil {
		return common.Address{}, Transaction{}, err
	}

	var tx Transaction
	if err := s.read(ctx, func() (err error) {
		tx, err = s.contracts.Transaction(ctx, walletAddr, index)
		return err
	}); err != nil {
		if errors.Is(err, ErrCallReverted) {
			return common.Address{}, Transaction{}, fmt.Errorf("%w: index %d", ErrTransactionNotFound, index)
		}
		return common.Address{}, Transaction{}, fmt.Errorf("read transaction %d: %w", index, err)
	}
	tx.Index = index

	if tx.Executed {
		return common.Address{}, Transaction{}, fmt.Errorf("%w: index %d", ErrAlreadyExecuted, index)
	}

	return walletAddr, tx, nil
}
