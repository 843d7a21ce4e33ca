package multisig

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/pkg/types"
	"github.com/gabapcia/multiguard/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
)

// parseOwners parses owners, rejecting zero and repeated addresses.
func parseOwners(owners []string) ([]common.Address, error) {
	var (
		out  = make([]common.Address, 0, len(owners))
		seen = types.NewSet[common.Address]()
	)
	for i, owner := range owners {
		addr, err := parseAddress(fmt.Sprintf("owner %d", i), owner)
		if err != nil {
			return nil, err
		}

		if seen.Has(addr) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOwner, addr.Hex())
		}
		seen.Add(addr)

		out = append(out, addr)
	}

	return out, nil
}

// PrepareCreateWallet implements Service.
func (s *service) PrepareCreateWallet(ctx context.Context, params CreateWalletParams) (PreparedWallet, error) {
	ctx, span := s.startSpan(ctx, "PrepareCreateWallet",
		attribute.Int("owners", len(params.Owners)),
		uint64Attr("threshold", params.Threshold),
	)
	defer span.End()

	if err := validator.Validate(params); err != nil {
		return PreparedWallet{}, fail(span, err)
	}

	creator, err := parseOptionalAddress("creator", params.Creator)
	if err != nil {
		return PreparedWallet{}, fail(span, err)
	}

	owners, err := parseOwners(params.Owners)
	if err != nil {
		return PreparedWallet{}, fail(span, err)
	}

	if len(owners) == 0 {
		return PreparedWallet{}, fail(span, fmt.Errorf("%w: no owners", ErrOwnerCount))
	}

	if params.Threshold == 0 || params.Threshold > uint64(len(owners)) {
		return PreparedWallet{}, fail(span, fmt.Errorf("%w: %d of %d owners", ErrInvalidThreshold, params.Threshold, len(owners)))
	}

	if err := s.requireNetwork(ctx); err != nil {
		return PreparedWallet{}, fail(span, err)
	}

	var minOwners, maxOwners uint64
	if err := s.read(ctx, func() (err error) {
		minOwners, maxOwners, err = s.contracts.OwnerLimits(ctx)
		return err
	}); err != nil {
		return PreparedWallet{}, fail(span, fmt.Errorf("read owner limits: %w", err))
	}

	if n := uint64(len(owners)); n < minOwners || n > maxOwners {
		return PreparedWallet{}, fail(span, fmt.Errorf("%w: %d owners, factory accepts %d to %d", ErrOwnerCount, n, minOwners, maxOwners))
	}

	data, err := s.encoder.EncodeCreateWallet(owners, params.Threshold)
	if err != nil {
		return PreparedWallet{}, fail(span, fmt.Errorf("encode createWallet: %w", err))
	}

	prepared := PreparedWallet{
		Call: UnsignedCall{
			To:    s.contracts.FactoryAddress(),
			Value: new(big.Int),
			Data:  data,
		},
	}

	if creator != (common.Address{}) {
		var (
			predicted common.Address
			salt      common.Hash
		)
		if err := s.read(ctx, func() (err error) {
			predicted, salt, err = s.contracts.PredictWalletAddress(ctx, creator, owners, params.Threshold)
			return err
		}); err != nil {
			return PreparedWallet{}, fail(span, fmt.Errorf("predict wallet address: %w", err))
		}

		prepared.PredictedAddress = &predicted
		prepared.Salt = &salt
	}

	return prepared, nil
}
