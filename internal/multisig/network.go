package multisig

import (
	"context"
	"fmt"
)

// Network describes the chain served by the RPC provider.
type Network struct {
	ChainID         uint64 `json:"chainId"`
	Name            string `json:"name"`
	Valid           bool   `json:"valid"`
	RequiredChainID uint64 `json:"requiredChainId"`
	RequiredName    string `json:"requiredName"`
}

var networkNames = map[uint64]string{
	1:        "Ethereum Mainnet",
	11155111: "Sepolia Testnet",
	137:      "Polygon",
	80001:    "Mumbai Testnet",
}

// NetworkName returns a display name for chainID.
func NetworkName(chainID uint64) string {
	if name, ok := networkNames[chainID]; ok {
		return name
	}
	return fmt.Sprintf("Chain %d", chainID)
}

// ValidateNetwork implements Service.
func (s *service) ValidateNetwork(ctx context.Context) (Network, error) {
	ctx, span := s.startSpan(ctx, "ValidateNetwork")
	defer span.End()

	var chainID uint64
	if err := s.read(ctx, func() (err error) {
		chainID, err = s.contracts.ChainID(ctx)
		return err
	}); err != nil {
		return Network{}, fail(span, fmt.Errorf("read chain id: %w", err))
	}

	return Network{
		ChainID:         chainID,
		Name:            NetworkName(chainID),
		Valid:           chainID == s.cfg.requiredChainID,
		RequiredChainID: s.cfg.requiredChainID,
		RequiredName:    NetworkName(s.cfg.requiredChainID),
	}, nil
}

// requireNetwork fails with ErrWrongNetwork unless the provider serves the
// required chain.
func (s *service) requireNetwork(ctx context.Context) error {
	network, err := s.ValidateNetwork(ctx)
	if err != nil {
		return err
	}

	if !network.Valid {
		return fmt.Errorf("%w: connected to %s, expected %s", ErrWrongNetwork, network.Name, network.RequiredName)
	}

	return nil
}
