package multisig

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/pkg/validator"
)

// parseAddress parses a required, non-zero hex address.
func parseAddress(field, s string) (common.Address, error) {
	if err := validator.Var(s, "required,eth_addr"); err != nil {
		return common.Address{}, fmt.Errorf("%w: %s %q", ErrInvalidAddress, field, s)
	}

	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s is the zero address", ErrInvalidAddress, field)
	}

	return addr, nil
}

// parseOptionalAddress parses an address that may be left empty. An empty
// string yields the zero address.
func parseOptionalAddress(field, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}

	return parseAddress(field, s)
}
