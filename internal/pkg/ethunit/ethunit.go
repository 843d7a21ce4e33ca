// Package ethunit converts between wei amounts and human-readable ether
// strings, and shortens addresses for display.
package ethunit

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits in one ether.
const Decimals = 18

// displayDecimals is the precision used by FormatEther.
const displayDecimals = 4

// ErrInvalidAmount is returned when an ether string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid ether amount")

// amountRegex accepts plain decimals: "1", "1.", "0.5", ".25".
var amountRegex = regexp.MustCompile(`^([0-9]+\.?[0-9]*|\.[0-9]+)$`)

// FormatEther renders wei as ether with four decimals, rounding half away
// from zero. A nil amount renders as "0.0000".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return decimal.Zero.StringFixed(displayDecimals)
	}

	return decimal.NewFromBigInt(wei, -Decimals).StringFixed(displayDecimals)
}

// ParseEther parses a non-negative decimal ether amount ("1", "0.5",
// ".25") into wei without floating point rounding. At most 18 fractional
// digits are accepted.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if !amountRegex.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
	}

	if amount.Exponent() < -Decimals {
		return nil, fmt.Errorf("%w: more than %d decimals in %q", ErrInvalidAmount, Decimals, s)
	}

	return amount.Shift(Decimals).BigInt(), nil
}

// FormatAddress shortens an address to "0x1234...abcd". The zero address
// renders as an empty string.
func FormatAddress(addr common.Address) string {
	if addr == (common.Address{}) {
		return ""
	}

	hex := addr.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

