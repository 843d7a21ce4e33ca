// Package validator wraps go-playground/validator for declarative struct
// validation with standardized error formatting.
//
// Besides the built-in tags (e.g. `validate:"required,eth_addr"`) it
// registers:
//
//   - hexdata: an optional 0x-prefixed hex byte string ("" and "0x" allowed).
//   - ether:   a non-negative decimal ether amount accepted by
//     ethunit.ParseEther, such as "1", "0.25" or ".25".
package validator

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gabapcia/multiguard/internal/pkg/ethunit"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when
// validation fails.
var ErrValidationFailed = errors.New("validation failed")

// errStringFormat describes one failed field.
//
// Example: "'To': value '0x12' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var hexDataRegex = regexp.MustCompile(`^(0x([0-9a-fA-F]{2})*)?$`)

// validator is the package singleton, built on import.
var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	_ = validator.RegisterValidation("hexdata", func(fl gvalidator.FieldLevel) bool {
		return hexDataRegex.MatchString(fl.Field().String())
	})
	_ = validator.RegisterValidation("ether", func(fl gvalidator.FieldLevel) bool {
		_, err := ethunit.ParseEther(fl.Field().String())
		return err == nil
	})
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(addr, "required,eth_addr").
func Var(field any, tag string) error {
	if err := validator.Var(field, tag); err != nil {
		return formatError(err)
	}

	return nil
}
