package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/ethunit"
	"github.com/gabapcia/multiguard/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusOf maps service errors to HTTP status codes. Errors of the RPC
// provider, including unexpected ones, map to 502.
func statusOf(err error) int {
	switch {
	case errors.Is(err, validator.ErrValidationFailed),
		errors.Is(err, ethunit.ErrInvalidAmount),
		errors.Is(err, multisig.ErrInvalidAddress),
		errors.Is(err, multisig.ErrDuplicateOwner),
		errors.Is(err, multisig.ErrOwnerCount),
		errors.Is(err, multisig.ErrInvalidThreshold),
		errors.Is(err, multisig.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, multisig.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, multisig.ErrAlreadyExecuted),
		errors.Is(err, multisig.ErrNotExecutable),
		errors.Is(err, multisig.ErrWrongNetwork):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// abort writes err as the JSON error body with its mapped status.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(err), errorResponse{Error: err.Error()})
}
