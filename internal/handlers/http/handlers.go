package http

import (
	"fmt"
	"net/http"

	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// indexRequest is the body of the confirm and execute endpoints.
type indexRequest struct {
	Index *uint64 `json:"index" binding:"required"`
}

// bindJSON decodes the request body into dst, aborting with 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abort(c, fmt.Errorf("%w: %w", validator.ErrValidationFailed, err))
		return false
	}
	return true
}

func (s *server) network(c *gin.Context) {
	network, err := s.svc.ValidateNetwork(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, network)
}

func (s *server) userWallets(c *gin.Context) {
	wallets, err := s.svc.UserWallets(c.Request.Context(), c.Param("creator"))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, wallets)
}

func (s *server) walletInfo(c *gin.Context) {
	info, err := s.svc.GetWalletInfo(c.Request.Context(), c.Param("wallet"), c.Query("user"))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (s *server) listTransactions(c *gin.Context) {
	filter, err := multisig.ParseFilter(c.Query("filter"))
	if err != nil {
		abort(c, err)
		return
	}

	txs, err := s.svc.ListTransactions(c.Request.Context(), c.Param("wallet"), c.Query("user"), filter)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (s *server) invalidate(c *gin.Context) {
	if err := s.svc.Invalidate(c.Request.Context(), c.Param("wallet")); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *server) prepareCreateWallet(c *gin.Context) {
	var params multisig.CreateWalletParams
	if !bindJSON(c, &params) {
		return
	}

	prepared, err := s.svc.PrepareCreateWallet(c.Request.Context(), params)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, prepared)
}

func (s *server) prepareSubmitTransaction(c *gin.Context) {
	var params multisig.SubmitTransactionParams
	if !bindJSON(c, &params) {
		return
	}

	call, err := s.svc.PrepareSubmitTransaction(c.Request.Context(), c.Param("wallet"), params)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, call)
}

func (s *server) prepareConfirmTransaction(c *gin.Context) {
	var req indexRequest
	if !bindJSON(c, &req) {
		return
	}

	call, err := s.svc.PrepareConfirmTransaction(c.Request.Context(), c.Param("wallet"), *req.Index)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, call)
}

func (s *server) prepareExecuteTransaction(c *gin.Context) {
	var req indexRequest
	if !bindJSON(c, &req) {
		return
	}

	call, err := s.svc.PrepareExecuteTransaction(c.Request.Context(), c.Param("wallet"), *req.Index)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, call)
}
