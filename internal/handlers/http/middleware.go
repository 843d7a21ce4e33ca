package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/multiguard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestID propagates the caller's request id, or generates one, and
// attaches it to the request logger.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logger.Derive(c.Request.Context(), "http.request_id", id))
		c.Next()
	}
}

// recovery turns a panic into a 500 response.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "http handler panicked", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	})
}

// logRequests logs every request once it is served, at a level chosen by
// its status code.
func logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		var (
			ctx    = c.Request.Context()
			status = c.Writer.Status()
			kv     = []any{
				"http.method", c.Request.Method,
				"http.route", c.FullPath(),
				"http.status", status,
				"http.duration", time.Since(start).String(),
			}
		)

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "http request failed", kv...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "http request rejected", kv...)
		default:
			logger.Info(ctx, "http request served", kv...)
		}
	}
}

// timeout bounds the request context.
func timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
