// Package jsonrpc provides a generic JSON-RPC 2.0 client over HTTP, suitable
// for Ethereum nodes and any other JSON-RPC compatible provider.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates that the remote server answered with a
// JSON-RPC error object.
var ErrProviderReturnedError = errors.New("provider error")

// Error is a JSON-RPC error object returned by the provider. It matches
// ErrProviderReturnedError with errors.Is.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Is reports whether target is ErrProviderReturnedError.
func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response's error object, or nil.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default Client, posting each request to one endpoint.
type client struct {
	providerEndpoint string
	httpClient       *http.Client
}

var _ Client = (*client)(nil)

// Fetch implements Client. Each request carries a fresh UUID as its id.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", method, res.StatusCode, err)
	}

	return data.Result, data.Err()
}

// NewClient returns a Client posting to providerEndpoint with httpClient.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
