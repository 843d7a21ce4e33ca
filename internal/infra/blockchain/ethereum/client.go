// Package ethereum reads and encodes calls for the wallet factory and
// multisig wallet contracts of an Ethereum-compatible node, using eth_call
// over a JSON-RPC client.
package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gabapcia/multiguard/internal/multisig"
	"github.com/gabapcia/multiguard/internal/pkg/transport/jsonrpc"
)

// revertErrorCode is the JSON-RPC error code nodes use for reverted calls.
const revertErrorCode = 3

// client implements multisig.Contracts and multisig.CallEncoder.
type client struct {
	conn    jsonrpc.Client
	factory common.Address
}

var (
	_ multisig.Contracts   = (*client)(nil)
	_ multisig.CallEncoder = (*client)(nil)
)

// NewClient returns a client that talks to the node behind conn and to the
// wallet factory deployed at factory.
func NewClient(conn jsonrpc.Client, factory common.Address) *client {
	return &client{
		conn:    conn,
		factory: factory,
	}
}

// callArgs is the transaction object of eth_call.
type callArgs struct {
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

// call runs method of the contract at to against the latest block and
// returns the raw ABI-encoded output.
func (c *client) call(ctx context.Context, contract *abi.ABI, to common.Address, method string, args ...any) ([]byte, error) {
	input, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := c.conn.Fetch(ctx, "eth_call", callArgs{To: to, Data: input}, "latest")
	if err != nil {
		return nil, asRevert(contract, method, err)
	}

	var output hexutil.Bytes
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", method, err)
	}

	if len(output) == 0 && len(contract.Methods[method].Outputs) > 0 {
		return nil, fmt.Errorf("%w: %s returned no data, %s may not be a contract", multisig.ErrCallReverted, method, to.Hex())
	}

	return output, nil
}

// callValues runs call and unpacks its output.
func (c *client) callValues(ctx context.Context, contract *abi.ABI, to common.Address, method string, args ...any) ([]any, error) {
	output, err := c.call(ctx, contract, to, method, args...)
	if err != nil {
		return nil, err
	}

	values, err := contract.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return values, nil
}

// value returns the i-th output of a call as T.
func value[T any](values []any, i int) (T, error) {
	var zero T
	if i >= len(values) {
		return zero, fmt.Errorf("missing output %d", i)
	}

	v, ok := values[i].(T)
	if !ok {
		return zero, fmt.Errorf("output %d has type %T, want %T", i, values[i], zero)
	}

	return v, nil
}

// asRevert turns a provider error for a reverted call into an error matching
// multisig.ErrCallReverted, decoding the revert reason when possible. Other
// errors are returned unchanged.
func asRevert(contract *abi.ABI, method string, err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	if rpcErr.Code != revertErrorCode && !strings.Contains(strings.ToLower(rpcErr.Message), "revert") {
		return err
	}

	reason := rpcErr.Message
	var data hexutil.Bytes
	if len(rpcErr.Data) > 0 && json.Unmarshal(rpcErr.Data, &data) == nil {
		if decoded, ok := decodeRevert(contract, data); ok {
			reason = decoded
		}
	}

	return fmt.Errorf("%w: %s: %s", multisig.ErrCallReverted, method, reason)
}

// decodeRevert decodes revert data as an Error(string)/Panic(uint256) reason
// or as one of the contract's custom errors.
func decodeRevert(contract *abi.ABI, data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}

	if reason, err := abi.UnpackRevert(data); err == nil {
		return reason, true
	}

	for _, customErr := range contract.Errors {
		if !bytes.Equal(customErr.ID[:4], data[:4]) {
			continue
		}

		args, err := customErr.Unpack(data)
		if err != nil {
			return customErr.Name, true
		}
		return fmt.Sprintf("%s%v", customErr.Name, args), true
	}

	return "", false
}
