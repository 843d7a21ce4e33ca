package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabapcia/multiguard/internal/txwatch"

	"github.com/redis/go-redis/v9"
)

// txwatchCheckpointKey builds the key holding the last snapshot of wallet:
//
//	"multiguard:txwatch:checkpoint:<wallet>"
func txwatchCheckpointKey(wallet common.Address) string {
	return fmt.Sprintf("%stxwatch:checkpoint:%s", keyPrefix, wallet.Hex())
}

// SaveCheckpoint stores snapshot as JSON with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, wallet common.Address, snapshot txwatch.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	return c.conn.Set(ctx, txwatchCheckpointKey(wallet), raw, 0).Err()
}

// LoadCheckpoint returns the stored snapshot of wallet or
// txwatch.ErrNoCheckpointFound.
func (c *client) LoadCheckpoint(ctx context.Context, wallet common.Address) (txwatch.Snapshot, error) {
	raw, err := c.conn.Get(ctx, txwatchCheckpointKey(wallet)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txwatch.ErrNoCheckpointFound
		}

		return nil, err
	}

	snapshot := make(txwatch.Snapshot)
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}

	return snapshot, nil
}

// Compile-time assertion to ensure client implements txwatch.CheckpointStorage.
var _ txwatch.CheckpointStorage = new(client)
