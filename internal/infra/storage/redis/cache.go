package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/multiguard/internal/multisig"

	"github.com/redis/go-redis/v9"
)

// purgeScanCount is the COUNT hint passed to SCAN while purging.
const purgeScanCount = 100

func cacheKey(key string) string {
	return keyPrefix + "cache:" + key
}

// Load implements multisig.Cache. Values are stored as JSON.
func (c *client) Load(ctx context.Context, key string, dst any) error {
	raw, err := c.conn.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = multisig.ErrCacheMiss
		}

		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}

	return nil
}

// Store implements multisig.Cache. A non-positive ttl stores nothing.
func (c *client) Store(ctx context.Context, key string, v any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}

	return c.conn.Set(ctx, cacheKey(key), raw, ttl).Err()
}

// Purge implements multisig.Cache using SCAN so large keyspaces are not
// blocked.
func (c *client) Purge(ctx context.Context, prefix string) error {
	iter := c.conn.Scan(ctx, 0, cacheKey(prefix)+"*", purgeScanCount).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.conn.Del(ctx, keys...).Err()
}

// Compile-time assertion to ensure client implements multisig.Cache.
var _ multisig.Cache = new(client)
