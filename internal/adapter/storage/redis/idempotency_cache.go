package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache keeps the accepted-event envelope of POST /events per
// Idempotency-Key. The first stored envelope wins, so two racing requests
// with the same key replay one response.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client, prefix: "idem:"}
}

// Get returns nil, nil on a miss.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("idempotency lookup %q: %w", key, err)
	}
	return val, nil
}

// Set stores value unless the key already holds one.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("idempotency store %q: ttl must be positive", key)
	}
	if err := c.client.SetNX(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency store %q: %w", key, err)
	}
	return nil
}
