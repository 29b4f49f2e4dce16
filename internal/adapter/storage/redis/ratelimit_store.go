package redis

import (
	"context"
	"fmt"
	"time"

	"wellness-dispatch/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter and starts the window on the first
// hit. It returns {count, remaining_ttl_ms}. A key that somehow lost its TTL is
// given a fresh window so it can never block forever.
var fixedWindowScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RateLimitStore implements ports.RateLimitStore with a Redis fixed-window counter.
// The window is anchored at the first request for a key and the record is reaped
// by key expiry.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

// CheckAndIncrement counts one request against key and reports whether it is within limit.
func (s *RateLimitStore) CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) (*domain.RateLimitResult, error) {
	if window < time.Millisecond {
		return nil, fmt.Errorf("rate limit window must be at least 1ms, got %s", window)
	}

	vals, err := fixedWindowScript.Run(ctx, s.client, []string{s.prefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit script: %w", err)
	}
	if len(vals) != 2 {
		return nil, fmt.Errorf("redis rate limit script: unexpected reply %v", vals)
	}

	count := int(vals[0])
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &domain.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Count:     count,
		Remaining: remaining,
		ResetAt:   s.now().Add(time.Duration(vals[1]) * time.Millisecond),
	}, nil
}
