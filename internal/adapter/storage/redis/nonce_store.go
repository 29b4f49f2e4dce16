package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore remembers ingest nonces per access key for the replay window.
type NonceStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client, prefix: "nonce:", now: time.Now}
}

// CheckAndSet records nonce under scope and reports whether it was unseen.
// The stored value is the first-seen unix time, kept for debugging replays.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, s.prefix+scope+":"+nonce, s.now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("nonce check for %s: %w", scope, err)
	}
	return fresh, nil
}
