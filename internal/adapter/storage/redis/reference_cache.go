package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReferenceCache implements ports.ReferenceCache using Redis. It is a
// fast-path duplicate check only; the unique constraint on
// payment_transactions.external_reference stays authoritative.
type ReferenceCache struct {
	client *goredis.Client
	prefix string
}

// NewReferenceCache creates a new Redis-backed external reference cache.
func NewReferenceCache(client *goredis.Client) *ReferenceCache {
	return &ReferenceCache{
		client: client,
		prefix: "extref:",
	}
}

// Seen reports whether the external reference was already recorded.
func (c *ReferenceCache) Seen(ctx context.Context, externalRef string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+externalRef).Result()
	if err != nil {
		return false, fmt.Errorf("redis reference exists: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records an external reference with a TTL.
func (c *ReferenceCache) MarkSeen(ctx context.Context, externalRef string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+externalRef, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis reference set: %w", err)
	}
	return nil
}
