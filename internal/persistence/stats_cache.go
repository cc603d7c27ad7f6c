package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsSnapshotKey = "helpdesk:stats:snapshot"

// StatsCache keeps the serialized dashboard snapshot in Redis for a short
// TTL. Every failure degrades to a cache miss; callers fall through to the
// store.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache builds a cache over an existing Redis wrapper. Returns nil
// when no client is configured, which disables caching.
func NewStatsCache(r *Redis, ttl time.Duration) *StatsCache {
	if r == nil || r.Client == nil || ttl <= 0 {
		return nil
	}
	return &StatsCache{client: r.Client, ttl: ttl}
}

// Get fetches the cached snapshot payload.
func (c *StatsCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, statsSnapshotKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the snapshot payload for the configured TTL.
func (c *StatsCache) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, statsSnapshotKey, payload, c.ttl).Err()
}
