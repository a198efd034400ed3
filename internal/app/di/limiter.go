// Package di wires optional infrastructure into its consumers.
package di

import (
	"github.com/redis/go-redis/v9"

	"cashtrackr_backend/internal/shared/ratelimiter"
)

// NewLimiterStore creates a CounterStore for the rate limiter.
// If Redis is available, counters are shared across instances.
// Otherwise, it falls back to a per-process in-memory store.
func NewLimiterStore(rdb *redis.Client) ratelimiter.CounterStore {
	if rdb != nil {
		return ratelimiter.NewRedisStore(rdb, "cashtrackr")
	}
	return ratelimiter.NewMemoryStore()
}
