package ratelimiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a CounterStore backed by Redis, shared across instances.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

var _ CounterStore = (*RedisStore)(nil)

// NewRedisStore creates a CounterStore using the given redis client.
// The prefix namespaces limiter keys away from other users of the database.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// Incr increments the counter for key inside a pipeline, setting the window
// expiry only when the key is first created so the window stays fixed.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := s.prefix + ":" + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
