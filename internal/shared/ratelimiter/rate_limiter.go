// Package ratelimiter provides a fixed-window request limiter for sensitive routes.
package ratelimiter

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
)

// CounterStore counts hits per key within a fixed window.
type CounterStore interface {
	// Incr increments the counter for key and returns the new count.
	// The counter resets once the window elapses.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// memoryEntry tracks the count and reset time for one key.
type memoryEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is an in-process CounterStore. It is the fallback when Redis
// is unavailable; counters are per instance and lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

var _ CounterStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Incr increments the counter for key, resetting it when the window has elapsed.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, nil
}

// Limiter restricts how often a client may hit the routes it guards.
type Limiter struct {
	store   CounterStore
	limit   int64
	window  time.Duration
	enabled bool
}

// New creates a Limiter. When enabled is false the middleware is a no-op,
// which keeps development and test environments unthrottled.
func New(store CounterStore, limit int64, window time.Duration, enabled bool) *Limiter {
	return &Limiter{store: store, limit: limit, window: window, enabled: enabled}
}

// Middleware returns a gin middleware enforcing the limit per client IP.
// A store failure lets the request through rather than blocking traffic.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.enabled {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()
		count, err := l.store.Incr(c.Request.Context(), key, l.window)
		if err != nil {
			slog.Warn("rate limiter store failed", "error", err, "key", key)
			c.Next()
			return
		}

		if count > l.limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				api.ErrorResponse{Error: "Has alcanzado el límite de peticiones"})
			return
		}
		c.Next()
	}
}
