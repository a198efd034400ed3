package ratelimiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(l *Limiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", l.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMemoryStore_Incr(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	for i := int64(1); i <= 3; i++ {
		count, err := store.Incr(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestMemoryStore_Incr_WindowReset(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	_, err := store.Incr(context.Background(), "k", 50*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Incr(context.Background(), "k", 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	count, err := store.Incr(context.Background(), "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "counter should reset after the window")
}

func TestMemoryStore_Incr_IndependentKeys(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	_, err := store.Incr(context.Background(), "a", time.Minute)
	require.NoError(t, err)
	count, err := store.Incr(context.Background(), "b", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, int64(1), count, "keys should have independent counters")
}

func TestLimiter_Middleware_BlocksOverLimit(t *testing.T) {
	limiter := New(NewMemoryStore(), 5, time.Minute, true)
	router := setupRouter(limiter)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Has alcanzado el límite de peticiones"}`, w.Body.String())
}

func TestLimiter_Middleware_DisabledIsNoOp(t *testing.T) {
	limiter := New(NewMemoryStore(), 1, time.Minute, false)
	router := setupRouter(limiter)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

// failingStore always errors, simulating an unreachable Redis.
type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, assert.AnError
}

func TestLimiter_Middleware_StoreFailureLetsRequestThrough(t *testing.T) {
	limiter := New(failingStore{}, 1, time.Minute, true)
	router := setupRouter(limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "a broken store must not block traffic")
}
