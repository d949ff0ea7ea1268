// internal/adapters/redis/cache_test.go
package redis_a

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCache(client, slog.New(slog.DiscardHandler)), mr
}

func TestCache_SetAndGet(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	type stockEntry struct {
		VariantID int64 `json:"variant_id"`
		Quantity  int   `json:"quantity"`
	}

	err := cache.Set(ctx, "stock:1", stockEntry{VariantID: 1, Quantity: 7}, time.Minute)
	require.NoError(t, err)

	var got stockEntry
	err = cache.Get(ctx, "stock:1", &got)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.VariantID)
	assert.Equal(t, 7, got.Quantity)
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := setupCache(t)

	var dest map[string]interface{}
	err := cache.Get(context.Background(), "missing", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "valuation", "v", time.Minute))
	require.NoError(t, cache.Delete(ctx, "valuation"))

	var dest string
	assert.ErrorIs(t, cache.Get(ctx, "valuation", &dest), ErrCacheMiss)
}

func TestCache_DeletePattern(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "stock:1", 1, time.Minute))
	require.NoError(t, cache.Set(ctx, "stock:2", 2, time.Minute))
	require.NoError(t, cache.Set(ctx, "valuation", 3, time.Minute))

	require.NoError(t, cache.DeletePattern(ctx, "stock:*"))

	var dest int
	assert.ErrorIs(t, cache.Get(ctx, "stock:1", &dest), ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, "stock:2", &dest), ErrCacheMiss)
	assert.NoError(t, cache.Get(ctx, "valuation", &dest))
}

func TestCache_Expiration(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "stock:all", []int{1, 2}, time.Second))

	mr.FastForward(2 * time.Second)

	var dest []int
	assert.ErrorIs(t, cache.Get(ctx, "stock:all", &dest), ErrCacheMiss)
}
