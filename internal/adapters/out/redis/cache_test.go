package redis_test

import (
	"testing"
	"time"

	cacheredis "campusfood/internal/adapters/out/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*cacheredis.Cache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return cacheredis.NewCache(client, ttl), server
}

func TestCache_SetGet(t *testing.T) {
	// Given
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)

	// When
	require.NoError(t, cache.Set(ctx, "menu:shop:1", []byte(`{"items":[]}`)))

	// Then
	got, found, err := cache.Get(ctx, "menu:shop:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"items":[]}`, string(got))
	assert.Equal(t, time.Minute, server.TTL("menu:shop:1"))
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	got, found, err := cache.Get(t.Context(), "menu:shop:unknown")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCache_Expires(t *testing.T) {
	// Given
	ctx := t.Context()
	cache, server := newCache(t, 30*time.Second)
	require.NoError(t, cache.Set(ctx, "menu:shop:1", []byte("x")))

	// When
	server.FastForward(31 * time.Second)

	// Then
	_, found, err := cache.Get(ctx, "menu:shop:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)
	require.NoError(t, cache.Set(ctx, "a", []byte("1")))
	require.NoError(t, cache.Set(ctx, "b", []byte("2")))

	require.NoError(t, cache.Delete(ctx, "a", "b", "never-set"))
	require.NoError(t, cache.Delete(ctx))

	assert.False(t, server.Exists("a"))
	assert.False(t, server.Exists("b"))
}

func TestCache_ServerDown(t *testing.T) {
	ctx := t.Context()
	cache, server := newCache(t, time.Minute)
	require.NoError(t, cache.Ping(ctx))

	server.Close()

	_, _, err := cache.Get(ctx, "a")
	require.Error(t, err)
	require.Error(t, cache.Ping(ctx))
}
