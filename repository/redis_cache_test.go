package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisCacheFromClient(client)
	t.Cleanup(func() { cache.Close() })
	return cache, mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, _ := newMiniredisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Ping(ctx))
	require.NoError(t, cache.Set(ctx, "markers:lisbon", `[{"neighborhood":"Alfama"}]`, time.Minute))

	val, ok := cache.Get(ctx, "markers:lisbon")
	require.True(t, ok)
	assert.Equal(t, `[{"neighborhood":"Alfama"}]`, val)
}

func TestRedisCache_MissingKey(t *testing.T) {
	cache, _ := newMiniredisCache(t)

	val, ok := cache.Get(context.Background(), "overview:atlantis")
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, mr := newMiniredisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "comparison:all", "[]", time.Minute))

	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "comparison:all")
	assert.False(t, ok)
}

func TestRedisCache_SetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheFromClient(client)

	mock.ExpectSet("key", "value", time.Minute).SetErr(errors.New("connection reset"))

	err := cache.Set(context.Background(), "key", "value", time.Minute)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetErrorReportsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheFromClient(client)

	mock.ExpectGet("key").SetErr(errors.New("connection reset"))

	_, ok := cache.Get(context.Background(), "key")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))

	val, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "value", val)
}
