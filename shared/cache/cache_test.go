package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/infras/otel/mocks"
	"tasknest/shared/cache"
)

type cachedProject struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	err := c.Save(ctx, "project:get:u-1:p-1", cachedProject{ID: "p-1", Title: "Home"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, server.Exists("project:get:u-1:p-1"))

	var got cachedProject
	require.NoError(t, c.Get(ctx, "project:get:u-1:p-1", &got))
	assert.Equal(t, cachedProject{ID: "p-1", Title: "Home"}, got)
}

func TestRedisCache_GetString(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)

	require.NoError(t, c.Save(ctx, "greeting", "hello", time.Minute))

	var got string
	require.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var got cachedProject
	err := c.Get(context.Background(), "missing", &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetCorrupted(t *testing.T) {
	c, server := newCache(t)

	require.NoError(t, server.Set("broken", "{not json"))

	var got cachedProject
	err := c.Get(context.Background(), "broken", &got)

	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))
	assert.False(t, server.Exists("key"))
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "project:u-1:all", "a", time.Minute))
	require.NoError(t, c.Save(ctx, "project:u-1:p-1", "b", time.Minute))
	require.NoError(t, c.Save(ctx, "project:u-2:all", "c", time.Minute))

	require.NoError(t, c.Clear(ctx, "project:u-1:"))

	assert.False(t, server.Exists("project:u-1:all"))
	assert.False(t, server.Exists("project:u-1:p-1"))
	assert.True(t, server.Exists("project:u-2:all"))
}

func TestRedisCache_ClearManyKeys(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	for i := range 250 {
		require.NoError(t, server.Set(fmt.Sprintf("project:u-1:%d", i), "x"))
	}

	require.NoError(t, c.Clear(ctx, "project:u-1:"))
	assert.Empty(t, server.Keys())
}

func TestRedisCache_SaveExpires(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "project:u-1:all", "a", time.Minute))

	server.FastForward(2 * time.Minute)

	var got string
	assert.ErrorIs(t, c.Get(ctx, "project:u-1:all", &got), cache.Nil)
}
