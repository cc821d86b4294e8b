package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when BARKLEY_TEST_REDIS_ADDR is set.
func newTestRedisCache(t *testing.T) *RedisCompletionCache {
	t.Helper()
	addr := os.Getenv("BARKLEY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BARKLEY_TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	return NewRedisCompletionCache(rdb, time.Minute)
}

func TestRedisCompletionCache_StaleSetIsDiscarded(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	_, gen, ok, err := c.Get(ctx, 7, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, gen)

	require.NoError(t, c.Invalidate(ctx, 7, 1))
	require.NoError(t, c.Set(ctx, 7, 1, gen, []int{}))

	_, gen, ok, err = c.Get(ctx, 7, 1)
	require.NoError(t, err)
	assert.False(t, ok, "snapshot read before the invalidation must not be cached")
	assert.Equal(t, int64(1), gen)

	require.NoError(t, c.Set(ctx, 7, 1, gen, []int{1}))
	modules, _, ok, err := c.Get(ctx, 7, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, modules)
}

func TestCompletedModulesKey(t *testing.T) {
	assert.Equal(t, "calendar:completed:7:1", completedModulesKey(7, 1))
	assert.Equal(t, "calendar:completed:7:1:gen", completedGenerationKey(7, 1))
}
