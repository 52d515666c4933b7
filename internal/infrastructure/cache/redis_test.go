package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lexnotes/journal/internal/infrastructure/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (cache.KV, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	kv, err := cache.NewRedisKV(client)
	require.NoError(t, err)

	return kv, mr
}

func TestRedisKV_SetGet(t *testing.T) {
	t.Parallel()

	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "value", time.Minute))

	got, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, "value", got)
}

func TestRedisKV_GetDel_ConsumesOnce(t *testing.T) {
	t.Parallel()

	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "code", "123456", time.Minute))

	got, err := kv.GetDel(ctx, "code")
	require.NoError(t, err)
	require.Equal(t, "123456", got)

	_, err = kv.GetDel(ctx, "code")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisKV_Expiry(t *testing.T) {
	t.Parallel()

	kv, mr := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "code", "123456", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := kv.Get(ctx, "code")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}
