package otpstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_PutTakeDelete(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "otp:+1555", "hash", time.Minute))
	assert.True(t, mr.Exists("test:otp:+1555"), "key should carry the prefix")

	val, ok, err := store.Take(ctx, "otp:+1555")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hash", val)
	assert.False(t, mr.Exists("test:otp:+1555"), "take removes the key")

	_, ok, err = store.Take(ctx, "otp:+1555")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "otp:+1555", "hash", time.Minute))
	require.NoError(t, store.Delete(ctx, "otp:+1555"))
	assert.False(t, mr.Exists("test:otp:+1555"))

	// deleting a missing key is fine
	assert.NoError(t, store.Delete(ctx, "otp:+1555"))
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v", 30*time.Second))
	mr.FastForward(31 * time.Second)

	_, ok, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_PutReplaces(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "first", time.Minute))
	require.NoError(t, store.Put(ctx, "k", "second", time.Minute))

	val, ok, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", val)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newTestRedisStore(t)
	require.NoError(t, store.Ping(context.Background()))
	mr.Close()

	_, _, err := store.Take(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore("", "p:")
	assert.Error(t, err)

	_, err = NewRedisStore("not a url", "p:")
	assert.Error(t, err)
}
