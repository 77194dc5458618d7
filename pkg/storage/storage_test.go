package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behavior every backend must share.
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v1")))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)
	})

	t.Run("overwrite wins", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v1")))
		require.NoError(t, store.Set(ctx, "k", []byte("v2")))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		require.NoError(t, store.Remove(ctx, "k"))

		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)

		// removing again must stay silent
		require.NoError(t, store.Remove(ctx, "k"))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a", []byte("1")))
		require.NoError(t, store.Set(ctx, "b", []byte("2")))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Get(ctx, "b")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemory_Contract(t *testing.T) {
	runStoreContract(t, NewMemory())
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestBadger_Contract(t *testing.T) {
	store, err := NewBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runStoreContract(t, store)
}

func TestBadger_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewBadger(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", []byte("persisted")))
	require.NoError(t, store.Close())

	reopened, err := NewBadger(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func newRedisStore(t *testing.T, prefix string) *Redis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedis(rdb, prefix)
}

func TestRedis_Contract(t *testing.T) {
	runStoreContract(t, newRedisStore(t, "kano:"))
}

func TestRedis_ClearOnlyTouchesOwnPrefix(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	mine := NewRedis(rdb, "mine:")
	other := NewRedis(rdb, "other:")

	require.NoError(t, mine.Set(ctx, "k", []byte("1")))
	require.NoError(t, other.Set(ctx, "k", []byte("2")))

	require.NoError(t, mine.Clear(ctx))

	_, err = mine.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := other.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}
