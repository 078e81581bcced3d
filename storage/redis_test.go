package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	st, err := NewRedisStore(mr.Addr(), "fieldops:test", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, mr
}

func TestRedisStore_LoadWithoutSave(t *testing.T) {
	st, _ := newTestRedisStore(t)

	_, err := st.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSave)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	st, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, rec.Name, got.Name)
	require.Equal(t, rec.Stats, got.Stats)
	require.Equal(t, rec.Inventory, got.Inventory)
	require.Equal(t, rec.Equipment, got.Equipment)
	require.EqualValues(t, 3, got.Missions["completed"])
}

func TestRedisStore_OverwritesInPlace(t *testing.T) {
	st, mr := newTestRedisStore(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, st.Save(ctx, rec))
	rec.Stats["hp"] = 17
	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 17, got.Stats["hp"])

	// Single key, overwritten in place.
	require.Len(t, mr.Keys(), 1)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	st, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("fieldops:test", "{not json"))

	_, err := st.Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoSave)
}

func TestNewRedisStore_UnreachableServer(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisStore(addr, "fieldops:test", zerolog.Nop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis ping")
}
