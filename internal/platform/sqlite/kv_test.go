package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/store"
)

func openTestKV(t *testing.T) (*KV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv, path
}

func TestPutGetRoundTrip(t *testing.T) {
	kv, _ := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":1}`)))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), got)

	// Upsert replaces the previous value.
	require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":2}`)))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)
}

func TestGetMissingKey(t *testing.T) {
	kv, _ := openTestKV(t)

	_, err := kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestDataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, store.ThemeKey, []byte("dark")))
	require.NoError(t, kv.Close())

	// Reopening also re-runs migrations, which must be idempotent.
	kv, err = Open(path)
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get(ctx, store.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), got)
}
