package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/adapters/storage"
)

func TestFileStore_Roundtrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte(`[{"id":"a"}]`)
	require.NoError(t, store.Save(ctx, "moodbrew_users", payload))

	loaded, err := store.Load(ctx, "moodbrew_users")
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestFileStore_MissingCollection(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load(context.Background(), "moodbrew_users")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_OverwriteIsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "moodbrew_logs", []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, "moodbrew_logs", []byte(`[1,2]`)))

	loaded, err := store.Load(ctx, "moodbrew_logs")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), loaded)

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.Equal(t, ".json", filepath.Ext(entry.Name()))
	}
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
