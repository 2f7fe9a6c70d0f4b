package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/adapters/storage"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

func TestAdapters_MalformedPayloadTreatedAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, providers.CollectionUsers, []byte("{not json")))

	users := storage.NewUserAdapter(store)

	listed, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The collection recovers on the next write.
	require.NoError(t, users.Append(ctx, entities.User{ID: "u1", Email: "a@b.c"}))
	listed, err = users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestAdapters_EmptyCollectionSavesAsArray(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	users := storage.NewUserAdapter(store)
	require.NoError(t, users.Append(ctx, entities.User{ID: "u1"}))
	require.NoError(t, users.Delete(ctx, "u1"))

	data, err := store.Load(ctx, providers.CollectionUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFavoriteAdapter_ToggleIsSingleEntryPerPair(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	favorites := storage.NewFavoriteAdapter(store)

	for i := 0; i < 3; i++ {
		_, err := favorites.Toggle(ctx, "u1", 2)
		require.NoError(t, err)
	}

	listed, err := favorites.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].CafeID)
}
