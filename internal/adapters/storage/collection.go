package storage

import (
	"context"
	"encoding/json"

	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/observability"
	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

// loadCollection reads and decodes a whole collection. A malformed payload
// is treated as an empty collection: the warning is logged and the caller
// proceeds, so corrupt stored state can never take the API down.
func loadCollection[T any](ctx context.Context, store providers.StoreProvider, collection string) ([]T, error) {
	data, err := store.Load(ctx, collection)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load collection "+collection, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Str("collection", collection).
			Err(err).
			Msg("malformed collection payload, treating as empty")
		return nil, nil
	}
	return items, nil
}

// saveCollection encodes and overwrites a whole collection.
func saveCollection[T any](ctx context.Context, store providers.StoreProvider, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewInternalError("failed to encode collection "+collection, err)
	}
	if err := store.Save(ctx, collection, data); err != nil {
		return apperrors.NewInternalError("failed to save collection "+collection, err)
	}
	return nil
}
