package storage

import (
	"context"
	"sync"
	"time"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
)

// FavoriteAdapter implements the favorite set relation over the collection
// store.
type FavoriteAdapter struct {
	store providers.StoreProvider
	mu    sync.Mutex
}

// NewFavoriteAdapter creates a new favorite adapter.
func NewFavoriteAdapter(store providers.StoreProvider) repositories.FavoriteRepository {
	return &FavoriteAdapter{store: store}
}

// Toggle flips the favorite state for the (user, cafe) pair in a single
// load/save round trip and returns true when the pair is now favorited.
func (a *FavoriteAdapter) Toggle(ctx context.Context, userID string, cafeID int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	favorites, err := loadCollection[entities.Favorite](ctx, a.store, providers.CollectionFavorites)
	if err != nil {
		return false, err
	}

	for i, f := range favorites {
		if f.UserID == userID && f.CafeID == cafeID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			return false, saveCollection(ctx, a.store, providers.CollectionFavorites, favorites)
		}
	}

	favorites = append(favorites, entities.Favorite{
		UserID:    userID,
		CafeID:    cafeID,
		Timestamp: time.Now().UTC(),
	})
	return true, saveCollection(ctx, a.store, providers.CollectionFavorites, favorites)
}

// ListByUser returns the user's favorites.
func (a *FavoriteAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error) {
	favorites, err := loadCollection[entities.Favorite](ctx, a.store, providers.CollectionFavorites)
	if err != nil {
		return nil, err
	}

	var out []entities.Favorite
	for _, f := range favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}
