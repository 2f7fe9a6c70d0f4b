package storage

import (
	"context"
	"sync"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
)

// UserAdapter implements user persistence over the collection store. The
// mutex serializes read-modify-write cycles within this process; the store
// contract assumes no other writer exists.
type UserAdapter struct {
	store providers.StoreProvider
	mu    sync.Mutex
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(store providers.StoreProvider) repositories.UserRepository {
	return &UserAdapter{store: store}
}

// List returns all users in insertion order.
func (a *UserAdapter) List(ctx context.Context) ([]entities.User, error) {
	return loadCollection[entities.User](ctx, a.store, providers.CollectionUsers)
}

// Append adds a user to the collection.
func (a *UserAdapter) Append(ctx context.Context, user entities.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := loadCollection[entities.User](ctx, a.store, providers.CollectionUsers)
	if err != nil {
		return err
	}
	users = append(users, user)
	return saveCollection(ctx, a.store, providers.CollectionUsers, users)
}

// Update replaces the user with the same ID.
func (a *UserAdapter) Update(ctx context.Context, user entities.User) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := loadCollection[entities.User](ctx, a.store, providers.CollectionUsers)
	if err != nil {
		return false, err
	}

	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return true, saveCollection(ctx, a.store, providers.CollectionUsers, users)
		}
	}
	return false, nil
}

// Delete removes the user with the given ID.
func (a *UserAdapter) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := loadCollection[entities.User](ctx, a.store, providers.CollectionUsers)
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return saveCollection(ctx, a.store, providers.CollectionUsers, kept)
}
