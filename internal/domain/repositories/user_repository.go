package repositories

import (
	"context"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// UserRepository defines the interface for user record operations. Each
// mutation is a single whole-collection round trip against the store.
type UserRepository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]entities.User, error)

	// Append adds a user to the collection.
	Append(ctx context.Context, user entities.User) error

	// Update replaces the user with the same ID. Returns false when the ID
	// is unknown.
	Update(ctx context.Context, user entities.User) (bool, error)

	// Delete removes the user with the given ID. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error
}
