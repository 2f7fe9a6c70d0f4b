package repositories

import (
	"context"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// EmotionLogRepository stores append-only emotion selection events.
type EmotionLogRepository interface {
	// Append adds a log entry. Entries are never updated or deleted.
	Append(ctx context.Context, log entities.EmotionLog) error

	// List returns all log entries in insertion order.
	List(ctx context.Context) ([]entities.EmotionLog, error)
}

// FavoriteRepository stores the (user, cafe) favorite relation.
type FavoriteRepository interface {
	// Toggle flips the favorite state for the pair in a single store round
	// trip and returns true when the pair is now favorited.
	Toggle(ctx context.Context, userID string, cafeID int) (bool, error)

	// ListByUser returns the user's favorites.
	ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error)
}

// ReviewRepository stores cafe reviews.
type ReviewRepository interface {
	// Append adds a review.
	Append(ctx context.Context, review entities.Review) error

	// ListByCafe returns reviews for a cafe ordered by timestamp descending.
	ListByCafe(ctx context.Context, cafeID int) ([]entities.Review, error)

	// Update rewrites rating, comment and timestamp of the review with the
	// given ID. Returns false when the ID is unknown.
	Update(ctx context.Context, id string, rating int, comment string) (bool, error)

	// Delete removes the review with the given ID. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error
}
