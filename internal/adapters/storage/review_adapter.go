package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
)

// ReviewAdapter implements review persistence over the collection store.
type ReviewAdapter struct {
	store providers.StoreProvider
	mu    sync.Mutex
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(store providers.StoreProvider) repositories.ReviewRepository {
	return &ReviewAdapter{store: store}
}

// Append adds a review.
func (a *ReviewAdapter) Append(ctx context.Context, review entities.Review) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	reviews, err := loadCollection[entities.Review](ctx, a.store, providers.CollectionReviews)
	if err != nil {
		return err
	}
	reviews = append(reviews, review)
	return saveCollection(ctx, a.store, providers.CollectionReviews, reviews)
}

// ListByCafe returns reviews for a cafe ordered by timestamp descending.
// The ordering is part of the repository contract.
func (a *ReviewAdapter) ListByCafe(ctx context.Context, cafeID int) ([]entities.Review, error) {
	reviews, err := loadCollection[entities.Review](ctx, a.store, providers.CollectionReviews)
	if err != nil {
		return nil, err
	}

	var out []entities.Review
	for _, r := range reviews {
		if r.CafeID == cafeID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Update rewrites rating, comment and timestamp of the review. The new
// timestamp moves the review to the front of the descending order.
func (a *ReviewAdapter) Update(ctx context.Context, id string, rating int, comment string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	reviews, err := loadCollection[entities.Review](ctx, a.store, providers.CollectionReviews)
	if err != nil {
		return false, err
	}

	for i := range reviews {
		if reviews[i].ID == id {
			reviews[i].Rating = rating
			reviews[i].Comment = comment
			reviews[i].Timestamp = time.Now().UTC()
			return true, saveCollection(ctx, a.store, providers.CollectionReviews, reviews)
		}
	}
	return false, nil
}

// Delete removes the review with the given ID. Unknown IDs are a no-op.
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	reviews, err := loadCollection[entities.Review](ctx, a.store, providers.CollectionReviews)
	if err != nil {
		return err
	}

	kept := reviews[:0]
	for _, r := range reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return saveCollection(ctx, a.store, providers.CollectionReviews, kept)
}
