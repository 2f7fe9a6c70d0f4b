package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

// EngagementService owns emotion-selection logs, favorite toggles and
// review CRUD.
type EngagementService struct {
	logs      repositories.EmotionLogRepository
	favorites repositories.FavoriteRepository
	reviews   repositories.ReviewRepository
	cache     providers.CacheProvider
}

// NewEngagementService creates a new engagement service. cache may be nil;
// it is only used to drop the cached admin stats when new activity arrives.
func NewEngagementService(
	logs repositories.EmotionLogRepository,
	favorites repositories.FavoriteRepository,
	reviews repositories.ReviewRepository,
	cache providers.CacheProvider,
) *EngagementService {
	return &EngagementService{logs: logs, favorites: favorites, reviews: reviews, cache: cache}
}

// AddLog appends an emotion-selection event. The userId reference is kept
// as provided and never validated; logs deliberately outlive their user.
func (s *EngagementService) AddLog(ctx context.Context, userID string, emotion entities.Emotion) error {
	if emotion == "" {
		return apperrors.NewValidationError("emotion is required")
	}

	err := s.logs.Append(ctx, entities.EmotionLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Emotion:   emotion,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, usageStatsCacheKey)
	}
	return nil
}

// ToggleFavorite flips the favorite state and returns true when the cafe is
// now favorited.
func (s *EngagementService) ToggleFavorite(ctx context.Context, userID string, cafeID int) (bool, error) {
	return s.favorites.Toggle(ctx, userID, cafeID)
}

// GetFavorites returns the cafe ids the user has favorited.
func (s *EngagementService) GetFavorites(ctx context.Context, userID string) ([]int, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.CafeID)
	}
	return ids, nil
}

// AddReview creates a review. userName is snapshotted as provided and not
// refreshed if the account is later renamed.
func (s *EngagementService) AddReview(ctx context.Context, userID, userName string, cafeID, rating int, comment string) (*entities.Review, error) {
	if err := validateReviewInput(rating, comment); err != nil {
		return nil, err
	}

	review := entities.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userName,
		CafeID:    cafeID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Timestamp: time.Now().UTC(),
	}
	if err := s.reviews.Append(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview rewrites rating, comment and timestamp. Returns false when
// the review id is unknown.
func (s *EngagementService) UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (bool, error) {
	if err := validateReviewInput(rating, comment); err != nil {
		return false, err
	}
	return s.reviews.Update(ctx, reviewID, rating, strings.TrimSpace(comment))
}

// DeleteReview removes a review permanently. Unknown ids are a no-op.
func (s *EngagementService) DeleteReview(ctx context.Context, reviewID string) error {
	return s.reviews.Delete(ctx, reviewID)
}

// GetReviews returns a cafe's reviews, most recent first.
func (s *EngagementService) GetReviews(ctx context.Context, cafeID int) ([]entities.Review, error) {
	return s.reviews.ListByCafe(ctx, cafeID)
}

func validateReviewInput(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return apperrors.NewValidationError("comment is required")
	}
	return nil
}
