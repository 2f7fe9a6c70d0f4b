package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/adapters/cache"
	"github.com/moodbrew/moodbrew-backend/internal/adapters/storage"
	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

type statsFixture struct {
	stats      *services.StatsService
	engagement *services.EngagementService
}

func newStatsFixture(t *testing.T) statsFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	memCache := cache.NewMemoryAdapter()
	logs := storage.NewEmotionLogAdapter(store)
	reviews := storage.NewReviewAdapter(store)
	return statsFixture{
		stats:      services.NewStatsService(reviews, logs, memCache),
		engagement: services.NewEngagementService(logs, storage.NewFavoriteAdapter(store), reviews, memCache),
	}
}

func (f statsFixture) addRatings(t *testing.T, cafeID int, ratings ...int) {
	t.Helper()
	for _, rating := range ratings {
		_, err := f.engagement.AddReview(context.Background(), "user-1", "Lee", cafeID, rating, "noted")
		require.NoError(t, err)
	}
}

func TestStatsService_GetCafeStats_NoReviews(t *testing.T) {
	f := newStatsFixture(t)

	stats, err := f.stats.GetCafeStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0, stats.ReviewCount)
	assert.Equal(t, entities.SentimentNeutral, stats.Sentiment)
}

func TestStatsService_GetCafeStats_Sentiment(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    entities.Sentiment
	}{
		{"mostly high ratings", []int{5, 5, 1}, entities.SentimentPositive},
		{"mostly low ratings", []int{1, 1, 5}, entities.SentimentNegative},
		{"all middling", []int{3, 3, 3}, entities.SentimentNeutral},
		{"single negative review flags", []int{1, 3, 3}, entities.SentimentNegative},
		{"even split stays neutral", []int{5, 5, 1, 1}, entities.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStatsFixture(t)
			f.addRatings(t, 1, tt.ratings...)

			stats, err := f.stats.GetCafeStats(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.Sentiment)
			assert.Equal(t, len(tt.ratings), stats.ReviewCount)
		})
	}
}

func TestStatsService_GetCafeStats_AverageRoundsHalfUp(t *testing.T) {
	f := newStatsFixture(t)
	// 4+4+5 = 13/3 = 4.333... -> 4.3; 4+5 = 9/2 = 4.5 stays 4.5
	f.addRatings(t, 1, 4, 4, 5)
	f.addRatings(t, 2, 4, 5)

	stats, err := f.stats.GetCafeStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4.3, stats.AverageRating)

	stats, err = f.stats.GetCafeStats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.AverageRating)
}

func TestStatsService_GetCafeStats_Deterministic(t *testing.T) {
	f := newStatsFixture(t)
	f.addRatings(t, 1, 5, 4, 2)

	first, err := f.stats.GetCafeStats(context.Background(), 1)
	require.NoError(t, err)
	second, err := f.stats.GetCafeStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatsService_GetStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.engagement.AddLog(ctx, "user-1", entities.EmotionTired))
	require.NoError(t, f.engagement.AddLog(ctx, "user-2", entities.EmotionHappy))
	require.NoError(t, f.engagement.AddLog(ctx, "user-1", entities.EmotionTired))

	usage, err := f.stats.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, usage.TotalLogs)
	assert.Equal(t, 3, usage.RecentActivity)
	require.Len(t, usage.EmotionData, 2)
	// First-seen order, not count order.
	assert.Equal(t, entities.EmotionCount{Name: "tired", Value: 2}, usage.EmotionData[0])
	assert.Equal(t, entities.EmotionCount{Name: "happy", Value: 1}, usage.EmotionData[1])
}

func TestStatsService_GetStats_CacheInvalidatedByNewLog(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.engagement.AddLog(ctx, "user-1", entities.EmotionHappy))

	usage, err := f.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.TotalLogs)

	require.NoError(t, f.engagement.AddLog(ctx, "user-1", entities.EmotionSad))

	usage, err = f.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, usage.TotalLogs)
}

func TestStatsService_EndToEndScenario(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	first, err := f.engagement.AddReview(ctx, "user-1", "Lee", 1, 5, "lovely hanok")
	require.NoError(t, err)
	_, err = f.engagement.AddReview(ctx, "user-2", "Kim", 1, 4, "good bread")
	require.NoError(t, err)

	stats, err := f.stats.GetCafeStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.AverageRating)
	assert.Equal(t, entities.SentimentPositive, stats.Sentiment)

	ok, err := f.engagement.UpdateReview(ctx, first.ID, 1, "changed my mind")
	require.NoError(t, err)
	require.True(t, ok)

	stats, err = f.stats.GetCafeStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, stats.AverageRating)
	assert.Equal(t, entities.SentimentNeutral, stats.Sentiment)

	require.NoError(t, f.engagement.DeleteReview(ctx, first.ID))

	stats, err = f.stats.GetCafeStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 1, stats.ReviewCount)
}
