package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
)

const (
	usageStatsCacheKey        = "usage_stats"
	usageStatsCacheTTLSeconds = 60
)

// StatsService derives aggregates from engagement data: per-cafe rating and
// sentiment summaries, and the global usage view for admins.
type StatsService struct {
	reviews repositories.ReviewRepository
	logs    repositories.EmotionLogRepository
	cache   providers.CacheProvider
}

// NewStatsService creates a new stats service. cache may be nil.
func NewStatsService(
	reviews repositories.ReviewRepository,
	logs repositories.EmotionLogRepository,
	cache providers.CacheProvider,
) *StatsService {
	return &StatsService{reviews: reviews, logs: logs, cache: cache}
}

// GetCafeStats computes a cafe's review summary on demand. Stats are never
// persisted; two calls without intervening writes return identical output.
func (s *StatsService) GetCafeStats(ctx context.Context, cafeID int) (*entities.CafeStats, error) {
	reviews, err := s.reviews.ListByCafe(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	if len(reviews) == 0 {
		return &entities.CafeStats{Sentiment: entities.SentimentNeutral}, nil
	}

	total := 0
	positive := 0
	negative := 0
	for _, r := range reviews {
		total += r.Rating
		if r.Rating >= 4 {
			positive++
		}
		if r.Rating <= 2 {
			negative++
		}
	}

	count := len(reviews)
	mean := float64(total) / float64(count)

	// Asymmetric thresholds: a negative trend (30%) flags earlier than a
	// positive one (50%) so mixed review sets surface as negative sooner.
	sentiment := entities.SentimentNeutral
	if positive > negative && float64(positive) > float64(count)*0.5 {
		sentiment = entities.SentimentPositive
	} else if negative > positive && float64(negative) > float64(count)*0.3 {
		sentiment = entities.SentimentNegative
	}

	return &entities.CafeStats{
		AverageRating: roundHalfUp(mean, 1),
		ReviewCount:   count,
		Sentiment:     sentiment,
	}, nil
}

// GetStats computes the global usage aggregate for the admin view. The
// result is cached briefly; new emotion logs invalidate it.
func (s *StatsService) GetStats(ctx context.Context) (*entities.UsageStats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, usageStatsCacheKey); err == nil {
			var cached entities.UsageStats
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.Emotion]int)
	var order []entities.Emotion
	recent := 0
	dayAgo := time.Now().Add(-24 * time.Hour)

	for _, log := range logs {
		if _, seen := counts[log.Emotion]; !seen {
			order = append(order, log.Emotion)
		}
		counts[log.Emotion]++
		if log.Timestamp.After(dayAgo) {
			recent++
		}
	}

	emotionData := make([]entities.EmotionCount, 0, len(order))
	for _, emotion := range order {
		emotionData = append(emotionData, entities.EmotionCount{
			Name:  string(emotion),
			Value: counts[emotion],
		})
	}

	stats := &entities.UsageStats{
		TotalLogs:      len(logs),
		EmotionData:    emotionData,
		RecentActivity: recent,
	}

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = s.cache.Set(ctx, usageStatsCacheKey, data, usageStatsCacheTTLSeconds)
		}
	}
	return stats, nil
}

func roundHalfUp(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Floor(value*scale+0.5) / scale
}
