package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

type stubClassifier struct {
	result *providers.Classification
	err    error
	calls  int
}

func (s *stubClassifier) Classify(_ context.Context, _ *providers.ClassifyRequest) (*providers.Classification, error) {
	s.calls++
	return s.result, s.err
}

var priorTurn = []entities.ChatTurn{{Sender: "user", Text: "hello"}}

func TestMoodService_FirstTurnNeverYieldsEmotion(t *testing.T) {
	// Even a classifier that jumps to a conclusion on turn one is overridden.
	classifier := &stubClassifier{result: &providers.Classification{
		Response: "You sound happy!",
		Emotion:  "happy",
	}}
	service := services.NewMoodService(classifier)

	analysis, err := service.Analyze(context.Background(), "I am so happy today", nil, "en")
	require.NoError(t, err)
	assert.Equal(t, "You sound happy!", analysis.Text)
	assert.Empty(t, analysis.Emotion)
	assert.Nil(t, analysis.Recommendation)
}

func TestMoodService_NeedsMoreInfoPassesThrough(t *testing.T) {
	classifier := &stubClassifier{result: &providers.Classification{
		Response:      "What happened today?",
		NeedsMoreInfo: true,
	}}
	service := services.NewMoodService(classifier)

	analysis, err := service.Analyze(context.Background(), "not great", priorTurn, "en")
	require.NoError(t, err)
	assert.Equal(t, "What happened today?", analysis.Text)
	assert.Empty(t, analysis.Emotion)
	assert.Nil(t, analysis.Recommendation)
}

func TestMoodService_EmotionAttachesFirstCatalogMatch(t *testing.T) {
	tests := []struct {
		emotion    string
		wantCafeID int
	}{
		{"happy", 1},
		{"sad", 5},
		{"stressed", 3},
		{"tired", 2},
		{"excited", 2},
	}

	for _, tt := range tests {
		t.Run(tt.emotion, func(t *testing.T) {
			classifier := &stubClassifier{result: &providers.Classification{
				Response: "Here is a spot for you.",
				Emotion:  tt.emotion,
			}}
			service := services.NewMoodService(classifier)

			analysis, err := service.Analyze(context.Background(), "long story", priorTurn, "en")
			require.NoError(t, err)
			assert.Equal(t, entities.Emotion(tt.emotion), analysis.Emotion)
			require.NotNil(t, analysis.Recommendation)
			assert.Equal(t, tt.wantCafeID, analysis.Recommendation.ID)
		})
	}
}

func TestMoodService_RecommendationLocalized(t *testing.T) {
	classifier := &stubClassifier{result: &providers.Classification{
		Response: "추천해 드릴게요.",
		Emotion:  "happy",
	}}
	service := services.NewMoodService(classifier)

	analysis, err := service.Analyze(context.Background(), "행복해요", priorTurn, "ko")
	require.NoError(t, err)
	require.NotNil(t, analysis.Recommendation)
	assert.Equal(t, "어니언 안국", analysis.Recommendation.Name)
}

func TestMoodService_ClassifierErrorFallsBack(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("upstream down")}
	service := services.NewMoodService(classifier)

	analysis, err := service.Analyze(context.Background(), "I'm so stressed about the deadline", priorTurn, "en")
	require.NoError(t, err)
	assert.Equal(t, 1, classifier.calls)
	assert.Equal(t, entities.EmotionStressed, analysis.Emotion)
	require.NotNil(t, analysis.Recommendation)
	assert.Equal(t, 3, analysis.Recommendation.ID)
}

func TestMoodService_Fallback_FirstTurnAsksForMore(t *testing.T) {
	service := services.NewMoodService(nil)

	analysis, err := service.Analyze(context.Background(), "I feel happy", nil, "en")
	require.NoError(t, err)
	assert.Empty(t, analysis.Emotion)
	assert.Nil(t, analysis.Recommendation)
	assert.NotEmpty(t, analysis.Text)
}

func TestMoodService_Fallback_Keywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
		want entities.Emotion
	}{
		{"english happy", "Today was a GREAT day", "en", entities.EmotionHappy},
		{"english sad", "feeling down lately", "en", entities.EmotionSad},
		{"english tired", "completely exhausted", "en", entities.EmotionTired},
		{"korean stressed", "스트레스 받아요", "ko", entities.EmotionStressed},
		{"korean tired", "너무 피곤해", "ko", entities.EmotionTired},
		{"happy outranks excited on tie", "happy and pumped", "en", entities.EmotionHappy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := services.NewMoodService(nil)

			analysis, err := service.Analyze(context.Background(), tt.text, priorTurn, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, analysis.Emotion)
			require.NotNil(t, analysis.Recommendation)
		})
	}
}

func TestMoodService_Fallback_NoKeywordMatch(t *testing.T) {
	service := services.NewMoodService(nil)

	analysis, err := service.Analyze(context.Background(), "the weather is weather", priorTurn, "en")
	require.NoError(t, err)
	assert.Empty(t, analysis.Emotion)
	assert.Nil(t, analysis.Recommendation)
	assert.NotEmpty(t, analysis.Text)
}

func TestMoodService_UnknownLanguageDefaultsToEnglish(t *testing.T) {
	service := services.NewMoodService(nil)

	analysis, err := service.Analyze(context.Background(), "feeling happy", priorTurn, "fr")
	require.NoError(t, err)
	assert.Equal(t, entities.EmotionHappy, analysis.Emotion)
	require.NotNil(t, analysis.Recommendation)
	assert.Equal(t, "Onion Anguk", analysis.Recommendation.Name)
}

func TestMoodService_CancelledContext(t *testing.T) {
	service := services.NewMoodService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Analyze(ctx, "hello", nil, "en")
	assert.ErrorIs(t, err, context.Canceled)
}
