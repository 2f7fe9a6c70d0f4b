package services

import (
	"context"
	"strings"

	"github.com/moodbrew/moodbrew-backend/internal/catalog"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/observability"
)

// fallbackKeywords maps each emotion to the substrings the deterministic
// classifier scans for, case-insensitively. Emotions are scanned in
// entities.ClassifiableEmotions order and the first hit wins.
var fallbackKeywords = map[entities.Emotion][]string{
	entities.EmotionHappy:    {"happy", "good", "great", "awesome", "excited", "joy", "행복", "좋아", "신나", "기뻐"},
	entities.EmotionSad:      {"sad", "down", "blue", "depressed", "crying", "melancholy", "슬퍼", "우울", "눈물", "힘드네"},
	entities.EmotionStressed: {"stressed", "anxious", "busy", "deadline", "pressure", "스트레스", "바빠", "불안", "짜증"},
	entities.EmotionTired:    {"tired", "exhausted", "sleepy", "drained", "fatigue", "피곤", "지쳐", "졸려", "힘들어"},
	entities.EmotionExcited:  {"pumped", "energy", "ready", "let's go", "신나", "에너지", "가자"},
}

var fallbackResponses = map[string]map[entities.Emotion]string{
	"en": {
		entities.EmotionHappy:    "That's wonderful! Keep that positive energy flowing.",
		entities.EmotionSad:      "I'm sorry to hear you're feeling down.",
		entities.EmotionStressed: "Take a deep breath. It sounds like you need a break.",
		entities.EmotionTired:    "It's been a long day, hasn't it?",
		entities.EmotionExcited:  "Love the enthusiasm!",
	},
	"ko": {
		entities.EmotionHappy:    "정말 멋져요! 그 긍정적인 에너지를 계속 유지하세요.",
		entities.EmotionSad:      "기분이 안 좋으시다니 저도 마음이 아프네요.",
		entities.EmotionStressed: "깊게 숨을 한번 들이마셔 보세요. 휴식이 필요해 보여요.",
		entities.EmotionTired:    "긴 하루였군요, 그렇죠?",
		entities.EmotionExcited:  "그 열정 정말 좋아요!",
	},
}

var fallbackDefaults = map[string]string{
	"en": "I'm having trouble connecting to my brain right now, but I'm listening.",
	"ko": "지금은 연결이 조금 불안정하지만, 듣고 있어요.",
}

var firstTurnPrompts = map[string]string{
	"en": "I hear you. Tell me a little more about what's behind that feeling today.",
	"ko": "그렇군요. 조금만 더 이야기해 주세요. 오늘 어떤 일이 있으셨나요?",
}

// MoodService is the conversational mood classifier: it decides when enough
// information has been gathered, emits an emotion from the closed set and
// resolves it to the first matching catalog entry.
type MoodService struct {
	classifier providers.MoodClassifier
}

// NewMoodService creates a new mood service. classifier may be nil, in
// which case every turn uses the deterministic keyword fallback.
func NewMoodService(classifier providers.MoodClassifier) *MoodService {
	return &MoodService{classifier: classifier}
}

// Analyze processes one user chat turn. The first turn of a session never
// yields an emotion: clarification is forced here, not just requested in
// the model prompt. Classifier failures are never surfaced; they route to
// the keyword fallback.
func (s *MoodService) Analyze(ctx context.Context, text string, history []entities.ChatTurn, language string) (*entities.MoodAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	language = normalizeLanguage(language)

	if s.classifier != nil {
		result, err := s.classifier.Classify(ctx, &providers.ClassifyRequest{
			Text:     text,
			History:  history,
			Language: language,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Msg("mood classifier unavailable, using keyword fallback")
		} else {
			return s.resolve(result, history, language), nil
		}
	}

	return s.fallback(text, history, language), nil
}

// resolve applies the first-turn rule to a successful classification and
// attaches the recommendation for an emitted emotion.
func (s *MoodService) resolve(result *providers.Classification, history []entities.ChatTurn, language string) *entities.MoodAnalysis {
	if len(history) == 0 || result.NeedsMoreInfo {
		return &entities.MoodAnalysis{Text: result.Response}
	}

	emotion := entities.Emotion(result.Emotion)
	if !emotion.IsClassifiable() {
		return &entities.MoodAnalysis{Text: result.Response}
	}

	return &entities.MoodAnalysis{
		Text:           result.Response,
		Emotion:        emotion,
		Recommendation: firstRecommendation(emotion, language),
	}
}

// fallback is the deterministic keyword classifier.
func (s *MoodService) fallback(text string, history []entities.ChatTurn, language string) *entities.MoodAnalysis {
	if len(history) == 0 {
		return &entities.MoodAnalysis{Text: firstTurnPrompts[language]}
	}

	lower := strings.ToLower(text)
	for _, emotion := range entities.ClassifiableEmotions {
		for _, keyword := range fallbackKeywords[emotion] {
			if strings.Contains(lower, keyword) {
				return &entities.MoodAnalysis{
					Text:           fallbackResponses[language][emotion],
					Emotion:        emotion,
					Recommendation: firstRecommendation(emotion, language),
				}
			}
		}
	}

	return &entities.MoodAnalysis{Text: fallbackDefaults[language]}
}

// firstRecommendation returns the first catalog entry tagged with the
// emotion, in catalog insertion order.
func firstRecommendation(emotion entities.Emotion, language string) *entities.Cafe {
	matches := catalog.ByEmotion(emotion, language)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

func normalizeLanguage(language string) string {
	if language == "ko" {
		return "ko"
	}
	return "en"
}
