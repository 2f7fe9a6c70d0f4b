package providers

import (
	"context"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// ClassifyRequest carries one user chat turn plus the session context the
// classifier needs to decide whether it has enough information.
type ClassifyRequest struct {
	Text     string
	History  []entities.ChatTurn
	Language string
}

// Classification is the strict response schema expected from a classifier.
// When NeedsMoreInfo is true, Emotion must be empty.
type Classification struct {
	Response      string `json:"response"`
	NeedsMoreInfo bool   `json:"needsMoreInfo"`
	Emotion       string `json:"emotion,omitempty"`
}

// MoodClassifier classifies the user's mood from free text. Implementations
// may call an external model; any transport or schema failure is returned as
// an error and the caller falls back to deterministic keyword matching.
type MoodClassifier interface {
	Classify(ctx context.Context, req *ClassifyRequest) (*Classification, error)
}
