package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// ChatHandler handles the conversational mood flow.
type ChatHandler struct {
	mood *services.MoodService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(mood *services.MoodService) *ChatHandler {
	return &ChatHandler{mood: mood}
}

type chatTurnPayload struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatRequest struct {
	Text     string            `json:"text"`
	History  []chatTurnPayload `json:"history"`
	Language string            `json:"language"`
}

// Analyze handles POST /api/chat
func (h *ChatHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}

	history := make([]entities.ChatTurn, 0, len(payload.History))
	for _, turn := range payload.History {
		history = append(history, entities.ChatTurn{Sender: turn.Sender, Text: turn.Text})
	}

	analysis, err := h.mood.Analyze(r.Context(), payload.Text, history, payload.Language)
	if err != nil {
		respondWithServiceError(w, err, "failed to analyze message")
		return
	}
	respondWithJSON(w, http.StatusOK, analysis)
}
