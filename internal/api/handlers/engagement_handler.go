package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// EngagementHandler handles emotion logs, favorites and reviews.
type EngagementHandler struct {
	engagement *services.EngagementService
}

// NewEngagementHandler creates a new engagement handler.
func NewEngagementHandler(engagement *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

type addLogRequest struct {
	UserID  string `json:"userId"`
	Emotion string `json:"emotion"`
}

// AddLog handles POST /api/logs
func (h *EngagementHandler) AddLog(w http.ResponseWriter, r *http.Request) {
	var payload addLogRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.engagement.AddLog(r.Context(), payload.UserID, entities.Emotion(payload.Emotion)); err != nil {
		respondWithServiceError(w, err, "failed to record emotion")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

type toggleFavoriteRequest struct {
	UserID string `json:"userId"`
	CafeID int    `json:"cafeId"`
}

// ToggleFavorite handles POST /api/favorites/toggle
func (h *EngagementHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var payload toggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.UserID == "" {
		respondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}

	favorited, err := h.engagement.ToggleFavorite(r.Context(), payload.UserID, payload.CafeID)
	if err != nil {
		respondWithServiceError(w, err, "failed to toggle favorite")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

// GetFavorites handles GET /api/favorites?userId=...
func (h *EngagementHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}

	ids, err := h.engagement.GetFavorites(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err, "failed to load favorites")
		return
	}
	if ids == nil {
		ids = []int{}
	}
	respondWithJSON(w, http.StatusOK, map[string][]int{"cafeIds": ids})
}

type addReviewRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	CafeID   int    `json:"cafeId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// AddReview handles POST /api/reviews
func (h *EngagementHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var payload addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.UserID == "" || payload.UserName == "" {
		respondWithError(w, http.StatusBadRequest, "userId and userName are required")
		return
	}

	review, err := h.engagement.AddReview(r.Context(), payload.UserID, payload.UserName, payload.CafeID, payload.Rating, payload.Comment)
	if err != nil {
		respondWithServiceError(w, err, "failed to create review")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"review": review})
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *EngagementHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var payload updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ok, err := h.engagement.UpdateReview(r.Context(), r.PathValue("id"), payload.Rating, payload.Comment)
	if err != nil {
		respondWithServiceError(w, err, "failed to update review")
		return
	}
	if !ok {
		respondWithError(w, http.StatusNotFound, "review not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *EngagementHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.engagement.DeleteReview(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err, "failed to delete review")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
