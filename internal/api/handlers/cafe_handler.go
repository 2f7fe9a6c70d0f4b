package handlers

import (
	"net/http"
	"strconv"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/catalog"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// CafeHandler serves the cafe catalog with derived stats attached.
type CafeHandler struct {
	stats      *services.StatsService
	engagement *services.EngagementService
}

// NewCafeHandler creates a new cafe handler.
func NewCafeHandler(stats *services.StatsService, engagement *services.EngagementService) *CafeHandler {
	return &CafeHandler{stats: stats, engagement: engagement}
}

// ListCafes handles GET /api/cafes?lang=&emotion=
func (h *CafeHandler) ListCafes(w http.ResponseWriter, r *http.Request) {
	lang := language(r)

	var cafes []entities.Cafe
	if emotion := r.URL.Query().Get("emotion"); emotion != "" {
		cafes = catalog.ByEmotion(entities.Emotion(emotion), lang)
	} else {
		cafes = catalog.All(lang)
	}

	for i := range cafes {
		stats, err := h.stats.GetCafeStats(r.Context(), cafes[i].ID)
		if err != nil {
			respondWithServiceError(w, err, "failed to compute cafe stats")
			return
		}
		cafes[i].Stats = stats
	}

	if cafes == nil {
		cafes = []entities.Cafe{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cafes": cafes,
		"count": len(cafes),
	})
}

// GetCafe handles GET /api/cafes/{id}
func (h *CafeHandler) GetCafe(w http.ResponseWriter, r *http.Request) {
	id, err := cafeID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid cafe id")
		return
	}

	cafe := catalog.ByID(id, language(r))
	if cafe == nil {
		respondWithError(w, http.StatusNotFound, "cafe not found")
		return
	}

	stats, err := h.stats.GetCafeStats(r.Context(), cafe.ID)
	if err != nil {
		respondWithServiceError(w, err, "failed to compute cafe stats")
		return
	}
	cafe.Stats = stats

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"cafe": cafe})
}

// GetCafeStats handles GET /api/cafes/{id}/stats
func (h *CafeHandler) GetCafeStats(w http.ResponseWriter, r *http.Request) {
	id, err := cafeID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid cafe id")
		return
	}

	stats, err := h.stats.GetCafeStats(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "failed to compute cafe stats")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}

// GetCafeReviews handles GET /api/cafes/{id}/reviews
func (h *CafeHandler) GetCafeReviews(w http.ResponseWriter, r *http.Request) {
	id, err := cafeID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid cafe id")
		return
	}

	reviews, err := h.engagement.GetReviews(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "failed to load reviews")
		return
	}
	if reviews == nil {
		reviews = []entities.Review{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func cafeID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func language(r *http.Request) string {
	if r.URL.Query().Get("lang") == "ko" {
		return "ko"
	}
	return "en"
}
