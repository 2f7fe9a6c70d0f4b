package handlers

import (
	"net/http"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	accounts *services.AccountService
	stats    *services.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(accounts *services.AccountService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{accounts: accounts, stats: stats}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "failed to list users")
		return
	}

	sanitized := make([]entities.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": sanitized,
		"count": len(sanitized),
	})
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(w, err, "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "failed to compute usage stats")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
