package routes

import (
	"net/http"

	"github.com/moodbrew/moodbrew-backend/internal/api/handlers"
	"github.com/moodbrew/moodbrew-backend/internal/api/middleware"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler        *handlers.AuthHandler
	adminHandler       *handlers.AdminHandler
	engagementHandler  *handlers.EngagementHandler
	cafeHandler        *handlers.CafeHandler
	chatHandler        *handlers.ChatHandler
	geolocationHandler *handlers.GeolocationHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	engagementHandler *handlers.EngagementHandler,
	cafeHandler *handlers.CafeHandler,
	chatHandler *handlers.ChatHandler,
	geolocationHandler *handlers.GeolocationHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		authHandler:        authHandler,
		adminHandler:       adminHandler,
		engagementHandler:  engagementHandler,
		cafeHandler:        cafeHandler,
		chatHandler:        chatHandler,
		geolocationHandler: geolocationHandler,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/google", r.authHandler.LoginWithGoogle)
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/reset/start", r.authHandler.StartPasswordReset)
	r.mux.HandleFunc("POST /api/auth/reset/complete", r.authHandler.CompletePasswordReset)

	// Admin endpoints
	r.mux.HandleFunc("GET /api/admin/users", r.adminHandler.ListUsers)
	r.mux.HandleFunc("DELETE /api/admin/users/{id}", r.adminHandler.DeleteUser)
	r.mux.HandleFunc("GET /api/admin/stats", r.adminHandler.GetStats)

	// Emotion log endpoints
	r.mux.HandleFunc("POST /api/logs", r.engagementHandler.AddLog)

	// Favorite endpoints
	r.mux.HandleFunc("POST /api/favorites/toggle", r.engagementHandler.ToggleFavorite)
	r.mux.HandleFunc("GET /api/favorites", r.engagementHandler.GetFavorites)

	// Review endpoints
	r.mux.HandleFunc("POST /api/reviews", r.engagementHandler.AddReview)
	r.mux.HandleFunc("PUT /api/reviews/{id}", r.engagementHandler.UpdateReview)
	r.mux.HandleFunc("DELETE /api/reviews/{id}", r.engagementHandler.DeleteReview)

	// Cafe catalog endpoints
	r.mux.HandleFunc("GET /api/cafes", r.cafeHandler.ListCafes)
	r.mux.HandleFunc("GET /api/cafes/{id}", r.cafeHandler.GetCafe)
	r.mux.HandleFunc("GET /api/cafes/{id}/reviews", r.cafeHandler.GetCafeReviews)
	r.mux.HandleFunc("GET /api/cafes/{id}/stats", r.cafeHandler.GetCafeStats)

	// Chat endpoint
	r.mux.HandleFunc("POST /api/chat", r.chatHandler.Analyze)

	// Geolocation endpoint
	r.mux.HandleFunc("GET /api/nearby", r.geolocationHandler.Nearby)

	// Apply middleware, innermost first
	var handler http.Handler = r.mux
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
