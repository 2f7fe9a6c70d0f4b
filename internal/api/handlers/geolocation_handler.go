package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/moodbrew/moodbrew-backend/internal/catalog"
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

const defaultNearbyRadiusKm = 5.0

// GeolocationHandler handles proximity lookups against the cafe catalog.
type GeolocationHandler struct {
	provider providers.GeolocationProvider
}

// NewGeolocationHandler creates a new geolocation handler.
func NewGeolocationHandler(provider providers.GeolocationProvider) *GeolocationHandler {
	return &GeolocationHandler{provider: provider}
}

type nearbyCafe struct {
	Cafe       entities.Cafe `json:"cafe"`
	DistanceKm float64       `json:"distanceKm"`
}

// Nearby handles GET /api/nearby?lat=...&lng=...&radius=...&lang=...
func (h *GeolocationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lngStr := strings.TrimSpace(r.URL.Query().Get("lng"))
	if latStr == "" || lngStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lng parameters are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lng parameter")
		return
	}

	radius := defaultNearbyRadiusKm
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid radius parameter")
			return
		}
	}

	center := entities.Coordinates{Lat: lat, Lng: lng}
	results := []nearbyCafe{}
	for _, cafe := range catalog.All(language(r)) {
		distance, err := h.provider.Distance(r.Context(), center, cafe.Location)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to compute distance")
			return
		}
		if distance <= radius {
			results = append(results, nearbyCafe{Cafe: cafe, DistanceKm: distance})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cafes": results,
		"count": len(results),
	})
}
