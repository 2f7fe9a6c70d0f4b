package geolocation

import (
	"context"
	"math"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
)

const earthRadiusKm = 6371

// HaversineProvider computes great-circle distances locally. No external
// service is involved, so it never fails.
type HaversineProvider struct{}

// NewHaversineProvider creates a new haversine geolocation provider.
func NewHaversineProvider() providers.GeolocationProvider {
	return &HaversineProvider{}
}

// Distance returns the distance between two points in kilometers, rounded
// to one decimal place.
func (p *HaversineProvider) Distance(_ context.Context, from, to entities.Coordinates) (float64, error) {
	dLat := deg2rad(to.Lat - from.Lat)
	dLng := deg2rad(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(from.Lat))*math.Cos(deg2rad(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10, nil
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
