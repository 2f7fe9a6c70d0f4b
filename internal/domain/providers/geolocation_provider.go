package providers

import (
	"context"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// GeolocationProvider defines the interface for location math. Location
// support is strictly optional: callers must keep working when coordinates
// are unavailable.
type GeolocationProvider interface {
	// Distance returns the distance between two points in kilometers.
	Distance(ctx context.Context, from, to entities.Coordinates) (float64, error)
}
