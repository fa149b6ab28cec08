package ports

import (
	"context"
	"moving-quote-service/internal/domain"
)

// Persistent cache of geocoding results keyed by normalized address.
type GeocodeCache interface {
	GetGeocode(ctx context.Context, address string) (domain.GeocodeResult, bool, error)
	PutGeocode(ctx context.Context, address string, result domain.GeocodeResult) error
}

// Persistent cache of driving distances keyed by origin/destination coordinates.
type DistanceCache interface {
	GetDistance(ctx context.Context, origin, destination domain.Coordinates) (domain.DistanceResult, bool, error)
	PutDistance(ctx context.Context, origin, destination domain.Coordinates, result domain.DistanceResult) error
}
