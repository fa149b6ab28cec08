package ports

import (
	"context"
	"moving-quote-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the normalized address and its coordinates.
	// Failures wrap one of the domain adapter errors.
	Geocode(ctx context.Context, address string) (domain.GeocodeResult, error)
}

// Contract for retrieving driving distance and duration between two points.
type DistanceProvider interface {
	// Return driving distance and estimated duration from origin to destination.
	RouteDistance(ctx context.Context, origin, destination domain.Coordinates) (domain.DistanceResult, error)
}

// Both halves of the maps adapter.
type MapsProvider interface {
	Geocoder
	DistanceProvider
}
