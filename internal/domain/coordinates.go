package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as "lat,lng" for external API compatibility.
func (c Coordinates) String() string { return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng) }

// Result of resolving a free-text address.
type GeocodeResult struct {
	FormattedAddress string
	Location         Coordinates
}

// Driving distance and travel duration between two locations.
// The text forms are provider-formatted and only used for display.
type DistanceResult struct {
	DistanceKm      float64
	DurationMinutes float64
	DistanceText    string
	DurationText    string
}

// A pickup/delivery pair whose addresses and driving distance have been resolved.
type ConfirmedRoute struct {
	Pickup   GeocodeResult
	Delivery GeocodeResult
	Distance DistanceResult
}
