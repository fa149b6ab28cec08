package dto

type RouteRequest struct {
	PickupAddress   string `json:"pickup_address" validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
}

type LocationResponse struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

type RouteResponse struct {
	Pickup          LocationResponse `json:"pickup"`
	Delivery        LocationResponse `json:"delivery"`
	DistanceKm      float64          `json:"distance_km"`
	DurationMinutes float64          `json:"duration_minutes"`
	DistanceText    string           `json:"distance_text"`
	DurationText    string           `json:"duration_text"`
}
