package dto

// QuoteRequest carries either a known distance or both addresses to resolve one.
// The per-item bound matches domain.MaxItemQuantity; the total is checked by the engine.
type QuoteRequest struct {
	Items            map[string]int `json:"items" validate:"max=100,dive,gte=0,lte=1000"`
	DistanceKm       *float64       `json:"distance_km" validate:"omitempty,gte=0"`
	PickupAddress    string         `json:"pickup_address" validate:"required_with=DeliveryAddress"`
	DeliveryAddress  string         `json:"delivery_address" validate:"required_with=PickupAddress"`
	FloorsSourceDown int            `json:"floors_source_down" validate:"gte=0"`
	FloorsDestUp     int            `json:"floors_dest_up" validate:"gte=0"`
	Urgency          string         `json:"urgency"`
}

type QuoteLineResponse struct {
	Key      string  `json:"key"`
	Quantity int     `json:"quantity"`
	VolumeM3 float64 `json:"volume_m3"`
}

type QuoteInputsResponse struct {
	Items            map[string]int `json:"items"`
	DistanceKm       float64        `json:"distance_km"`
	FloorsSourceDown int            `json:"floors_source_down"`
	FloorsDestUp     int            `json:"floors_dest_up"`
	Urgency          string         `json:"urgency"`
}

// Money fields are fixed two-decimal strings.
type QuoteResponse struct {
	TotalVolumeM3       float64             `json:"total_volume_m3"`
	TotalItems          int                 `json:"total_items"`
	Trucks              []int               `json:"trucks"`
	TruckLabel          string              `json:"truck_label"`
	RequiredTruckSizeM3 float64             `json:"required_truck_size_m3"`
	RatePerMinute       string              `json:"rate_per_minute"`
	StairMinutes        float64             `json:"stair_minutes"`
	UrgencyMultiplier   float64             `json:"urgency_multiplier"`
	TruckFee            string              `json:"truck_fee"`
	DistanceFee         string              `json:"distance_fee"`
	HandlingFee         string              `json:"handling_fee"`
	UrgencyFee          string              `json:"urgency_fee"`
	TotalPrice          string              `json:"total_price"`
	Lines               []QuoteLineResponse `json:"lines"`
	Inputs              QuoteInputsResponse `json:"inputs"`
	Route               *RouteResponse      `json:"route,omitempty"`
}
