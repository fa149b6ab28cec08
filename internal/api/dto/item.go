package dto

type ItemResponse struct {
	Key              string  `json:"key"`
	VolumeM3         float64 `json:"volume_m3"`
	MinTruckSizeM3   float64 `json:"min_truck_size_m3"`
	StairTimeSeconds float64 `json:"stair_time_seconds"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}
