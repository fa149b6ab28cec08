package services

// RatePerMinute returns the labor rate in €/minute for a number of items.
// Beyond 25 items the rate grows by 1 for every started block of 5 items.
func RatePerMinute(totalItems int) float64 {
	switch {
	case totalItems <= 5:
		return 2.0
	case totalItems <= 10:
		return 3.0
	case totalItems <= 15:
		return 4.0
	case totalItems <= 20:
		return 5.5
	case totalItems <= 25:
		return 6.5
	}

	// Ceiling division over the items above 25.
	blocks := (totalItems - 25 + 4) / 5
	return 7.35 + float64(blocks)
}

const (
	freeDistanceKm  = 15.0
	distanceRateKm  = 2.6
	destFloorWeight = 1.2
)

// DistanceFee is the surcharge for the distance beyond the first 15 km.
func DistanceFee(distanceKm float64) float64 {
	if distanceKm <= freeDistanceKm {
		return 0
	}
	return distanceRateKm * (distanceKm - freeDistanceKm)
}

// HandlingFee prices carrying time. The base multiplier of 1 applies at ground level and
// every destination floor (carried up) weighs 1.2 source floors (carried down).
func HandlingFee(ratePerMinute, stairMinutes float64, floorsSourceDown, floorsDestUp int) float64 {
	floors := 1 + float64(floorsSourceDown) + destFloorWeight*float64(floorsDestUp)
	return ratePerMinute * stairMinutes * floors
}
