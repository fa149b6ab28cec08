package domain

import (
	"fmt"
	"strings"
)

// Urgency selects the service level of a move.
type Urgency string

const (
	UrgencyPlanned Urgency = "PLANNED"
	UrgencyUrgent  Urgency = "URGENT"
)

// ParseUrgency accepts the enum names case-insensitively; empty means PLANNED.
func ParseUrgency(s string) (Urgency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(UrgencyPlanned):
		return UrgencyPlanned, nil
	case string(UrgencyUrgent):
		return UrgencyUrgent, nil
	default:
		return "", fmt.Errorf("parse urgency %q: %w", s, ErrInvalidInput)
	}
}

// Multiplier applied to the fee subtotal.
func (u Urgency) Multiplier() float64 {
	if u == UrgencyUrgent {
		return 1.5
	}
	return 1.0
}

// Inputs of one quote calculation. A new value is built for every recalculation.
// DistanceKm is nil until a distance has been resolved or supplied.
type QuoteInputs struct {
	Selection        Selection
	DistanceKm       *float64
	FloorsSourceDown int
	FloorsDestUp     int
	Urgency          Urgency
}

// One selected item in a quote summary.
type QuoteLine struct {
	Key      string
	Quantity int
	VolumeM3 float64
}

// Price breakdown produced by the quote engine.
//
// TotalPrice == UrgencyMultiplier * (TruckFee + DistanceFee + HandlingFee) and
// UrgencyFee is the remainder above that subtotal.
type QuoteBreakdown struct {
	TotalVolumeM3   float64
	TotalItems      int
	TruckAllocation TruckAllocation
	TruckFee        float64
	DistanceFee     float64
	HandlingFee     float64
	UrgencyFee      float64
	TotalPrice      float64

	RatePerMinute       float64
	StairMinutes        float64
	UrgencyMultiplier   float64
	RequiredTruckSizeM3 float64
	Lines               []QuoteLine
	Inputs              QuoteInputs
}

// Subtotal is the fee sum before the urgency multiplier.
func (b QuoteBreakdown) Subtotal() float64 {
	return b.TruckFee + b.DistanceFee + b.HandlingFee
}
