package services

import (
	"fmt"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
)

// ComputeQuote turns one set of inputs into a full price breakdown.
//
// It is pure: the same inputs and catalog always produce an identical breakdown.
// Item sums run over the selection in key order so float rounding is reproducible.
func ComputeQuote(in domain.QuoteInputs, items ports.ItemCatalog) (domain.QuoteBreakdown, error) {
	keys := in.Selection.Keys()
	if len(keys) == 0 {
		return domain.QuoteBreakdown{}, fmt.Errorf("compute quote: %w", domain.ErrEmptySelection)
	}

	if in.DistanceKm == nil {
		return domain.QuoteBreakdown{}, fmt.Errorf("compute quote: %w", domain.ErrMissingDistance)
	}

	if err := validateInputs(in); err != nil {
		return domain.QuoteBreakdown{}, fmt.Errorf("compute quote: %w", err)
	}

	var (
		totalVolume   float64
		totalItems    int
		stairSeconds  float64
		requiredTruck float64
	)
	lines := make([]domain.QuoteLine, 0, len(keys))

	for _, key := range keys {
		qty := in.Selection[key]
		def, err := items.Lookup(key)
		if err != nil {
			return domain.QuoteBreakdown{}, fmt.Errorf("compute quote: %w", err)
		}

		volume := def.VolumeM3 * float64(qty)
		totalVolume += volume
		totalItems += qty
		stairSeconds += def.StairTimeSeconds * float64(qty)
		requiredTruck = max(requiredTruck, def.MinTruckSizeM3)

		lines = append(lines, domain.QuoteLine{Key: key, Quantity: qty, VolumeM3: volume})
	}
	if totalVolume > domain.MaxTotalVolumeM3 {
		return domain.QuoteBreakdown{}, fmt.Errorf("compute quote: total volume %.1f m³ exceeds %.0f m³: %w",
			totalVolume, domain.MaxTotalVolumeM3, domain.ErrInvalidInput)
	}
	stairMinutes := stairSeconds / 60

	trucks := domain.AllocateTrucks(totalVolume)
	truckFee := trucks.Fee()
	rate := RatePerMinute(totalItems)
	distFee := DistanceFee(*in.DistanceKm)
	handling := HandlingFee(rate, stairMinutes, in.FloorsSourceDown, in.FloorsDestUp)

	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyPlanned
	}
	multiplier := urgency.Multiplier()

	subtotal := truckFee + distFee + handling
	total := multiplier * subtotal

	distance := *in.DistanceKm
	inputs := domain.QuoteInputs{
		Selection:        in.Selection.Clone(),
		DistanceKm:       &distance,
		FloorsSourceDown: in.FloorsSourceDown,
		FloorsDestUp:     in.FloorsDestUp,
		Urgency:          urgency,
	}

	return domain.QuoteBreakdown{
		TotalVolumeM3:       totalVolume,
		TotalItems:          totalItems,
		TruckAllocation:     trucks,
		TruckFee:            truckFee,
		DistanceFee:         distFee,
		HandlingFee:         handling,
		UrgencyFee:          total - subtotal,
		TotalPrice:          total,
		RatePerMinute:       rate,
		StairMinutes:        stairMinutes,
		UrgencyMultiplier:   multiplier,
		RequiredTruckSizeM3: requiredTruck,
		Lines:               lines,
		Inputs:              inputs,
	}, nil
}

func validateInputs(in domain.QuoteInputs) error {
	total := 0
	for key, qty := range in.Selection {
		if qty < 0 {
			return fmt.Errorf("item %q: quantity must not be negative: %w", key, domain.ErrInvalidInput)
		}
		if qty > domain.MaxItemQuantity {
			return fmt.Errorf("item %q: quantity %d exceeds %d: %w", key, qty, domain.MaxItemQuantity, domain.ErrInvalidInput)
		}
		// Both terms are bounded here so the sum cannot overflow.
		total += qty
		if total > domain.MaxTotalItems {
			return fmt.Errorf("total quantity exceeds %d: %w", domain.MaxTotalItems, domain.ErrInvalidInput)
		}
	}

	if *in.DistanceKm < 0 {
		return fmt.Errorf("distance must not be negative: %w", domain.ErrInvalidInput)
	}

	if in.FloorsSourceDown < 0 || in.FloorsDestUp < 0 {
		return fmt.Errorf("floors must not be negative: %w", domain.ErrInvalidInput)
	}

	switch in.Urgency {
	case "", domain.UrgencyPlanned, domain.UrgencyUrgent:
	default:
		return fmt.Errorf("urgency %q: %w", in.Urgency, domain.ErrInvalidInput)
	}

	return nil
}
