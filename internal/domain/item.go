package domain

import (
	"slices"
)

// Reference data for one movable item type.
type ItemDefinition struct {
	Key              string
	VolumeM3         float64
	MinTruckSizeM3   float64
	StairTimeSeconds float64
}

// Quantity limits of one quote. Anything above is rejected as ErrInvalidInput.
const (
	MaxItemQuantity = 1_000
	MaxTotalItems   = 10_000
	// MaxTotalVolumeM3 bounds the truck allocation to 5000 trucks.
	MaxTotalVolumeM3 = 100_000.0
)

// Selection maps item keys to quantities. Zero quantities are equivalent to absence.
type Selection map[string]int

// Keys returns the keys with a non-zero quantity in sorted order.
func (s Selection) Keys() []string {
	keys := make([]string, 0, len(s))
	for k, q := range s {
		if q == 0 {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// TotalItems sums all quantities.
func (s Selection) TotalItems() int {
	n := 0
	for _, q := range s {
		n += q
	}
	return n
}

// Clone returns a copy without zero-quantity entries.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, q := range s {
		if q != 0 {
			out[k] = q
		}
	}
	return out
}
