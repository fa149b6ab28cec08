package domain

import (
	"fmt"
	"strings"
)

// TruckSize is a truck's cargo capacity in cubic meters.
type TruckSize int

const (
	SmallTruck TruckSize = 12
	LargeTruck TruckSize = 20
)

const (
	smallTruckFee = 107.91
	largeTruckFee = 129.31
)

// Fee returns the base rental fee for one truck of this size.
func (t TruckSize) Fee() float64 {
	if t <= SmallTruck {
		return smallTruckFee
	}
	return largeTruckFee
}

// Ordered sequence of trucks chosen to carry a total volume.
type TruckAllocation []TruckSize

// AllocateTrucks packs a total volume into trucks using a greedy policy.
//
// Full 20 m³ trucks are emitted while more than 20 m³ remain. A remainder in (12, 20]
// gets one more 20 m³ truck and a remainder in (0, 12] gets a 12 m³ truck.
// The policy is not volume-optimal and is kept as the business defines it.
func AllocateTrucks(totalVolumeM3 float64) TruckAllocation {
	trucks := TruckAllocation{}
	remaining := totalVolumeM3

	for remaining > float64(LargeTruck) {
		trucks = append(trucks, LargeTruck)
		remaining -= float64(LargeTruck)
	}

	// Allocation stops after the remainder truck; any overshoot is spare capacity.
	if remaining > float64(SmallTruck) {
		trucks = append(trucks, LargeTruck)
	} else if remaining > 0 {
		trucks = append(trucks, SmallTruck)
	}

	return trucks
}

// Fee sums the per-truck fees of the allocation.
func (a TruckAllocation) Fee() float64 {
	fee := 0.0
	for _, t := range a {
		fee += t.Fee()
	}
	return fee
}

// CapacityM3 is the total cargo capacity of the allocation.
func (a TruckAllocation) CapacityM3() float64 {
	total := 0.0
	for _, t := range a {
		total += float64(t)
	}
	return total
}

// Render the allocation for display, e.g. "20m³ + 12m³".
func (a TruckAllocation) String() string {
	parts := make([]string, 0, len(a))
	for _, t := range a {
		parts = append(parts, fmt.Sprintf("%dm³", int(t)))
	}
	return strings.Join(parts, " + ")
}
