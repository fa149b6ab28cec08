package domain

import (
	"math"
	"slices"
	"testing"
)

func TestAllocateTrucks(t *testing.T) {
	tests := []struct {
		volume float64
		want   TruckAllocation
		fee    float64
	}{
		{volume: 0, want: TruckAllocation{}, fee: 0},
		{volume: 2.7, want: TruckAllocation{12}, fee: 107.91},
		{volume: 12, want: TruckAllocation{12}, fee: 107.91},
		{volume: 13, want: TruckAllocation{20}, fee: 129.31},
		{volume: 20, want: TruckAllocation{20}, fee: 129.31},
		{volume: 21, want: TruckAllocation{20, 12}, fee: 237.22},
		{volume: 40, want: TruckAllocation{20, 20}, fee: 258.62},
		{volume: 41, want: TruckAllocation{20, 20, 12}, fee: 366.53},
		{volume: 55, want: TruckAllocation{20, 20, 20}, fee: 387.93},
	}

	for _, tt := range tests {
		got := AllocateTrucks(tt.volume)
		if !slices.Equal(got, tt.want) {
			t.Errorf("AllocateTrucks(%v) = %v, want %v", tt.volume, got, tt.want)
			continue
		}

		if math.Abs(got.Fee()-tt.fee) > 1e-9 {
			t.Errorf("AllocateTrucks(%v).Fee() = %v, want %v", tt.volume, got.Fee(), tt.fee)
		}
	}
}

func TestAllocateTrucksCoversVolume(t *testing.T) {
	for v := 0.0; v <= 100; v += 0.25 {
		a := AllocateTrucks(v)
		if a.CapacityM3() < v {
			t.Fatalf("allocation %v for %v m³ has capacity %v", a, v, a.CapacityM3())
		}
		for _, size := range a {
			if size != SmallTruck && size != LargeTruck {
				t.Fatalf("unexpected truck size %d for %v m³", size, v)
			}
		}
	}
}

func TestAllocateTrucksNegativeVolume(t *testing.T) {
	if got := AllocateTrucks(-3); len(got) != 0 {
		t.Fatalf("AllocateTrucks(-3) = %v, want empty", got)
	}
}

func TestTruckAllocationString(t *testing.T) {
	if got := (TruckAllocation{20, 12}).String(); got != "20m³ + 12m³" {
		t.Fatalf("label = %q", got)
	}
	if got := (TruckAllocation{}).String(); got != "" {
		t.Fatalf("empty label = %q", got)
	}
}

func TestParseUrgency(t *testing.T) {
	cases := map[string]Urgency{
		"":        UrgencyPlanned,
		"planned": UrgencyPlanned,
		"URGENT":  UrgencyUrgent,
		" urgent": UrgencyUrgent,
	}
	for in, want := range cases {
		got, err := ParseUrgency(in)
		if err != nil {
			t.Fatalf("ParseUrgency(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseUrgency(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseUrgency("tomorrow"); err == nil {
		t.Fatal("expected error for unknown urgency")
	}
}

func TestSelectionKeysSkipsZeroQuantities(t *testing.T) {
	s := Selection{"b": 1, "a": 2, "c": 0}
	if got := s.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Keys() = %v", got)
	}
	if got := s.TotalItems(); got != 3 {
		t.Fatalf("TotalItems() = %d, want 3", got)
	}
}
