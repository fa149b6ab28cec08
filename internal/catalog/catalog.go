// Package catalog holds the item reference data used to price a move.
package catalog

import (
	"errors"
	"fmt"
	"moving-quote-service/internal/domain"
	"strings"
)

// Catalog is an immutable, indexed list of item definitions.
// It is safe for concurrent use once constructed.
type Catalog struct {
	items []domain.ItemDefinition
	byKey map[string]int
}

// New validates items and indexes them by key.
func New(items []domain.ItemDefinition) (*Catalog, error) {
	if len(items) == 0 {
		return nil, errors.New("new catalog: item list must not be empty")
	}

	c := &Catalog{
		items: make([]domain.ItemDefinition, 0, len(items)),
		byKey: make(map[string]int, len(items)),
	}

	for i, item := range items {
		key := strings.TrimSpace(item.Key)
		if key == "" {
			return nil, fmt.Errorf("new catalog: item at index %d: key cannot be empty", i+1)
		}
		if _, ok := c.byKey[key]; ok {
			return nil, fmt.Errorf("new catalog: item at index %d: duplicate key %q", i+1, key)
		}
		if item.VolumeM3 <= 0 {
			return nil, fmt.Errorf("new catalog: item %q: volume must be positive", key)
		}
		if item.MinTruckSizeM3 <= 0 {
			return nil, fmt.Errorf("new catalog: item %q: min truck size must be positive", key)
		}
		if item.StairTimeSeconds < 0 {
			return nil, fmt.Errorf("new catalog: item %q: stair time must not be negative", key)
		}

		item.Key = key
		c.byKey[key] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

func (c *Catalog) Lookup(key string) (domain.ItemDefinition, error) {
	i, ok := c.byKey[key]
	if !ok {
		return domain.ItemDefinition{}, fmt.Errorf("lookup %q: %w", key, domain.ErrUnknownItem)
	}
	return c.items[i], nil
}

// All returns a copy of the definitions in catalog order.
func (c *Catalog) All() []domain.ItemDefinition {
	out := make([]domain.ItemDefinition, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// Default returns the built-in catalog used when no configuration is available.
func Default() *Catalog {
	c, err := New(defaultItems())
	if err != nil {
		panic(fmt.Sprintf("default catalog is invalid: %v", err))
	}
	return c
}

func defaultItems() []domain.ItemDefinition {
	return []domain.ItemDefinition{
		{Key: "Small Box", VolumeM3: 0.1, MinTruckSizeM3: 12, StairTimeSeconds: 30},
		{Key: "Large Box", VolumeM3: 0.3, MinTruckSizeM3: 12, StairTimeSeconds: 60},
		{Key: "Sofa 2-seater", VolumeM3: 2.5, MinTruckSizeM3: 12, StairTimeSeconds: 300},
		{Key: "Sofa 3-seater", VolumeM3: 3.5, MinTruckSizeM3: 12, StairTimeSeconds: 420},
		{Key: "Dining Table", VolumeM3: 1.8, MinTruckSizeM3: 12, StairTimeSeconds: 240},
		{Key: "Wardrobe", VolumeM3: 4.0, MinTruckSizeM3: 20, StairTimeSeconds: 600},
		{Key: "Washing Machine", VolumeM3: 0.8, MinTruckSizeM3: 12, StairTimeSeconds: 480},
		{Key: "Refrigerator", VolumeM3: 1.2, MinTruckSizeM3: 12, StairTimeSeconds: 600},
		{Key: "Mattress Single", VolumeM3: 0.5, MinTruckSizeM3: 12, StairTimeSeconds: 120},
		{Key: "Mattress Double", VolumeM3: 0.8, MinTruckSizeM3: 12, StairTimeSeconds: 180},
	}
}
