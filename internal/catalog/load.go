package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"moving-quote-service/internal/domain"
	"os"

	"github.com/go-playground/validator/v10"
)

// itemRecord is one row of the catalog configuration file.
// Pointers distinguish a missing field from a zero value.
type itemRecord struct {
	Key          string   `json:"key" validate:"required"`
	Volume       *float64 `json:"volume" validate:"required,gt=0"`
	MinTruckSize *float64 `json:"min_truck_size" validate:"required,gt=0"`
	StairTime    *float64 `json:"stairTime" validate:"required,gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads a JSON array of item records. Any missing or invalid field fails the load.
func LoadFile(path string) (*Catalog, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	var records []itemRecord
	if err := json.Unmarshal(bytes, &records); err != nil {
		return nil, fmt.Errorf("load catalog: parse json: %w", err)
	}

	items := make([]domain.ItemDefinition, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("load catalog: record at index %d: %w", i+1, err)
		}
		items = append(items, domain.ItemDefinition{
			Key:              r.Key,
			VolumeM3:         *r.Volume,
			MinTruckSizeM3:   *r.MinTruckSize,
			StairTimeSeconds: *r.StairTime,
		})
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault keeps the calculator usable without configuration:
// a missing or malformed file is logged and replaced by the built-in catalog.
func LoadOrDefault(path string) *Catalog {
	c, err := LoadFile(path)
	if err != nil {
		log.Printf("warning: catalog unavailable, using built-in items: %v", err)
		return Default()
	}
	return c
}
