package ports

import "moving-quote-service/internal/domain"

// Port: read-only access to item reference data.
type ItemCatalog interface {
	// Return the definition for key or an error wrapping domain.ErrUnknownItem.
	Lookup(key string) (domain.ItemDefinition, error)
	// Return all definitions in catalog order.
	All() []domain.ItemDefinition
}
