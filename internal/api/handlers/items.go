package handlers

import (
	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ItemHandler exposes the read-only item catalog.
type ItemHandler struct {
	Catalog ports.ItemCatalog
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.All()

	res := dto.ListItemsResponse{Items: make([]dto.ItemResponse, 0, len(items))}
	for _, it := range items {
		res.Items = append(res.Items, itemResponse(it))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.Catalog.Lookup(chi.URLParam(r, "key"))
	if err != nil {
		writeDomainError(w, r, "get item", err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse(it))
}

func itemResponse(it domain.ItemDefinition) dto.ItemResponse {
	return dto.ItemResponse{
		Key:              it.Key,
		VolumeM3:         it.VolumeM3,
		MinTruckSizeM3:   it.MinTruckSizeM3,
		StairTimeSeconds: it.StairTimeSeconds,
	}
}
