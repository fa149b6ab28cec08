package handlers

import (
	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
	"moving-quote-service/internal/services"
	"net/http"
)

type RouteHandler struct {
	Geocoder  ports.Geocoder
	Distances ports.DistanceProvider
}

// Confirm geocodes both addresses and returns the driving distance between them.
func (h *RouteHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, "confirm route", err)
		return
	}

	route, err := services.ResolveRoute(r.Context(), services.RouteRequest{
		Pickup:   req.PickupAddress,
		Delivery: req.DeliveryAddress,
	}, h.Geocoder, h.Distances)
	if err != nil {
		writeDomainError(w, r, "confirm route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(route))
}

func routeResponse(route *domain.ConfirmedRoute) *dto.RouteResponse {
	return &dto.RouteResponse{
		Pickup:          locationResponse(route.Pickup),
		Delivery:        locationResponse(route.Delivery),
		DistanceKm:      route.Distance.DistanceKm,
		DurationMinutes: route.Distance.DurationMinutes,
		DistanceText:    route.Distance.DistanceText,
		DurationText:    route.Distance.DurationText,
	}
}

func locationResponse(g domain.GeocodeResult) dto.LocationResponse {
	return dto.LocationResponse{
		FormattedAddress: g.FormattedAddress,
		Lat:              g.Location.Lat,
		Lng:              g.Location.Lng,
	}
}
