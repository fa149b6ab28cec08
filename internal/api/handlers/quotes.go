package handlers

import (
	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
	"moving-quote-service/internal/services"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

type QuoteHandler struct {
	Catalog   ports.ItemCatalog
	Geocoder  ports.Geocoder
	Distances ports.DistanceProvider
}

// Quote prices one move. Without distance_km the route between the two addresses is
// resolved first; a quote never mixes a supplied distance with a resolved one.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, "quote", err)
		return
	}

	urgency, err := domain.ParseUrgency(req.Urgency)
	if err != nil {
		writeDomainError(w, r, "quote", err)
		return
	}

	in := domain.QuoteInputs{
		Selection:        domain.Selection(req.Items),
		DistanceKm:       req.DistanceKm,
		FloorsSourceDown: req.FloorsSourceDown,
		FloorsDestUp:     req.FloorsDestUp,
		Urgency:          urgency,
	}

	// An empty selection is reported before any maps call is made.
	var route *domain.ConfirmedRoute
	hasAddresses := strings.TrimSpace(req.PickupAddress) != "" && strings.TrimSpace(req.DeliveryAddress) != ""
	if in.DistanceKm == nil && hasAddresses && len(in.Selection.Keys()) > 0 {
		route, err = services.ResolveRoute(r.Context(), services.RouteRequest{
			Pickup:   req.PickupAddress,
			Delivery: req.DeliveryAddress,
		}, h.Geocoder, h.Distances)
		if err != nil {
			writeDomainError(w, r, "quote", err)
			return
		}
		km := route.Distance.DistanceKm
		in.DistanceKm = &km
	}

	b, err := services.ComputeQuote(in, h.Catalog)
	if err != nil {
		writeDomainError(w, r, "quote", err)
		return
	}

	res := quoteResponse(b)
	if route != nil {
		res.Route = routeResponse(route)
	}
	writeJSON(w, r, http.StatusOK, res)
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func quoteResponse(b domain.QuoteBreakdown) dto.QuoteResponse {
	trucks := make([]int, 0, len(b.TruckAllocation))
	for _, t := range b.TruckAllocation {
		trucks = append(trucks, int(t))
	}

	lines := make([]dto.QuoteLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, dto.QuoteLineResponse{Key: l.Key, Quantity: l.Quantity, VolumeM3: l.VolumeM3})
	}

	return dto.QuoteResponse{
		TotalVolumeM3:       b.TotalVolumeM3,
		TotalItems:          b.TotalItems,
		Trucks:              trucks,
		TruckLabel:          b.TruckAllocation.String(),
		RequiredTruckSizeM3: b.RequiredTruckSizeM3,
		RatePerMinute:       money(b.RatePerMinute),
		StairMinutes:        b.StairMinutes,
		UrgencyMultiplier:   b.UrgencyMultiplier,
		TruckFee:            money(b.TruckFee),
		DistanceFee:         money(b.DistanceFee),
		HandlingFee:         money(b.HandlingFee),
		UrgencyFee:          money(b.UrgencyFee),
		TotalPrice:          money(b.TotalPrice),
		Lines:               lines,
		Inputs: dto.QuoteInputsResponse{
			Items:            b.Inputs.Selection,
			DistanceKm:       *b.Inputs.DistanceKm,
			FloorsSourceDown: b.Inputs.FloorsSourceDown,
			FloorsDestUp:     b.Inputs.FloorsDestUp,
			Urgency:          string(b.Inputs.Urgency),
		},
	}
}
