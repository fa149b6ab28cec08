package api

import (
	"encoding/json"
	"moving-quote-service/internal/adapters/maps"
	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/catalog"
	"moving-quote-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
)

var (
	pickup   = domain.GeocodeResult{FormattedAddress: "Alexanderplatz 1, 10178 Berlin", Location: domain.Coordinates{Lat: 52.5219, Lng: 13.4132}}
	delivery = domain.GeocodeResult{FormattedAddress: "Am Neuen Markt 1, 14467 Potsdam", Location: domain.Coordinates{Lat: 52.3989, Lng: 13.0657}}
)

func newTestRouter(t *testing.T) (http.Handler, *maps.MockProvider) {
	t.Helper()
	mock := maps.NewMockProvider(
		map[string]domain.GeocodeResult{
			"Alexanderplatz 1, Berlin":  pickup,
			"Am Neuen Markt 1, Potsdam": delivery,
		},
		[]maps.MockRoute{{
			From:   pickup.Location,
			To:     delivery.Location,
			Result: domain.DistanceResult{DistanceKm: 35.4, DurationMinutes: 41, DistanceText: "35.4 km", DurationText: "41 mins"},
		}},
	)
	return NewRouter(catalog.Default(), mock), mock
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body=%q)", err, rr.Body.String())
	}
	return v
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("status = %d, want %d (body=%s)", rr.Code, status, rr.Body.String())
	}
	res := decode[dto.ErrorResponse](t, rr)
	if res.Kind != kind {
		t.Fatalf("kind = %q, want %q (error=%q)", res.Kind, kind, res.Error)
	}
	if res.Error == "" {
		t.Fatal("error message is empty")
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := decode[map[string]string](t, rr); got["status"] != "ok" {
		t.Fatalf("body = %v", got)
	}
}

func TestRequestID(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/health", "")
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("no request id assigned")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("request id = %q, want caller's", got)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h, _ := newTestRouter(t)

	expectError(t, do(t, h, http.MethodGet, "/nope", ""), http.StatusNotFound, "not_found")
	expectError(t, do(t, h, http.MethodGet, "/quotes", ""), http.StatusMethodNotAllowed, "method_not_allowed")
}

func TestItems(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/items", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	res := decode[dto.ListItemsResponse](t, rr)
	if len(res.Items) != 10 {
		t.Fatalf("items = %d, want 10", len(res.Items))
	}

	rr = do(t, h, http.MethodGet, "/items/Wardrobe", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	item := decode[dto.ItemResponse](t, rr)
	if item.VolumeM3 != 4.0 || item.MinTruckSizeM3 != 20 || item.StairTimeSeconds != 600 {
		t.Fatalf("wardrobe = %+v", item)
	}

	rr = do(t, h, http.MethodGet, "/items/Small%20Box", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d for escaped key", rr.Code)
	}

	expectError(t, do(t, h, http.MethodGet, "/items/Piano", ""), http.StatusUnprocessableEntity, "unknown_item")
}

func TestConfirmRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/routes",
		`{"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Am Neuen Markt 1, Potsdam"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d (body=%s)", rr.Code, rr.Body.String())
	}

	res := decode[dto.RouteResponse](t, rr)
	if res.Pickup.FormattedAddress != pickup.FormattedAddress || res.Delivery.Lat != delivery.Location.Lat {
		t.Fatalf("route = %+v", res)
	}
	if res.DistanceKm != 35.4 || res.DurationMinutes != 41 || res.DistanceText != "35.4 km" {
		t.Fatalf("route = %+v", res)
	}
}

func TestConfirmRouteErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		setup  func(m *maps.MockProvider)
		status int
		kind   string
	}{
		{"unknown field", `{"pickup_address":"a","delivery_address":"b","hub":"c"}`, nil, http.StatusBadRequest, "invalid_input"},
		{"two objects", `{"pickup_address":"a","delivery_address":"b"}{}`, nil, http.StatusBadRequest, "invalid_input"},
		{"missing delivery", `{"pickup_address":"Alexanderplatz 1, Berlin"}`, nil, http.StatusBadRequest, "invalid_input"},
		{"address not found", `{"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Nowhere"}`, nil, http.StatusUnprocessableEntity, "address_not_found"},
		{"no route", `{"pickup_address":"Am Neuen Markt 1, Potsdam","delivery_address":"Alexanderplatz 1, Berlin"}`, nil, http.StatusUnprocessableEntity, "route_not_found"},
		{
			"quota", `{"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Am Neuen Markt 1, Potsdam"}`,
			func(m *maps.MockProvider) { m.FailAddress("Am Neuen Markt 1, Potsdam", domain.ErrQuotaExceeded) },
			http.StatusServiceUnavailable, "quota_exceeded",
		},
		{
			"timeout", `{"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Am Neuen Markt 1, Potsdam"}`,
			func(m *maps.MockProvider) { m.FailAddress("Alexanderplatz 1, Berlin", domain.ErrTimeout) },
			http.StatusGatewayTimeout, "timeout",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, mock := newTestRouter(t)
			if tc.setup != nil {
				tc.setup(mock)
			}
			expectError(t, do(t, h, http.MethodPost, "/routes", tc.body), tc.status, tc.kind)
		})
	}
}

func TestQuoteWithDistance(t *testing.T) {
	h, mock := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/quotes",
		`{"items":{"Small Box":2,"Sofa 2-seater":1},"distance_km":10,"floors_source_down":0,"floors_dest_up":0,"urgency":"PLANNED"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d (body=%s)", rr.Code, rr.Body.String())
	}

	res := decode[dto.QuoteResponse](t, rr)
	if !slices.Equal(res.Trucks, []int{12}) || res.TruckLabel != "12m³" {
		t.Fatalf("trucks = %v %q", res.Trucks, res.TruckLabel)
	}
	if res.TotalItems != 3 {
		t.Fatalf("total items = %d", res.TotalItems)
	}
	if res.TruckFee != "107.91" || res.DistanceFee != "0.00" || res.HandlingFee != "12.00" || res.UrgencyFee != "0.00" {
		t.Fatalf("fees = %+v", res)
	}
	if res.TotalPrice != "119.91" || res.RatePerMinute != "2.00" {
		t.Fatalf("total = %s rate = %s", res.TotalPrice, res.RatePerMinute)
	}
	if res.Route != nil {
		t.Fatalf("route = %+v, want none", res.Route)
	}
	if res.Inputs.DistanceKm != 10 || res.Inputs.Urgency != "PLANNED" || res.Inputs.Items["Small Box"] != 2 {
		t.Fatalf("inputs = %+v", res.Inputs)
	}
	if len(mock.Calls()) != 0 {
		t.Fatalf("maps called with a known distance: %v", mock.Calls())
	}
}

func TestQuoteResolvesRoute(t *testing.T) {
	h, mock := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/quotes",
		`{"items":{"Small Box":2,"Sofa 2-seater":1},"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Am Neuen Markt 1, Potsdam"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d (body=%s)", rr.Code, rr.Body.String())
	}

	res := decode[dto.QuoteResponse](t, rr)
	if res.Route == nil || res.Route.DistanceKm != 35.4 {
		t.Fatalf("route = %+v", res.Route)
	}
	// 2.6 * (35.4 - 15) = 53.04; subtotal 107.91 + 53.04 + 12 = 172.95.
	if res.DistanceFee != "53.04" {
		t.Fatalf("distance fee = %s", res.DistanceFee)
	}
	if res.TotalPrice != "172.95" || res.Inputs.DistanceKm != 35.4 {
		t.Fatalf("total = %s distance = %v", res.TotalPrice, res.Inputs.DistanceKm)
	}
	if len(mock.Calls()) != 3 {
		t.Fatalf("calls = %v", mock.Calls())
	}
}

func TestQuoteUrgent(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/quotes", `{"items":{"Wardrobe":1},"distance_km":10,"urgency":"urgent"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d (body=%s)", rr.Code, rr.Body.String())
	}

	// 107.91 + 2.00 * 10 min = 127.91, times 1.5.
	res := decode[dto.QuoteResponse](t, rr)
	if res.UrgencyMultiplier != 1.5 || res.Inputs.Urgency != "URGENT" {
		t.Fatalf("urgency = %v %q", res.UrgencyMultiplier, res.Inputs.Urgency)
	}
	if res.TotalPrice != "191.87" || res.UrgencyFee != "63.96" {
		t.Fatalf("total = %s urgency fee = %s", res.TotalPrice, res.UrgencyFee)
	}
	if res.RequiredTruckSizeM3 != 20 {
		t.Fatalf("required truck = %v", res.RequiredTruckSizeM3)
	}
}

func TestQuoteErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"empty items", `{"items":{},"distance_km":5}`, http.StatusUnprocessableEntity, "empty_selection"},
		{"empty before missing distance", `{"items":{"Wardrobe":0}}`, http.StatusUnprocessableEntity, "empty_selection"},
		{"missing distance", `{"items":{"Wardrobe":1}}`, http.StatusUnprocessableEntity, "missing_distance"},
		{"only pickup", `{"items":{"Wardrobe":1},"pickup_address":"Alexanderplatz 1, Berlin"}`, http.StatusBadRequest, "invalid_input"},
		{"unknown item", `{"items":{"Piano":1},"distance_km":5}`, http.StatusUnprocessableEntity, "unknown_item"},
		{"negative quantity", `{"items":{"Wardrobe":-1},"distance_km":5}`, http.StatusBadRequest, "invalid_input"},
		{"negative distance", `{"items":{"Wardrobe":1},"distance_km":-5}`, http.StatusBadRequest, "invalid_input"},
		{"negative floors", `{"items":{"Wardrobe":1},"distance_km":5,"floors_dest_up":-1}`, http.StatusBadRequest, "invalid_input"},
		{"bad urgency", `{"items":{"Wardrobe":1},"distance_km":5,"urgency":"ASAP"}`, http.StatusBadRequest, "invalid_input"},
		{"malformed json", `{"items":`, http.StatusBadRequest, "invalid_input"},
		{"quantity above limit", `{"items":{"Small Box":1001},"distance_km":1}`, http.StatusBadRequest, "invalid_input"},
		{"max int quantity", `{"items":{"Small Box":9223372036854775807},"distance_km":1}`, http.StatusBadRequest, "invalid_input"},
		{
			"total above limit",
			`{"items":{"Small Box":1000,"Large Box":1000,"Sofa 2-seater":1000,"Sofa 3-seater":1000,"Dining Table":1000,` +
				`"Wardrobe":1000,"Washing Machine":1000,"Refrigerator":1000,"Mattress Single":1000,"Mattress Double":1000,"Lamp":1},"distance_km":1}`,
			http.StatusBadRequest, "invalid_input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestRouter(t)
			expectError(t, do(t, h, http.MethodPost, "/quotes", tc.body), tc.status, tc.kind)
		})
	}
}

func TestQuoteEmptySelectionSkipsMaps(t *testing.T) {
	h, mock := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/quotes",
		`{"items":{},"pickup_address":"Alexanderplatz 1, Berlin","delivery_address":"Am Neuen Markt 1, Potsdam"}`)
	expectError(t, rr, http.StatusUnprocessableEntity, "empty_selection")

	if len(mock.Calls()) != 0 {
		t.Fatalf("maps called for an empty selection: %v", mock.Calls())
	}
}

func TestQuoteRejectsOversizedBody(t *testing.T) {
	h, _ := newTestRouter(t)

	body := `{"items":{"Small Box":1},"distance_km":1,"urgency":"` + strings.Repeat("x", 70<<10) + `"}`
	expectError(t, do(t, h, http.MethodPost, "/quotes", body), http.StatusBadRequest, "invalid_input")
}
