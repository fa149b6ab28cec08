package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"moving-quote-service/internal/domain"
	"net/http"
	"net/url"
)

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string    `json:"status"`
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// fetchDistance retrieves the driving distance and duration for a single
// origin/destination pair using the Distance Matrix API.
func (o *GoogleMapsProvider) fetchDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (domain.DistanceResult, error) {
	query := func() url.Values {
		return url.Values{
			"origins":      {origin.String()},
			"destinations": {destination.String()},
			"mode":         {"driving"},
			"units":        {"metric"},
		}
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, "/maps/api/distancematrix/json", query())
	})
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return domain.DistanceResult{}, fmt.Errorf("decode matrix response: %w: %v", domain.ErrUpstream, err)
	}

	if mr.Status != "OK" {
		return domain.DistanceResult{}, statusError(mr.Status, mr.ErrorMessage)
	}

	if len(mr.Rows) != 1 || len(mr.Rows[0].Elements) != 1 {
		return domain.DistanceResult{}, fmt.Errorf("%w: expected 1 matrix element, got %d rows", domain.ErrUpstream, len(mr.Rows))
	}

	// Element failures describe the pair itself, not the request.
	el := mr.Rows[0].Elements[0]
	switch el.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS":
		return domain.DistanceResult{}, fmt.Errorf("%w: element status %s", domain.ErrRouteNotFound, el.Status)
	default:
		return domain.DistanceResult{}, fmt.Errorf("%w: route calculation status %s", domain.ErrUpstream, el.Status)
	}

	return domain.DistanceResult{
		DistanceKm:      el.Distance.Value / 1000,
		DurationMinutes: el.Duration.Value / 60,
		DistanceText:    el.Distance.Text,
		DurationText:    el.Duration.Text,
	}, nil
}
