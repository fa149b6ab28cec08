package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"moving-quote-service/internal/domain"
	"net/http"
	"net/url"
)

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// fetchGeocode resolves one address with the Geocoding API (/maps/api/geocode/json).
func (o *GoogleMapsProvider) fetchGeocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, "/maps/api/geocode/json", url.Values{"address": {address}})
	})
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("decode geocode response: %w: %v", domain.ErrUpstream, err)
	}

	if decoded.Status != "OK" {
		return domain.GeocodeResult{}, statusError(decoded.Status, decoded.ErrorMessage)
	}

	if len(decoded.Results) == 0 {
		return domain.GeocodeResult{}, fmt.Errorf("%w: %q", domain.ErrAddressNotFound, address)
	}

	first := decoded.Results[0]
	formatted := first.FormattedAddress
	if formatted == "" {
		formatted = address
	}

	return domain.GeocodeResult{
		FormattedAddress: formatted,
		Location: domain.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
	}, nil
}
