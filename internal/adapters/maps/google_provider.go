package maps

import (
	"context"
	"errors"
	"fmt"
	"log"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"moving-quote-service/internal/ports"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	DefaultTimeout = 10 * time.Second
)

type GoogleMapsConfig struct {
	APIKey  string
	BaseURL string
	// Timeout bounds every geocode and distance call.
	Timeout time.Duration
	// MaxAttempts above 1 enables retries of transient transport failures.
	MaxAttempts int
}

// GoogleMapsProvider implements Geocoder and DistanceProvider using the
// Google Maps Geocoding and Distance Matrix APIs.
//
// It coordinates:
//   - Address normalization
//   - Optional persistent geocode and distance caching
//   - Mapping of provider statuses to domain adapter errors
//
// The provider is safe for concurrent use.
type GoogleMapsProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	timeout       time.Duration
	maxAttempts   int
	geocodeCache  ports.GeocodeCache
	distanceCache ports.DistanceCache
}

func NewGoogleMapsProvider(
	cfg GoogleMapsConfig,
	geocodeCache ports.GeocodeCache,
	distanceCache ports.DistanceCache,
) (*GoogleMapsProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	return &GoogleMapsProvider{
		session:       &http.Client{Timeout: cfg.Timeout},
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		timeout:       cfg.Timeout,
		maxAttempts:   cfg.MaxAttempts,
		geocodeCache:  geocodeCache,
		distanceCache: distanceCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *GoogleMapsProvider) Geocode(ctx context.Context, address string) (_ domain.GeocodeResult, err error) {
	defer obs.Time(ctx, "maps.Geocode")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.GeocodeResult{}, fmt.Errorf("geocode: address must be non-empty: %w", domain.ErrInvalidRequest)
	}

	// Check persistent cache before issuing an external API call.
	if o.geocodeCache != nil {
		hit, ok, err := o.geocodeCache.GetGeocode(ctx, norm)
		if err != nil {
			return domain.GeocodeResult{}, fmt.Errorf("geocode: get cache: %w", err)
		}
		if ok {
			return hit, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	result, err := o.fetchGeocode(callCtx, norm)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutGeocode(ctx, norm, result); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return result, nil
}

func (o *GoogleMapsProvider) RouteDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.DistanceResult, err error) {
	defer obs.Time(ctx, "maps.RouteDistance")(&err)

	if o.distanceCache != nil {
		hit, ok, err := o.distanceCache.GetDistance(ctx, origin, destination)
		if err != nil {
			return domain.DistanceResult{}, fmt.Errorf("route distance: get cache: %w", err)
		}
		if ok {
			return hit, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	result, err := o.fetchDistance(callCtx, origin, destination)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("route distance %s -> %s: %w", origin, destination, err)
	}

	if o.distanceCache != nil {
		if err := o.distanceCache.PutDistance(ctx, origin, destination, result); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	return result, nil
}
