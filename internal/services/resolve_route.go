package services

import (
	"context"
	"fmt"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
	"strings"

	"golang.org/x/sync/errgroup"
)

type RouteRequest struct {
	Pickup   string
	Delivery string
}

// ResolveRoute confirms a pickup/delivery pair: both addresses are geocoded, then the
// driving distance between them is looked up.
//
// The two geocode calls are independent and run concurrently; the first failure cancels
// the other. Any failure aborts the whole confirmation and no partial route is returned.
func ResolveRoute(
	ctx context.Context,
	req RouteRequest,
	geocoder ports.Geocoder,
	distances ports.DistanceProvider,
) (*domain.ConfirmedRoute, error) {
	pickup := strings.TrimSpace(req.Pickup)
	delivery := strings.TrimSpace(req.Delivery)
	if pickup == "" || delivery == "" {
		return nil, fmt.Errorf("resolve route: pickup and delivery addresses are required: %w", domain.ErrInvalidInput)
	}

	var from, to domain.GeocodeResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := geocoder.Geocode(gctx, pickup)
		if err != nil {
			return fmt.Errorf("pickup address: %w", err)
		}
		from = r
		return nil
	})
	g.Go(func() error {
		r, err := geocoder.Geocode(gctx, delivery)
		if err != nil {
			return fmt.Errorf("delivery address: %w", err)
		}
		to = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve route: %w", err)
	}

	dist, err := distances.RouteDistance(ctx, from.Location, to.Location)
	if err != nil {
		return nil, fmt.Errorf("resolve route: distance %q -> %q: %w", from.FormattedAddress, to.FormattedAddress, err)
	}

	return &domain.ConfirmedRoute{
		Pickup:   from,
		Delivery: to,
		Distance: dist,
	}, nil
}
