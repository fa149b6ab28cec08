package maps

import (
	"context"
	"fmt"
	"moving-quote-service/internal/domain"
	"sync"
)

type MockRoute struct {
	From, To domain.Coordinates
	Result   domain.DistanceResult
}

// MockProvider serves fixed geocode and distance results and records calls.
// Unknown addresses fail with ErrAddressNotFound and unknown pairs with ErrRouteNotFound.
type MockProvider struct {
	addresses map[string]domain.GeocodeResult
	routes    map[string]domain.DistanceResult
	errs      map[string]error

	mu    sync.Mutex
	calls []string
}

func NewMockProvider(addresses map[string]domain.GeocodeResult, routes []MockRoute) *MockProvider {
	m := &MockProvider{
		addresses: make(map[string]domain.GeocodeResult, len(addresses)),
		routes:    make(map[string]domain.DistanceResult, len(routes)),
		errs:      map[string]error{},
	}
	for addr, r := range addresses {
		m.addresses[normalize(addr)] = r
	}
	for _, r := range routes {
		m.routes[r.From.String()+"|"+r.To.String()] = r.Result
	}
	return m
}

// FailAddress makes Geocode return err for address.
func (m *MockProvider) FailAddress(address string, err error) {
	m.errs[normalize(address)] = err
}

func (m *MockProvider) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	norm := normalize(address)
	m.record("geocode:" + norm)

	if err, ok := m.errs[norm]; ok {
		return domain.GeocodeResult{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	r, ok := m.addresses[norm]
	if !ok {
		return domain.GeocodeResult{}, fmt.Errorf("geocode %q: %w", norm, domain.ErrAddressNotFound)
	}
	return r, nil
}

func (m *MockProvider) RouteDistance(ctx context.Context, origin, destination domain.Coordinates) (domain.DistanceResult, error) {
	key := origin.String() + "|" + destination.String()
	m.record("distance:" + key)

	r, ok := m.routes[key]
	if !ok {
		return domain.DistanceResult{}, fmt.Errorf("missing pair %s -> %s: %w", origin, destination, domain.ErrRouteNotFound)
	}
	return r, nil
}

// Calls returns the recorded call log.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MockProvider) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}
