package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeCache is a SQL-backed cache mapping normalized addresses to geocode results.
// Address keys are expected to be normalized by the caller.
type SQLGeocodeCache struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLGeocodeCache(db *sql.DB, dialect Dialect) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, Dialect: dialect}
}

// Fetch the cached result for one address.
func (s *SQLGeocodeCache) GetGeocode(
	ctx context.Context,
	address string,
) (_ domain.GeocodeResult, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.GeocodeResult{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.GeocodeResult{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := s.Dialect.rebind(`
	SELECT formatted_address, lat, lng
    FROM geocode_cache
    WHERE address = ?;
	`)

	var r domain.GeocodeResult
	err = s.DB.QueryRowContext(ctx, q, address).Scan(&r.FormattedAddress, &r.Location.Lat, &r.Location.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeocodeResult{}, false, nil
	}
	if err != nil {
		return domain.GeocodeResult{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return r, true, nil
}

// Store an address -> result mapping, replacing any previous entry.
func (s *SQLGeocodeCache) PutGeocode(ctx context.Context, address string, r domain.GeocodeResult) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("insert geocode cache: empty address key")
	}

	q := s.Dialect.rebind(`
	INSERT INTO geocode_cache (address, formatted_address, lat, lng)
    VALUES (?, ?, ?, ?)
	ON CONFLICT (address) DO UPDATE
	SET formatted_address = EXCLUDED.formatted_address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`)

	if _, err := s.DB.ExecContext(ctx, q, address, r.FormattedAddress, r.Location.Lat, r.Location.Lng); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
