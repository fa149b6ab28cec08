package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
)

// SQLDistanceCache is a SQL-backed cache for origin->destination driving distances.
// Coordinates are keyed by their fixed 6-decimal "lat,lng" form.
type SQLDistanceCache struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLDistanceCache(db *sql.DB, dialect Dialect) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db, Dialect: dialect}
}

// Fetch the cached distance for one origin/destination pair.
func (s *SQLDistanceCache) GetDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return domain.DistanceResult{}, false, errors.New("distance cache: db is nil")
	}

	q := s.Dialect.rebind(`
	SELECT distance_km, duration_minutes, distance_text, duration_text
    FROM distance_cache
    WHERE origin = ?
        AND destination = ?;
	`)

	var r domain.DistanceResult
	err = s.DB.QueryRowContext(ctx, q, origin.String(), destination.String()).
		Scan(&r.DistanceKm, &r.DurationMinutes, &r.DistanceText, &r.DurationText)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DistanceResult{}, false, nil
	}
	if err != nil {
		return domain.DistanceResult{}, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return r, true, nil
}

// Store the distance for one pair, replacing any previous entry.
func (s *SQLDistanceCache) PutDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	r domain.DistanceResult,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := s.Dialect.rebind(`
	INSERT INTO distance_cache (origin, destination, distance_km, duration_minutes, distance_text, duration_text)
    VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_minutes = EXCLUDED.duration_minutes,
		distance_text = EXCLUDED.distance_text,
		duration_text = EXCLUDED.duration_text;
	`)

	if _, err := s.DB.ExecContext(ctx, q,
		origin.String(), destination.String(),
		r.DistanceKm, r.DurationMinutes, r.DistanceText, r.DurationText,
	); err != nil {
		return fmt.Errorf("insert distance cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}
