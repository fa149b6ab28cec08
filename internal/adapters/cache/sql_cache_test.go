package cache

import (
	"context"
	"database/sql"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/db"
	"moving-quote-service/internal/platform/migrations"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := migrations.Up(conn, migrations.DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestSQLGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewSQLGeocodeCache(openTestDB(t), SQLite)

	if _, ok, err := c.GetGeocode(ctx, "Rue de Rivoli 1, Paris"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.GeocodeResult{
		FormattedAddress: "1 Rue de Rivoli, 75001 Paris, France",
		Location:         domain.Coordinates{Lat: 48.8559, Lng: 2.3588},
	}
	if err := c.PutGeocode(ctx, "Rue de Rivoli 1, Paris", want); err != nil {
		t.Fatalf("PutGeocode: %v", err)
	}

	got, ok, err := c.GetGeocode(ctx, "Rue de Rivoli 1, Paris")
	if err != nil || !ok {
		t.Fatalf("GetGeocode: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// Upsert replaces the previous entry.
	want.FormattedAddress = "updated"
	if err := c.PutGeocode(ctx, "Rue de Rivoli 1, Paris", want); err != nil {
		t.Fatalf("PutGeocode update: %v", err)
	}
	got, _, _ = c.GetGeocode(ctx, "Rue de Rivoli 1, Paris")
	if got.FormattedAddress != "updated" {
		t.Fatalf("FormattedAddress = %q, want updated", got.FormattedAddress)
	}
}

func TestSQLGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := NewSQLGeocodeCache(openTestDB(t), SQLite)
	if err := c.PutGeocode(context.Background(), "  ", domain.GeocodeResult{}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestSQLDistanceCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewSQLDistanceCache(openTestDB(t), SQLite)

	from := domain.Coordinates{Lat: 48.8559, Lng: 2.3588}
	to := domain.Coordinates{Lat: 48.9362, Lng: 2.3574}

	if _, ok, err := c.GetDistance(ctx, from, to); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.DistanceResult{DistanceKm: 11.2, DurationMinutes: 24.5, DistanceText: "11.2 km", DurationText: "25 mins"}
	if err := c.PutDistance(ctx, from, to, want); err != nil {
		t.Fatalf("PutDistance: %v", err)
	}

	got, ok, err := c.GetDistance(ctx, from, to)
	if err != nil || !ok {
		t.Fatalf("GetDistance: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// Direction matters.
	if _, ok, _ := c.GetDistance(ctx, to, from); ok {
		t.Fatal("reverse pair should not be cached")
	}
}

func TestDialectRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE x = ? AND y = ?"

	if got := SQLite.rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}
	if got := Postgres.rebind(q); got != "SELECT a FROM t WHERE x = $1 AND y = $2" {
		t.Fatalf("postgres rebind = %q", got)
	}
}
