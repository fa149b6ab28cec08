package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"moving-quote-service/internal/adapters/cache"
	"moving-quote-service/internal/adapters/maps"
	"moving-quote-service/internal/api"
	"moving-quote-service/internal/catalog"
	"moving-quote-service/internal/config"
	"moving-quote-service/internal/platform/db"
	"moving-quote-service/internal/platform/migrations"
	"moving-quote-service/internal/ports"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (cache store, Google Maps) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	items := catalog.LoadOrDefault(cfg.CatalogPath)
	log.Printf("catalog loaded items=%d path=%s", items.Len(), cfg.CatalogPath)

	geocodes, distances, closeCache, err := openCache(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	provider, err := maps.NewGoogleMapsProvider(maps.GoogleMapsConfig{
		APIKey:      cfg.MapsAPIKey,
		BaseURL:     cfg.MapsBaseURL,
		Timeout:     cfg.MapsTimeout,
		MaxAttempts: cfg.MapsMaxAttempts,
	}, geocodes, distances)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(items, provider)

	// Write timeout leaves room for a cold-cache quote: two geocodes and one distance lookup.
	log.Printf("Server listening addr=:%s cache=%s", cfg.Port, cfg.CacheDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3*cfg.MapsTimeout*time.Duration(cfg.MapsMaxAttempts) + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCache builds the geocode and distance caches for the configured driver.
// With CACHE_DRIVER=none both are nil and every lookup goes to the provider.
func openCache(ctx context.Context, cfg config.Config) (ports.GeocodeCache, ports.DistanceCache, func(), error) {
	switch cfg.CacheDriver {
	case config.CacheSQLite:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, nil, fmt.Errorf("open cache: create %q: %w", dir, err)
			}
		}
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return sqlCaches(conn, migrations.DialectSQLite, cache.SQLite)

	case config.CachePostgres:
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return sqlCaches(conn, migrations.DialectPostgres, cache.Postgres)

	case config.CacheRedis:
		client, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open cache: %w", err)
		}
		rc := cache.NewRedisCache(client, cfg.CacheTTL)
		return rc, rc, func() { client.Close() }, nil

	default:
		log.Println("warning: cache disabled, every lookup calls the maps provider")
		return nil, nil, func() {}, nil
	}
}

func sqlCaches(conn *sql.DB, migrationDialect string, dialect cache.Dialect) (ports.GeocodeCache, ports.DistanceCache, func(), error) {
	if err := migrations.Up(conn, migrationDialect); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("open cache: %w", err)
	}

	return cache.NewSQLGeocodeCache(conn, dialect), cache.NewSQLDistanceCache(conn, dialect), func() { conn.Close() }, nil
}
