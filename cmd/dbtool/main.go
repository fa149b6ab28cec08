package main

import (
	"database/sql"
	"log"
	"moving-quote-service/internal/catalog"
	"moving-quote-service/internal/config"
	"moving-quote-service/internal/platform/db"
	"moving-quote-service/internal/platform/migrations"
	"os"
)

// dbtool prepares the configured cache store and checks the catalog file without
// starting the server.
func main() {
	cfg, err := config.LoadStorage()
	if err != nil {
		log.Fatal(err)
	}

	if err := migrate(cfg); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Printf("Checking catalog path=%s", cfg.CatalogPath)
	items, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Printf("catalog invalid, the server would fall back to the built-in items: %v", err)
		os.Exit(1)
	}
	log.Printf("Catalog ok items=%d", items.Len())
}

func migrate(cfg config.Config) error {
	var (
		conn    *sql.DB
		dialect string
		err     error
	)

	switch cfg.CacheDriver {
	case config.CacheSQLite:
		conn, err = db.OpenSQLite(cfg.DBPath)
		dialect = migrations.DialectSQLite
	case config.CachePostgres:
		conn, err = db.OpenPostgres(cfg.DatabaseURL)
		dialect = migrations.DialectPostgres
	default:
		log.Printf("Cache driver %q has no schema, skipping migrations.", cfg.CacheDriver)
		return nil
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Println("Applying cache migrations...")
	if err := migrations.Up(conn, dialect); err != nil {
		return err
	}
	log.Println("Migrations complete.")

	return nil
}
