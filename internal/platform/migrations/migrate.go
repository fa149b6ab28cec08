// Package migrations applies the cache schema with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

// Goose dialect names for the supported stores.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Up runs all pending embedded migrations.
func Up(db *sql.DB, dialect string) error {
	goose.SetBaseFS(files)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}

	return nil
}
