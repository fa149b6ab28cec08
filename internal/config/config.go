// Package config reads service settings from the environment (optionally seeded from .env).
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache drivers accepted by CACHE_DRIVER.
const (
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
	CacheNone     = "none"
)

type Config struct {
	Port        string
	CatalogPath string

	CacheDriver string
	DBPath      string
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration

	MapsAPIKey      string
	MapsBaseURL     string
	MapsTimeout     time.Duration
	MapsMaxAttempts int
}

// Load reads envFiles (".env" when none are given) into the process environment if they
// exist, then resolves every setting from the environment with defaults applied.
func Load(envFiles ...string) (Config, error) {
	cfg := read(envFiles)
	if err := errors.Join(cfg.validateServer(), cfg.validateStorage()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// LoadStorage is Load for tools that only touch the cache store and the catalog file;
// the maps settings are not checked.
func LoadStorage(envFiles ...string) (Config, error) {
	cfg := read(envFiles)
	if err := cfg.validateStorage(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func read(envFiles []string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("CATALOG_PATH", "data/items.json")
	v.SetDefault("CACHE_DRIVER", CacheSQLite)
	v.SetDefault("DB_PATH", "data/cache.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "720h")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("MAPS_BASE_URL", "https://maps.googleapis.com")
	v.SetDefault("MAPS_TIMEOUT", "10s")
	v.SetDefault("MAPS_MAX_ATTEMPTS", 1)
	v.AutomaticEnv()

	return Config{
		Port:            strings.TrimSpace(v.GetString("PORT")),
		CatalogPath:     strings.TrimSpace(v.GetString("CATALOG_PATH")),
		CacheDriver:     strings.ToLower(strings.TrimSpace(v.GetString("CACHE_DRIVER"))),
		DBPath:          strings.TrimSpace(v.GetString("DB_PATH")),
		DatabaseURL:     strings.TrimSpace(v.GetString("DATABASE_URL")),
		RedisURL:        strings.TrimSpace(v.GetString("REDIS_URL")),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		MapsAPIKey:      strings.TrimSpace(v.GetString("GOOGLE_MAPS_API_KEY")),
		MapsBaseURL:     strings.TrimRight(strings.TrimSpace(v.GetString("MAPS_BASE_URL")), "/"),
		MapsTimeout:     v.GetDuration("MAPS_TIMEOUT"),
		MapsMaxAttempts: v.GetInt("MAPS_MAX_ATTEMPTS"),
	}
}

func (c Config) validateServer() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.MapsAPIKey == "" {
		errs = append(errs, errors.New("GOOGLE_MAPS_API_KEY is required"))
	}
	if c.MapsTimeout <= 0 {
		errs = append(errs, errors.New("MAPS_TIMEOUT must be a positive duration"))
	}
	if c.MapsMaxAttempts < 1 {
		errs = append(errs, errors.New("MAPS_MAX_ATTEMPTS must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c Config) validateStorage() error {
	var errs []error

	switch c.CacheDriver {
	case CacheSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite cache"))
		}
	case CachePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres cache"))
		}
	case CacheRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis cache"))
		}
		if c.CacheTTL < 0 {
			errs = append(errs, errors.New("CACHE_TTL must not be negative"))
		}
	case CacheNone:
	default:
		errs = append(errs, fmt.Errorf("CACHE_DRIVER %q is not one of sqlite, postgres, redis, none", c.CacheDriver))
	}

	return errors.Join(errs...)
}
