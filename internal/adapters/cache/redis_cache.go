package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "movingquote:"

// RedisCache stores geocode and distance results as JSON values with a TTL.
// It implements both GeocodeCache and DistanceCache.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// OpenRedis parses a redis:// URL and verifies the connection.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return client, nil
}

type geocodeEntry struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

type distanceEntry struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
	DistanceText    string  `json:"distance_text"`
	DurationText    string  `json:"duration_text"`
}

func geocodeKey(address string) string {
	return redisKeyPrefix + "geocode:" + address
}

func distanceKey(origin, destination domain.Coordinates) string {
	return redisKeyPrefix + "distance:" + origin.String() + "|" + destination.String()
}

func (c *RedisCache) GetGeocode(ctx context.Context, address string) (_ domain.GeocodeResult, _ bool, err error) {
	defer obs.Time(ctx, "geocode.redis.Get")(&err)

	var e geocodeEntry
	ok, err := c.get(ctx, geocodeKey(address), &e)
	if err != nil || !ok {
		return domain.GeocodeResult{}, false, err
	}

	return domain.GeocodeResult{
		FormattedAddress: e.FormattedAddress,
		Location:         domain.Coordinates{Lat: e.Lat, Lng: e.Lng},
	}, true, nil
}

func (c *RedisCache) PutGeocode(ctx context.Context, address string, r domain.GeocodeResult) error {
	if strings.TrimSpace(address) == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	return c.set(ctx, geocodeKey(address), geocodeEntry{
		FormattedAddress: r.FormattedAddress,
		Lat:              r.Location.Lat,
		Lng:              r.Location.Lng,
	})
}

func (c *RedisCache) GetDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "distance.redis.Get")(&err)

	var e distanceEntry
	ok, err := c.get(ctx, distanceKey(origin, destination), &e)
	if err != nil || !ok {
		return domain.DistanceResult{}, false, err
	}

	return domain.DistanceResult(e), true, nil
}

func (c *RedisCache) PutDistance(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	r domain.DistanceResult,
) error {
	return c.set(ctx, distanceKey(origin, destination), distanceEntry(r))
}

func (c *RedisCache) get(ctx context.Context, key string, v any) (bool, error) {
	if c.Client == nil {
		return false, errors.New("redis cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("redis decode %q: %w", key, err)
	}

	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, v any) error {
	if c.Client == nil {
		return errors.New("redis cache: client is nil")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redis encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}
