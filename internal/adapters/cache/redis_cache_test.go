package cache

import (
	"context"
	"moving-quote-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, ttl), mr
}

func TestRedisCacheGeocode(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedis(t, time.Hour)

	if _, ok, err := c.GetGeocode(ctx, "Alexanderplatz 1, Berlin"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.GeocodeResult{
		FormattedAddress: "Alexanderplatz 1, 10178 Berlin, Germany",
		Location:         domain.Coordinates{Lat: 52.5219, Lng: 13.4132},
	}
	if err := c.PutGeocode(ctx, "Alexanderplatz 1, Berlin", want); err != nil {
		t.Fatalf("PutGeocode: %v", err)
	}

	got, ok, err := c.GetGeocode(ctx, "Alexanderplatz 1, Berlin")
	if err != nil || !ok {
		t.Fatalf("GetGeocode: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisCacheDistanceExpires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t, time.Minute)

	from := domain.Coordinates{Lat: 52.5219, Lng: 13.4132}
	to := domain.Coordinates{Lat: 52.3906, Lng: 13.0645}
	want := domain.DistanceResult{DistanceKm: 35.4, DurationMinutes: 41, DistanceText: "35.4 km", DurationText: "41 mins"}

	if err := c.PutDistance(ctx, from, to, want); err != nil {
		t.Fatalf("PutDistance: %v", err)
	}

	got, ok, err := c.GetDistance(ctx, from, to)
	if err != nil || !ok || got != want {
		t.Fatalf("GetDistance = %+v ok=%v err=%v", got, ok, err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.GetDistance(ctx, from, to); err != nil || ok {
		t.Fatalf("after ttl: ok=%v err=%v", ok, err)
	}
}

func TestRedisCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t, time.Hour)

	if err := mr.Set(geocodeKey("somewhere"), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.GetGeocode(ctx, "somewhere"); err == nil {
		t.Fatal("expected decode error")
	}
}
