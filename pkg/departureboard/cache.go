package departureboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stopboard/stopboard/pkg/ctdf"
)

// DepartureCache shares fetched departures between processes through Redis
type DepartureCache struct {
	Cache *cache.Cache[string]
}

func NewDepartureCache(client *redis.Client, expiration time.Duration) *DepartureCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &DepartureCache{
		Cache: cache.New[string](redisStore),
	}
}

func cacheKey(stationID string) string {
	return fmt.Sprintf("departures:%s", stationID)
}

func (d *DepartureCache) Get(ctx context.Context, stationID string) ([]*ctdf.Departure, bool) {
	value, err := d.Cache.Get(ctx, cacheKey(stationID))
	if err != nil {
		return nil, false
	}

	var departures []*ctdf.Departure
	if err := json.Unmarshal([]byte(value), &departures); err != nil {
		return nil, false
	}
	if departures == nil {
		departures = []*ctdf.Departure{}
	}

	return departures, true
}

func (d *DepartureCache) Set(ctx context.Context, stationID string, departures []*ctdf.Departure) error {
	departuresJSON, err := json.Marshal(departures)
	if err != nil {
		return err
	}

	return d.Cache.Set(ctx, cacheKey(stationID), string(departuresJSON))
}
