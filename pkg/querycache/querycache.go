package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	redislib "github.com/redis/go-redis/v9"
)

// store is the slice of the redis client the cache needs.
type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	QueryKey(resource string, version int64, params ...string) string
	QueryVersionKey(resource string) string
}

// Cache keys fetched payloads by resource name plus parameters, the way the
// UI's query layer keyed its fetches. Invalidation bumps a per-resource
// version counter so every parameter combination of that resource goes stale
// at once; superseded entries age out via TTL.
type Cache struct {
	store store
	ttl   time.Duration
	logg  *logger.Logger
}

// FetchFunc produces the raw payload for a cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

func New(store store, ttl time.Duration, logg *logger.Logger) *Cache {
	return &Cache{store: store, ttl: ttl, logg: logg}
}

// Do returns the cached payload for resource+params, calling fetch on a miss
// and storing the result. Cache backend failures degrade to a plain fetch so
// a redis outage never breaks reads.
func (c *Cache) Do(ctx context.Context, resource string, params []string, fetch FetchFunc) (json.RawMessage, error) {
	if c == nil || c.store == nil {
		return fetch(ctx)
	}

	version := c.version(ctx, resource)
	key := c.store.QueryKey(resource, version, params...)

	cached, err := c.store.Get(ctx, key)
	if err == nil {
		return json.RawMessage(cached), nil
	}
	if !errors.Is(err, redislib.Nil) && c.logg != nil {
		c.logg.Warn(c.logg.WithResource(ctx, resource), "query cache read failed, falling through")
	}

	payload, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := c.store.Set(ctx, key, string(payload), c.ttl); setErr != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithResource(ctx, resource), "query cache write failed")
	}
	return payload, nil
}

// Invalidate marks every cached entry of the resource stale.
func (c *Cache) Invalidate(ctx context.Context, resource string) error {
	if c == nil || c.store == nil {
		return nil
	}
	if _, err := c.store.Incr(ctx, c.QueryVersionKey(resource)); err != nil {
		return err
	}
	return nil
}

// QueryVersionKey exposes the version key for a resource.
func (c *Cache) QueryVersionKey(resource string) string {
	return c.store.QueryVersionKey(resource)
}

func (c *Cache) version(ctx context.Context, resource string) int64 {
	raw, err := c.store.Get(ctx, c.store.QueryVersionKey(resource))
	if err != nil {
		return 0
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return version
}
