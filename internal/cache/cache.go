package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"standup-api-backend/internal/config"
	"standup-api-backend/internal/logger"
	"standup-api-backend/internal/metrics"
)

// Backend names accepted by New
const (
	BackendNoop  = "noop"
	BackendLRU   = "lru"
	BackendRedis = "redis"
)

// Cache stores JSON encoded values by key. Every backend copies on read and
// write, so callers never share a cached value.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by CACHE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Cache, error) {
	switch cfg.CacheBackend {
	case "", BackendNoop:
		return NewNoop(), nil
	case BackendLRU:
		return NewLRU(cfg.CacheSize, cfg.CacheTTL), nil
	case BackendRedis:
		return NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

// Fetch returns the cached value for key, or calls load and caches its result.
// Cache failures are logged and fall through to load.
func Fetch[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	return fetch(ctx, c, key, load, func(T) bool { return true })
}

// FetchList is Fetch for listings. An empty listing is returned but not cached,
// so rows added later show up on the next call.
func FetchList[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	return fetch(ctx, c, key, load, func(items []T) bool { return len(items) > 0 })
}

func fetch[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error), keep func(T) bool) (T, error) {
	log := logger.WithContext(ctx).WithField("cache_key", key)

	if raw, ok, err := c.Get(ctx, key); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.WithError(err).Warn("cache read failed")
	} else if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		}
		log.Warn("discarding undecodable cache entry")
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	val, err := load(ctx)
	if err != nil || !keep(val) {
		return val, err
	}

	raw, err := json.Marshal(val)
	if err != nil {
		log.WithError(err).Warn("cache encode failed")
		return val, nil
	}
	if err := c.Set(ctx, key, raw); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
	return val, nil
}

func defaultTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
