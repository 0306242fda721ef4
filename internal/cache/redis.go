package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "standup-api-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "standup-api:"

// Redis is a cache shared by every replica of the API
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*Redis)(nil)

// NewRedis connects to the server at url and checks it answers a ping
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	if url == "" {
		return nil, apperrors.ErrRedisURLMissing
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisWithClient(client, ttl), nil
}

// NewRedisWithClient wraps an existing client
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: defaultTTL(ttl)}
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	return r.client.Set(ctx, redisKeyPrefix+key, val, r.ttl).Err()
}

// Delete implements Cache.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Close releases the client connections
func (r *Redis) Close() error {
	return r.client.Close()
}
