// Package routecache keeps computed routes in Redis.
package routecache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/aisle/service/i"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "route:"

// RedisCache stores encoded routes under "route:<key>" with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ i.RouteCache = &RedisCache{}

// NewRedisCache creates a RedisCache.
func NewRedisCache(client *redis.Client, ttl time.Duration) (*RedisCache, error) {
	if client == nil {
		return nil, errors.New("routecache: nil redis client")
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get returns the cached value or i.ErrCacheMiss.
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := rc.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	return data, err
}

// Set stores value for the cache TTL.
func (rc *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return rc.client.Set(ctx, keyPrefix+key, value, rc.ttl).Err()
}
