package i

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by RouteCache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

// RouteCache stores encoded route results by request key.
type RouteCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
