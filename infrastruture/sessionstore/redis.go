// Package sessionstore keeps shopping sessions in Redis, or in memory when no
// Redis is configured.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore stores sessions as JSON strings that expire after ttl of inactivity.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SessionStore = &RedisStore{}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("sessionstore: nil redis client")
	}
	store := &RedisStore{
		client: client,
		ttl:    ttl,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Save writes s and resets its expiry.
func (rs *RedisStore) Save(ctx context.Context, s *dmn.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return rs.client.Set(ctx, key(s.ID), data, rs.ttl).Err()
}

// ByID reads a session.
func (rs *RedisStore) ByID(ctx context.Context, id uuid.UUID) (*dmn.Session, error) {
	data, err := rs.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrSessionNotFound
		}
		return nil, err
	}

	var s dmn.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &s, nil
}

// Update runs fn on the session while holding a distributed lock on it, so
// concurrent next/prev calls on one session are applied one at a time.
func (rs *RedisStore) Update(ctx context.Context, id uuid.UUID, fn func(*dmn.Session) error) (*dmn.Session, error) {
	mutex := rs.locker.NewMutex(key(id) + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking session %s: %w", id, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	s, err := rs.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := rs.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
