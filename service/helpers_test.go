package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/beka-birhanu/aisle/catalog"
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/maze"
	"github.com/beka-birhanu/aisle/render"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf("[%s] %s", level, msg))
}

func (l *testLogger) Info(msg string)    { l.add("INFO", msg) }
func (l *testLogger) Warning(msg string) { l.add("WARNING", msg) }
func (l *testLogger) Error(msg string)   { l.add("ERROR", msg) }

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = make(map[string][]byte)
	}
	c.data[key] = value
	c.sets++
	return nil
}

type memTrips struct {
	mu    sync.Mutex
	trips []*dmn.Trip
}

func (r *memTrips) Save(trip *dmn.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips = append(r.trips, trip)
	return nil
}

func (r *memTrips) ByID(id uuid.UUID) (*dmn.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("trip %s not found", id)
}

func newRouteService(t *testing.T, opts *RouteOptions) *RouteService {
	t.Helper()
	m, err := maze.Store()
	require.NoError(t, err)
	c, err := catalog.Default()
	require.NoError(t, err)
	rs, err := NewRouteService(m, c, render.New(), &testLogger{}, opts)
	require.NoError(t, err)
	return rs
}
