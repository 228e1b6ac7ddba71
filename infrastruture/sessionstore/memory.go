package sessionstore

import (
	"context"
	"sync"

	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/google/uuid"
)

// MemoryStore is a process-local SessionStore. Sessions never expire.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*dmn.Session
}

var _ i.SessionStore = &MemoryStore{}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]*dmn.Session)}
}

// Save stores a copy of s.
func (ms *MemoryStore) Save(_ context.Context, s *dmn.Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sessions[s.ID] = s.Clone()
	return nil
}

// ByID returns a copy of the stored session.
func (ms *MemoryStore) ByID(_ context.Context, id uuid.UUID) (*dmn.Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, ok := ms.sessions[id]
	if !ok {
		return nil, dmn.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Update applies fn to a copy and stores it only if fn succeeds.
func (ms *MemoryStore) Update(_ context.Context, id uuid.UUID, fn func(*dmn.Session) error) (*dmn.Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, ok := ms.sessions[id]
	if !ok {
		return nil, dmn.ErrSessionNotFound
	}
	c := s.Clone()
	if err := fn(c); err != nil {
		return nil, err
	}
	ms.sessions[id] = c
	return c.Clone(), nil
}
