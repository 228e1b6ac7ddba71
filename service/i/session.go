package i

import (
	"context"

	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/google/uuid"
)

// SessionStore keeps shopping sessions between requests.
type SessionStore interface {
	// Save stores s, replacing any session with the same ID.
	Save(ctx context.Context, s *dmn.Session) error

	// ByID returns the session or dmn.ErrSessionNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Session, error)

	// Update applies fn to the stored session under a lock and saves the result.
	// Nothing is saved when fn returns an error.
	Update(ctx context.Context, id uuid.UUID, fn func(*dmn.Session) error) (*dmn.Session, error)
}

// SessionManager runs shopping sessions.
type SessionManager interface {
	Start(ctx context.Context, items []dmn.Item) (*dmn.Session, string, error)
	Get(ctx context.Context, id uuid.UUID) (*dmn.Session, error)
	Advance(ctx context.Context, id uuid.UUID, step int) (*dmn.Session, error)
	Route(ctx context.Context, id uuid.UUID) (*dmn.RouteResult, error)
}
