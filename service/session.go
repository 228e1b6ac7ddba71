package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/aisle/catalog"
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/google/uuid"
)

const (
	// SessionClaim is the token claim holding the session id.
	SessionClaim = "sessionID"

	defaultTokenTTL = 2 * time.Hour
)

// SessionService runs shopping sessions: a stored list plus a collected
// counter the shopper moves with next and prev.
type SessionService struct {
	store     i.SessionStore
	routes    i.RouteComputer
	catalog   *catalog.Catalog
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
	logger    i.Logger
}

var _ i.SessionManager = &SessionService{}

// SessionConfig holds the dependencies of a SessionService.
type SessionConfig struct {
	Store     i.SessionStore
	Routes    i.RouteComputer
	Catalog   *catalog.Catalog
	Tokenizer i.Tokenizer
	TokenTTL  time.Duration
	Logger    i.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(config SessionConfig) (*SessionService, error) {
	if config.Store == nil || config.Routes == nil || config.Catalog == nil || config.Tokenizer == nil || config.Logger == nil {
		return nil, errors.New("session service: missing dependency")
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = defaultTokenTTL
	}
	return &SessionService{
		store:     config.Store,
		routes:    config.Routes,
		catalog:   config.Catalog,
		tokenizer: config.Tokenizer,
		tokenTTL:  config.TokenTTL,
		logger:    config.Logger,
	}, nil
}

// Start stores a new session for items and returns it with the token that
// grants access to it. Every item must exist in the catalog.
func (ss *SessionService) Start(ctx context.Context, items []dmn.Item) (*dmn.Session, string, error) {
	s, err := dmn.NewSession(dmn.SessionConfig{ID: uuid.New(), Items: items})
	if err != nil {
		return nil, "", err
	}
	for _, it := range s.Items {
		if _, err := ss.catalog.Lookup(it.ID); err != nil {
			return nil, "", err
		}
	}

	if err := ss.store.Save(ctx, s); err != nil {
		ss.logger.Error(fmt.Sprintf("saving session %s: %s", s.ID, err))
		return nil, "", err
	}

	token, err := ss.tokenizer.Generate(map[string]interface{}{SessionClaim: s.ID.String()}, ss.tokenTTL)
	if err != nil {
		ss.logger.Error(fmt.Sprintf("signing token for session %s: %s", s.ID, err))
		return nil, "", err
	}

	ss.logger.Info(fmt.Sprintf("session started: ID=%s items=%d", s.ID, len(s.Items)))
	return s, token, nil
}

// Get returns the session.
func (ss *SessionService) Get(ctx context.Context, id uuid.UUID) (*dmn.Session, error) {
	return ss.store.ByID(ctx, id)
}

// Advance moves the collected counter by step, staying within the list.
func (ss *SessionService) Advance(ctx context.Context, id uuid.UUID, step int) (*dmn.Session, error) {
	s, err := ss.store.Update(ctx, id, func(s *dmn.Session) error {
		s.Advance(step)
		return nil
	})
	if err != nil {
		return nil, err
	}
	ss.logger.Info(fmt.Sprintf("session advanced: ID=%s collected=%d/%d", s.ID, s.Collected, len(s.Items)))
	return s, nil
}

// Route computes the remaining route of the session.
func (ss *SessionService) Route(ctx context.Context, id uuid.UUID) (*dmn.RouteResult, error) {
	s, err := ss.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ss.routes.Compute(ctx, dmn.RouteRequest{Items: s.Items, Collected: s.Collected})
}
