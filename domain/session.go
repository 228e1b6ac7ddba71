package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	itemIDPattern     = `^[a-z0-9]+(-[a-z0-9]+)*$` // lower-case words joined by dashes
	maxItemIDLength   = 64
	maxItemNameLength = 120
)

var (
	itemIDRegex = regexp.MustCompile(itemIDPattern)
)

var (
	ErrNoItems         = errors.New("shopping list is empty")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrItemNameTooLong = errors.New("item name too long")
	ErrSessionNotFound = errors.New("session not found")
)

// Item is one entry of a shopping list.
type Item struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Label returns the name shown to the shopper, falling back to the id.
func (it Item) Label() string {
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// Session is a shopping trip in progress: the list and how many of its
// items have been picked up.
type Session struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Items     []Item    `bson:"items" json:"items"`
	Collected int       `bson:"collected" json:"collected"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SessionConfig holds parameters for creating a Session.
type SessionConfig struct {
	ID    uuid.UUID
	Items []Item
}

// NewSession creates a Session with nothing collected yet.
func NewSession(config SessionConfig) (*Session, error) {
	if len(config.Items) == 0 {
		return nil, ErrNoItems
	}
	if err := ValidateItems(config.Items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Session{
		ID:        config.ID,
		Items:     slices.Clone(config.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Advance moves the collected counter by step, clamped to [0, len(Items)].
// It reports whether the counter changed.
func (s *Session) Advance(step int) bool {
	next := min(max(s.Collected+step, 0), len(s.Items))
	if next == s.Collected {
		return false
	}
	s.Collected = next
	s.UpdatedAt = time.Now().UTC()
	return true
}

// Done reports whether every item has been collected.
func (s *Session) Done() bool {
	return s.Collected >= len(s.Items)
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	c.Items = slices.Clone(s.Items)
	return &c
}

// ValidateItems checks the format of every item. It does not check that the
// ids exist in a catalog.
func ValidateItems(items []Item) error {
	for _, it := range items {
		if len(it.ID) > maxItemIDLength || !itemIDRegex.MatchString(it.ID) {
			return fmt.Errorf("%w: %q", ErrInvalidItemID, it.ID)
		}
		if len(it.Name) > maxItemNameLength {
			return fmt.Errorf("%w: %q", ErrItemNameTooLong, it.ID)
		}
	}
	return nil
}
