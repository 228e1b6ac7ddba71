// Package domain holds the shopping list, session, and trip models shared by
// the services and their storage.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouteRequest asks for the route through a shopping list, skipping the first
// Collected stops of the best visiting order.
type RouteRequest struct {
	Items     []Item
	Collected int
}

// RouteResult is the remaining route and its drawing.
type RouteResult struct {
	Path        []int    `json:"path"`        // cells from the current position to the exit
	Order       []string `json:"order"`       // item ids in visiting order
	Target      int      `json:"target"`      // tile highlighted for the next stop
	TargetLabel string   `json:"targetLabel"` // item name, or EXIT
	Cost        int64    `json:"cost"`
	ItemsCount  int      `json:"itemsCount"`
	Collected   int      `json:"collected"`
	SVG         string   `json:"svg"`
}

// Trip is the record kept of every computed route.
type Trip struct {
	ID        uuid.UUID `bson:"_id"`
	Items     []string  `bson:"items"`
	Order     []string  `bson:"order"`
	Collected int       `bson:"collected"`
	Cost      int64     `bson:"cost"`
	Strategy  string    `bson:"strategy"`
	Elapsed   int64     `bson:"elapsedMicros"`
	CreatedAt time.Time `bson:"createdAt"`
}
