package i

import (
	"context"

	dmn "github.com/beka-birhanu/aisle/domain"
)

// RouteComputer computes shopping routes.
type RouteComputer interface {
	// Compute returns the remaining route through req's items.
	Compute(ctx context.Context, req dmn.RouteRequest) (*dmn.RouteResult, error)

	// Layout returns the bare floor plan drawing.
	Layout() (string, error)
}
