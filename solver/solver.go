package solver

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/aisle/maze"
)

// Solution is the result of Solve: the full optimal tour and what is left of
// it after the resume trim.
type Solution struct {
	Tour  *Tour
	Route *Route
}

// Solve builds the graph of m, caches the legs between the plan's stops,
// picks the cheapest waypoint order and assembles the route from stop resume.
//
// Malformed input (unknown cells, too many waypoints, resume out of range) is
// rejected before any search work. An unreachable stop yields ErrNoSolution.
func Solve(ctx context.Context, m *maze.Maze, plan Plan, resume int, opts ...Option) (*Solution, error) {
	o := applyOptions(opts)
	if err := validatePlan(m, plan, resume, o); err != nil {
		return nil, err
	}

	g := maze.BuildGraph(m, o.GraphOptions...)
	cache, err := NewPathCache(ctx, g, plan.Stops())
	if err != nil {
		return nil, err
	}
	tour, err := Optimize(ctx, plan, cache, opts...)
	if err != nil {
		return nil, err
	}
	route, err := Assemble(tour, cache, resume)
	if err != nil {
		return nil, err
	}
	return &Solution{Tour: tour, Route: route}, nil
}

func validatePlan(m *maze.Maze, plan Plan, resume int, o Options) error {
	for _, c := range plan.Stops() {
		if !m.Contains(c) {
			return fmt.Errorf("%w: %d", maze.ErrCellNotFound, c)
		}
	}
	if n := len(plan.Waypoints); n > o.MaxWaypoints {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyWaypoints, n, o.MaxWaypoints)
	}
	if total := len(plan.Waypoints) + 2; resume < 0 || resume >= total {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrResumeOutOfRange, resume, total)
	}
	return nil
}
