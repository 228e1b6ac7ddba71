package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/beka-birhanu/aisle/maze"
)

// DefaultMaxWaypoints bounds the exhaustive search. 10! orderings is the most
// a single request is allowed to enumerate.
const DefaultMaxWaypoints = 10

// cancelCheckInterval is how many orderings are scored between context checks.
const cancelCheckInterval = 1 << 12

// Strategy selects the ordering search.
type Strategy int

const (
	// Exhaustive scores every ordering in lexicographic order; the first
	// ordering with the minimal cost wins.
	Exhaustive Strategy = iota
	// HeldKarp runs the subset dynamic program. It finds the same minimal
	// cost; among equal-cost orderings it may pick a different one.
	HeldKarp
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case HeldKarp:
		return "held-karp"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exhaustive":
		return Exhaustive, nil
	case "held-karp", "heldkarp":
		return HeldKarp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Options tunes Optimize and Solve.
type Options struct {
	MaxWaypoints int
	Strategy     Strategy
	GraphOptions []maze.GraphOption
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the exhaustive search bounded by DefaultMaxWaypoints.
func DefaultOptions() Options {
	return Options{MaxWaypoints: DefaultMaxWaypoints, Strategy: Exhaustive}
}

// WithMaxWaypoints sets the waypoint bound. Values below one keep the default.
func WithMaxWaypoints(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxWaypoints = n
		}
	}
}

// WithStrategy selects the ordering search.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithGraphOptions forwards options to maze.BuildGraph.
func WithGraphOptions(opts ...maze.GraphOption) Option {
	return func(o *Options) {
		o.GraphOptions = append(o.GraphOptions, opts...)
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Optimize returns the visiting order of plan's waypoints that minimises the
// total cost of entrance -> waypoints -> exit. The waypoint bound is enforced
// before any search work is done.
func Optimize(ctx context.Context, plan Plan, cache *PathCache, opts ...Option) (*Tour, error) {
	o := applyOptions(opts)
	if n := len(plan.Waypoints); n > o.MaxWaypoints {
		return nil, fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyWaypoints, n, o.MaxWaypoints)
	}

	var (
		order []int
		cost  int64
		err   error
	)
	switch o.Strategy {
	case Exhaustive:
		order, cost, err = exhaustive(ctx, plan, cache)
	case HeldKarp:
		order, cost, err = heldKarp(ctx, plan, cache)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, o.Strategy)
	}
	if err != nil {
		return nil, err
	}
	return newTour(plan, order, cost), nil
}

func newTour(plan Plan, order []int, cost int64) *Tour {
	t := &Tour{
		Stops:     make([]int, 0, len(order)+2),
		Waypoints: make([]Waypoint, 0, len(order)),
		Cost:      cost,
	}
	t.Stops = append(t.Stops, plan.Entrance)
	for _, i := range order {
		t.Stops = append(t.Stops, plan.Waypoints[i].Cell)
		t.Waypoints = append(t.Waypoints, plan.Waypoints[i])
	}
	t.Stops = append(t.Stops, plan.Exit)
	return t
}

// exhaustive enumerates every ordering of the waypoint indices in lexicographic
// order and keeps the first one whose cost is strictly below the best so far.
func exhaustive(ctx context.Context, plan Plan, cache *PathCache) ([]int, int64, error) {
	n := len(plan.Waypoints)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		best     []int
		bestCost = Unreachable
		scored   int
	)
	for {
		if scored++; scored%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}
		if c, ok := chainCost(plan, perm, cache, bestCost); ok && c < bestCost {
			best = append(best[:0], perm...)
			bestCost = c
		}
		if !nextPermutation(perm) {
			break
		}
	}
	if bestCost == Unreachable {
		return nil, 0, ErrNoSolution
	}
	return best, bestCost, nil
}

// chainCost sums the legs of entrance -> perm -> exit. It gives up as soon as
// a leg is missing or the running sum reaches bound.
func chainCost(plan Plan, perm []int, cache *PathCache, bound int64) (int64, bool) {
	var total int64
	prev := plan.Entrance
	for _, i := range perm {
		next := plan.Waypoints[i].Cell
		c, ok := cache.cost(prev, next)
		if !ok {
			return Unreachable, false
		}
		if total += c; total >= bound {
			return total, false
		}
		prev = next
	}
	c, ok := cache.cost(prev, plan.Exit)
	if !ok {
		return Unreachable, false
	}
	return total + c, true
}

// nextPermutation rearranges p into its lexicographic successor. It reports
// false, leaving p unchanged, when p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
