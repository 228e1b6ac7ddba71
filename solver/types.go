// Package solver finds the shortest walk through a maze that starts at an
// entrance, collects every waypoint, and ends at an exit.
//
// The pipeline is:
//
//   - PathCache: one shortest-path expansion per distinct stop, memoized per ordered pair.
//   - Optimize:  the visiting order of the waypoints that minimizes the total cost.
//   - Assemble:  the legs of the best order stitched into one path, trimmed by the
//     number of stops already reached.
//
// Solve runs the three stages in order. Every call builds its own graph and
// cache, so concurrent calls share nothing mutable.
package solver

import (
	"errors"
	"math"
)

// Solver errors. Callers classify them with errors.Is.
var (
	// ErrNoSolution means some leg every ordering needs has no path.
	ErrNoSolution = errors.New("no route visits every stop")

	// ErrTooManyWaypoints means the waypoint count exceeds the search bound.
	ErrTooManyWaypoints = errors.New("too many waypoints")

	// ErrResumeOutOfRange means the resume count does not name a stop of the tour.
	ErrResumeOutOfRange = errors.New("resume count out of range")

	// ErrUnknownStrategy means the optimizer strategy is not recognised.
	ErrUnknownStrategy = errors.New("unknown optimizer strategy")
)

// Unreachable is the cost of a leg with no path.
const Unreachable int64 = math.MaxInt64

// ExitLabel labels the synthetic target reported once every waypoint is collected.
const ExitLabel = "EXIT"

// Waypoint is a stop the route must pass through, with its display metadata.
type Waypoint struct {
	ID        string // caller's identifier, carried through untouched
	Cell      int    // cell the route must reach
	Label     string // item name shown to the shopper
	LabelCell int    // tile the item is labelled on; display only
}

// exitMarker is the synthetic target appended after the last waypoint.
func exitMarker(exit int) Waypoint {
	return Waypoint{Cell: exit, Label: ExitLabel, LabelCell: exit}
}

// Plan is the caller's stop list: entrance, unordered waypoints, exit.
type Plan struct {
	Entrance  int
	Waypoints []Waypoint
	Exit      int
}

// Stops returns the plan cells in input order: entrance, waypoints, exit.
func (p Plan) Stops() []int {
	stops := make([]int, 0, len(p.Waypoints)+2)
	stops = append(stops, p.Entrance)
	for _, w := range p.Waypoints {
		stops = append(stops, w.Cell)
	}
	return append(stops, p.Exit)
}

// Leg is the shortest path between an ordered pair of stops.
type Leg struct {
	From      int
	To        int
	Path      []int // From ... To; nil when unreachable
	Cost      int64 // Unreachable when no path exists
	Reachable bool
}

// Tour is an ordered chain of stops and the display metadata of its waypoints.
type Tour struct {
	Stops     []int      // entrance, waypoints in visiting order, exit
	Waypoints []Waypoint // waypoint metadata in visiting order
	Cost      int64      // sum of the leg costs along Stops
}

// Route is what is left to walk after some stops have been reached.
type Route struct {
	Path      []int    // cells from the current position to the exit
	Start     int      // current position
	Target    Waypoint // next stop to reach
	Remaining []int    // stops still on the way, Start first
	Cost      int64    // total edge weight along Path
}
