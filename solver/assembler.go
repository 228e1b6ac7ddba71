package solver

import (
	"fmt"
	"slices"
)

// Remaining is the part of a tour not yet walked. Targets[k] is the stop
// reached after Stops[k]; the last target is the exit marker, so
// len(Targets) == len(Stops)-1.
type Remaining struct {
	Stops   []int
	Targets []Waypoint
}

// Remaining returns the whole tour as a Remaining, with the exit marker
// appended to the waypoint metadata.
func (t *Tour) Remaining() Remaining {
	targets := make([]Waypoint, 0, len(t.Waypoints)+1)
	targets = append(targets, t.Waypoints...)
	if n := len(t.Stops); n > 0 {
		targets = append(targets, exitMarker(t.Stops[n-1]))
	}
	return Remaining{Stops: slices.Clone(t.Stops), Targets: targets}
}

// Trim drops the first r stops. The receiver is left untouched. r must name
// a stop of rem: 0 <= r < len(rem.Stops).
func (rem Remaining) Trim(r int) (Remaining, error) {
	if r < 0 || r >= len(rem.Stops) {
		return Remaining{}, fmt.Errorf("%w: %d not in [0, %d)", ErrResumeOutOfRange, r, len(rem.Stops))
	}
	return Remaining{
		Stops:   slices.Clone(rem.Stops[r:]),
		Targets: slices.Clone(rem.Targets[min(r, len(rem.Targets)):]),
	}, nil
}

// Target returns the next stop to reach. Standing on the exit, the target is
// the exit itself.
func (rem Remaining) Target() Waypoint {
	if len(rem.Targets) > 0 {
		return rem.Targets[0]
	}
	if n := len(rem.Stops); n > 0 {
		return exitMarker(rem.Stops[n-1])
	}
	return Waypoint{Cell: -1, LabelCell: -1}
}

// Assemble stitches the legs of tour from stop resume onwards into one path.
// Each leg after the first loses its first cell, which repeats the previous
// leg's last one.
func Assemble(tour *Tour, cache *PathCache, resume int) (*Route, error) {
	rem, err := tour.Remaining().Trim(resume)
	if err != nil {
		return nil, err
	}
	return stitch(rem, cache)
}

func stitch(rem Remaining, cache *PathCache) (*Route, error) {
	start := rem.Stops[0]
	path := []int{start}
	var cost int64
	for i := 1; i < len(rem.Stops); i++ {
		leg := cache.Leg(rem.Stops[i-1], rem.Stops[i])
		if !leg.Reachable {
			return nil, fmt.Errorf("%w: no path from cell %d to cell %d", ErrNoSolution, leg.From, leg.To)
		}
		path = append(path, leg.Path[1:]...)
		cost += leg.Cost
	}
	return &Route{
		Path:      path,
		Start:     start,
		Target:    rem.Target(),
		Remaining: rem.Stops,
		Cost:      cost,
	}, nil
}
