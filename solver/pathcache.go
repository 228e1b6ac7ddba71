package solver

import (
	"container/heap"
	"context"
	"slices"

	"github.com/beka-birhanu/aisle/maze"
	"golang.org/x/sync/errgroup"
)

// PathCache holds the shortest path between every ordered pair of distinct stops.
// It is read-only once built.
type PathCache struct {
	g    *maze.Graph
	legs map[[2]int]Leg
}

// NewPathCache runs one shortest-path expansion from each distinct stop and
// records the leg to every other stop. Expansions run concurrently; the result
// does not depend on their scheduling.
func NewPathCache(ctx context.Context, g *maze.Graph, stops []int) (*PathCache, error) {
	sources := distinct(stops)
	results := make([]map[[2]int]Leg, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			dist, prev := shortestPaths(g, src)
			legs := make(map[[2]int]Leg, len(sources)-1)
			for _, dst := range sources {
				if dst == src {
					continue
				}
				legs[[2]int{src, dst}] = buildLeg(src, dst, dist, prev)
			}
			results[i] = legs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	pc := &PathCache{g: g, legs: make(map[[2]int]Leg)}
	for _, legs := range results {
		for k, l := range legs {
			pc.legs[k] = l
		}
	}
	return pc, nil
}

// Leg returns the cached leg from a to b. A pair that was never computed, or
// has no path, comes back with Reachable false and Cost Unreachable. A stop on
// the graph reaches itself with a zero-cost, single-cell leg.
func (pc *PathCache) Leg(a, b int) Leg {
	if a == b && pc.g.Contains(a) {
		return Leg{From: a, To: b, Path: []int{a}, Cost: 0, Reachable: true}
	}
	if l, ok := pc.legs[[2]int{a, b}]; ok {
		l.Path = slices.Clone(l.Path)
		return l
	}
	return Leg{From: a, To: b, Cost: Unreachable}
}

// cost returns the leg cost without copying the path.
func (pc *PathCache) cost(a, b int) (int64, bool) {
	if a == b {
		return 0, pc.g.Contains(a)
	}
	l, ok := pc.legs[[2]int{a, b}]
	if !ok || !l.Reachable {
		return Unreachable, false
	}
	return l.Cost, true
}

// Len returns the number of cached ordered pairs.
func (pc *PathCache) Len() int {
	return len(pc.legs)
}

func distinct(stops []int) []int {
	var out []int
	for _, s := range stops {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func buildLeg(src, dst int, dist map[int]int64, prev map[int]int) Leg {
	d, ok := dist[dst]
	if !ok {
		return Leg{From: src, To: dst, Cost: Unreachable}
	}
	path := []int{dst}
	for v := dst; v != src; {
		v = prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)
	return Leg{From: src, To: dst, Path: path, Cost: d, Reachable: true}
}

// shortestPaths runs Dijkstra from src. dist holds only reached cells; prev[v]
// is the predecessor of v on its shortest path. A source outside the graph
// reaches nothing.
func shortestPaths(g *maze.Graph, src int) (map[int]int64, map[int]int) {
	dist := make(map[int]int64)
	prev := make(map[int]int)
	if !g.Contains(src) {
		return dist, prev
	}

	visited := make(map[int]bool)
	dist[src] = 0
	pq := &nodePQ{}
	heap.Push(pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			nd := dist[u] + e.Weight
			if d, seen := dist[e.To]; seen && nd >= d {
				continue
			}
			dist[e.To] = nd
			prev[e.To] = u
			heap.Push(pq, &nodeItem{id: e.To, dist: nd, seq: pq.next()})
		}
	}
	return dist, prev
}

// nodeItem is a cell and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
	seq  int // insertion order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then insertion order.
// Stale entries are skipped when popped (lazy decrease-key).
type nodePQ struct {
	items  []*nodeItem
	pushed int
}

func (pq *nodePQ) next() int {
	pq.pushed++
	return pq.pushed
}

func (pq nodePQ) Len() int { return len(pq.items) }

func (pq nodePQ) Less(i, j int) bool {
	if pq.items[i].dist != pq.items[j].dist {
		return pq.items[i].dist < pq.items[j].dist
	}
	return pq.items[i].seq < pq.items[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *nodePQ) Push(x any) { pq.items = append(pq.items, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	return item
}
