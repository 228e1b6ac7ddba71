package maze

import (
	"slices"
)

// StepCost is the weight of one orthogonal step between adjacent cells.
const StepCost int64 = 1

// Direction is an orthogonal step on the grid.
type Direction int

// Directions, in the order neighbours are probed.
const (
	North Direction = iota
	South
	West
	East
)

var directions = []struct {
	dir      Direction
	row, col int
	from, to Border // wall bit on the source side, wall bit on the destination side
}{
	{North, -1, 0, Top, Bottom},
	{South, 1, 0, Bottom, Top},
	{West, 0, -1, Left, Right},
	{East, 0, 1, Right, Left},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	}
	return "Unknown"
}

// Connector decides whether the step from a to its neighbour b in direction dir
// is open. It must be symmetric: Connector(a, b, d) == Connector(b, a, opposite(d)).
type Connector func(a, b Cell, dir Direction) bool

// DefaultConnector joins two navigable cells when neither side of their shared
// edge is walled.
func DefaultConnector(a, b Cell, dir Direction) bool {
	if !a.Navigable() || !b.Navigable() {
		return false
	}
	for _, d := range directions {
		if d.dir == dir {
			return a.Border&d.from == 0 && b.Border&d.to == 0
		}
	}
	return false
}

// Edge is a weighted, undirected link to a neighbouring cell.
type Edge struct {
	To     int
	Weight int64
}

// Graph is the traversability graph of a maze. Nodes are cell indices.
// It is built fresh by BuildGraph and never mutated afterwards.
type Graph struct {
	adj   map[int][]Edge
	nodes []int
}

// GraphOption configures BuildGraph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	connect Connector
	weight  func(a, b Cell) int64
}

// WithConnector replaces DefaultConnector.
func WithConnector(c Connector) GraphOption {
	return func(cfg *graphConfig) {
		cfg.connect = c
	}
}

// WithWeight sets a per-edge weight function. Weights must be positive.
func WithWeight(w func(a, b Cell) int64) GraphOption {
	return func(cfg *graphConfig) {
		cfg.weight = w
	}
}

// BuildGraph converts the maze into its traversability graph.
// Every navigable cell becomes a node; edges join orthogonal neighbours the
// connector accepts. Adjacency lists are sorted by neighbour index.
func BuildGraph(m *Maze, opts ...GraphOption) *Graph {
	cfg := graphConfig{
		connect: DefaultConnector,
		weight:  func(Cell, Cell) int64 { return StepCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{adj: make(map[int][]Edge)}
	for _, c := range m.cells {
		if !c.Navigable() {
			continue
		}
		g.nodes = append(g.nodes, c.Index)
		g.adj[c.Index] = nil
	}

	for _, c := range m.cells {
		if !c.Navigable() {
			continue
		}
		for _, d := range directions {
			n, ok := m.At(c.Row+d.row, c.Column+d.col)
			if !ok || n.Index == c.Index {
				continue
			}
			if _, isNode := g.adj[n.Index]; !isNode {
				continue
			}
			if !cfg.connect(c, n, d.dir) {
				continue
			}
			g.adj[c.Index] = append(g.adj[c.Index], Edge{To: n.Index, Weight: cfg.weight(c, n)})
		}
	}

	for i := range g.adj {
		slices.SortFunc(g.adj[i], func(a, b Edge) int { return a.To - b.To })
	}

	return g
}

// Nodes returns the node indices in ascending order.
func (g *Graph) Nodes() []int {
	return slices.Clone(g.nodes)
}

// Contains reports whether the cell index is a node of the graph.
func (g *Graph) Contains(index int) bool {
	_, ok := g.adj[index]
	return ok
}

// Neighbors returns the edges leaving index.
func (g *Graph) Neighbors(index int) []Edge {
	return g.adj[index]
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of the edge a-b.
func (g *Graph) Weight(a, b int) (int64, bool) {
	for _, e := range g.adj[a] {
		if e.To == b {
			return e.Weight, true
		}
	}
	return 0, false
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n / 2
}
