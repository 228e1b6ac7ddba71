/*
Package maze describes a venue as a fixed grid of cells.

A Maze is built once from a list of cells, each with a wall bitmask and an
optional role, and is read-only afterwards. BuildGraph turns it into the
traversability graph used for routing. Floor plans are loaded from YAML, and the
store floor plan ships embedded in the binary.
*/
package maze

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Maze-related errors.
var (
	ErrEmptyMaze            = errors.New("maze has no cells")
	ErrDuplicateIndex       = errors.New("duplicate cell index")
	ErrDuplicatePosition    = errors.New("duplicate cell position")
	ErrIndexGap             = errors.New("cell indices must be dense from 0")
	ErrInconsistentPosition = errors.New("cell position does not match its index")
	ErrNegativePosition     = errors.New("cell position must be non-negative")
	ErrCellNotFound         = errors.New("cell not found")
	ErrRegionOutOfRange     = errors.New("region span out of range")
	ErrUnknownBorder        = errors.New("unknown border")
	ErrUnknownRole          = errors.New("unknown role")
)

// Region is a named, contiguous span of cell indices [From, To).
type Region struct {
	Name string
	From int
	To   int
}

// Option configures a Maze during New.
type Option func(*Maze)

// WithName sets the maze name.
func WithName(name string) Option {
	return func(m *Maze) {
		m.name = name
	}
}

// WithRegions attaches named label regions.
func WithRegions(regions ...Region) Option {
	return func(m *Maze) {
		m.regions = append(m.regions, regions...)
	}
}

// Maze is an immutable grid of cells indexed by Cell.Index.
type Maze struct {
	name    string
	width   int
	height  int
	cells   []Cell         // cells[i].Index == i
	grid    map[[2]int]int // (row, column) -> index
	regions []Region
}

// New validates the cells and builds a Maze.
// Indices must be unique and dense from 0, positions unique, and on a complete
// grid every index must equal row*width + column.
func New(cells []Cell, opts ...Option) (*Maze, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyMaze
	}

	m := &Maze{
		cells: make([]Cell, len(cells)),
		grid:  make(map[[2]int]int, len(cells)),
	}
	seen := make([]bool, len(cells))
	for _, c := range cells {
		if c.Index < 0 || c.Index >= len(cells) {
			return nil, fmt.Errorf("%w: index %d with %d cells", ErrIndexGap, c.Index, len(cells))
		}
		if seen[c.Index] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, c.Index)
		}
		if c.Row < 0 || c.Column < 0 {
			return nil, fmt.Errorf("%w: cell %d at (%d,%d)", ErrNegativePosition, c.Index, c.Row, c.Column)
		}
		pos := [2]int{c.Row, c.Column}
		if other, ok := m.grid[pos]; ok {
			return nil, fmt.Errorf("%w: cells %d and %d at (%d,%d)", ErrDuplicatePosition, other, c.Index, c.Row, c.Column)
		}
		seen[c.Index] = true
		m.grid[pos] = c.Index
		m.cells[c.Index] = c
		m.width = max(m.width, c.Column+1)
		m.height = max(m.height, c.Row+1)
	}

	if m.width*m.height == len(m.cells) {
		for _, c := range m.cells {
			if c.Index != c.Row*m.width+c.Column {
				return nil, fmt.Errorf("%w: cell %d at (%d,%d)", ErrInconsistentPosition, c.Index, c.Row, c.Column)
			}
		}
	}

	for _, opt := range opts {
		opt(m)
	}

	for _, r := range m.regions {
		if r.From < 0 || r.From >= r.To || r.To > len(m.cells) {
			return nil, fmt.Errorf("%w: %q [%d,%d)", ErrRegionOutOfRange, r.Name, r.From, r.To)
		}
	}

	return m, nil
}

// Name returns the maze name.
func (m *Maze) Name() string {
	return m.name
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Len returns the number of cells.
func (m *Maze) Len() int {
	return len(m.cells)
}

// Contains reports whether index names a cell of the maze.
func (m *Maze) Contains(index int) bool {
	return index >= 0 && index < len(m.cells)
}

// Cell returns the cell with the given index.
func (m *Maze) Cell(index int) (Cell, error) {
	if !m.Contains(index) {
		return Cell{}, fmt.Errorf("%w: %d", ErrCellNotFound, index)
	}
	return m.cells[index], nil
}

// At returns the cell at (row, column).
func (m *Maze) At(row, col int) (Cell, bool) {
	i, ok := m.grid[[2]int{row, col}]
	if !ok {
		return Cell{}, false
	}
	return m.cells[i], true
}

// Cells returns a copy of all cells ordered by index.
func (m *Maze) Cells() []Cell {
	return slices.Clone(m.cells)
}

// Slice returns the cells with indices in [from, to).
func (m *Maze) Slice(from, to int) []Cell {
	from = max(from, 0)
	to = min(to, len(m.cells))
	if from >= to {
		return nil
	}
	return slices.Clone(m.cells[from:to])
}

// Regions returns the named label regions.
func (m *Maze) Regions() []Region {
	return slices.Clone(m.regions)
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.width; col++ {
		c, ok := m.At(0, col)
		if ok && c.Border&Top != 0 {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		if c, ok := m.At(row, 0); ok && c.Border&Left != 0 {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.width; col++ {
			c, ok := m.At(row, col)
			if !ok {
				output.WriteString("    ")
				continue
			}
			output.WriteString(" " + cellGlyph(c) + " ")
			if c.Border&Right != 0 {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.width; col++ {
			c, ok := m.At(row, col)
			if ok && c.Border&Bottom != 0 {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

// cellGlyph returns the one-character ASCII mark for a cell role.
func cellGlyph(c Cell) string {
	switch c.Role {
	case Wall:
		return "#"
	case Exterior:
		return "."
	case Entrance:
		return "E"
	case Exit:
		return "X"
	case Enemy:
		return "!"
	case Reward:
		return "*"
	default:
		return " "
	}
}
