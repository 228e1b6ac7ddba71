package maze

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed layouts/store.yaml
var storeLayout []byte

// Layout is the on-disk form of a floor plan.
type Layout struct {
	Name    string         `yaml:"name"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
	Regions []LayoutRegion `yaml:"regions"`
	Cells   []LayoutCell   `yaml:"cells"`
}

// LayoutRegion is the on-disk form of a Region.
type LayoutRegion struct {
	Name string `yaml:"name"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
}

// LayoutCell is the on-disk form of a Cell.
type LayoutCell struct {
	Index  int      `yaml:"index"`
	Row    int      `yaml:"row"`
	Column int      `yaml:"column"`
	Border []string `yaml:"border"`
	Role   string   `yaml:"role"`
}

// LoadLayout reads a YAML floor plan and builds the Maze.
// Declared width and height, when present, must match the cells.
func LoadLayout(r io.Reader) (*Maze, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	return l.Maze()
}

// Maze converts the layout into a validated Maze.
func (l Layout) Maze() (*Maze, error) {
	cells := make([]Cell, 0, len(l.Cells))
	for _, lc := range l.Cells {
		border, err := ParseBorder(lc.Border...)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", lc.Index, err)
		}
		role, err := ParseRole(lc.Role)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", lc.Index, err)
		}
		cells = append(cells, Cell{
			Index:  lc.Index,
			Row:    lc.Row,
			Column: lc.Column,
			Border: border,
			Role:   role,
		})
	}

	regions := make([]Region, 0, len(l.Regions))
	for _, lr := range l.Regions {
		regions = append(regions, Region{Name: lr.Name, From: lr.From, To: lr.To})
	}

	m, err := New(cells, WithName(l.Name), WithRegions(regions...))
	if err != nil {
		return nil, err
	}

	if (l.Width != 0 && l.Width != m.Width()) || (l.Height != 0 && l.Height != m.Height()) {
		return nil, fmt.Errorf("%w: declared %dx%d, cells span %dx%d",
			ErrInconsistentPosition, l.Width, l.Height, m.Width(), m.Height())
	}
	return m, nil
}

var (
	storeOnce sync.Once
	storeMaze *Maze
	storeErr  error
)

// Store returns the embedded store floor plan. It is parsed once and shared;
// the returned Maze is read-only.
func Store() (*Maze, error) {
	storeOnce.Do(func() {
		storeMaze, storeErr = LoadLayout(bytes.NewReader(storeLayout))
	})
	return storeMaze, storeErr
}
