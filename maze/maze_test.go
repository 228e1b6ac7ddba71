package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openGrid builds a rows x cols grid with walls only on the outer boundary.
func openGrid(rows, cols int) []Cell {
	cells := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var b Border
			if r == 0 {
				b |= Top
			}
			if r == rows-1 {
				b |= Bottom
			}
			if c == 0 {
				b |= Left
			}
			if c == cols-1 {
				b |= Right
			}
			cells = append(cells, Cell{Index: r*cols + c, Row: r, Column: c, Border: b})
		}
	}
	return cells
}

func TestNew(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		m, err := New(openGrid(3, 4), WithName("small"))
		require.NoError(t, err)
		assert.Equal(t, "small", m.Name())
		assert.Equal(t, 4, m.Width())
		assert.Equal(t, 3, m.Height())
		assert.Equal(t, 12, m.Len())

		c, ok := m.At(2, 1)
		require.True(t, ok)
		assert.Equal(t, 9, c.Index)

		_, ok = m.At(3, 0)
		assert.False(t, ok)
	})

	cases := []struct {
		name  string
		cells []Cell
		err   error
	}{
		{"empty", nil, ErrEmptyMaze},
		{"duplicate index", []Cell{{Index: 0}, {Index: 0, Column: 1}}, ErrDuplicateIndex},
		{"index gap", []Cell{{Index: 0}, {Index: 2, Column: 1}}, ErrIndexGap},
		{"negative index", []Cell{{Index: -1}}, ErrIndexGap},
		{"duplicate position", []Cell{{Index: 0}, {Index: 1}}, ErrDuplicatePosition},
		{"negative position", []Cell{{Index: 0, Row: -1}}, ErrNegativePosition},
		{"position does not match index", []Cell{{Index: 0, Column: 1}, {Index: 1, Column: 0}}, ErrInconsistentPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("region out of range", func(t *testing.T) {
		_, err := New(openGrid(2, 2), WithRegions(Region{Name: "shelf", From: 2, To: 9}))
		assert.ErrorIs(t, err, ErrRegionOutOfRange)

		_, err = New(openGrid(2, 2), WithRegions(Region{Name: "empty", From: 1, To: 1}))
		assert.ErrorIs(t, err, ErrRegionOutOfRange)
	})
}

func TestMazeAccessors(t *testing.T) {
	m, err := New(openGrid(2, 3), WithRegions(Region{Name: "aisle", From: 1, To: 3}))
	require.NoError(t, err)

	c, err := m.Cell(4)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 1, c.Column)

	_, err = m.Cell(6)
	assert.ErrorIs(t, err, ErrCellNotFound)

	span := m.Slice(1, 3)
	require.Len(t, span, 2)
	assert.Equal(t, 1, span[0].Index)
	assert.Empty(t, m.Slice(4, 2))

	cells := m.Cells()
	cells[0].Role = Wall
	first, _ := m.Cell(0)
	assert.Equal(t, None, first.Role, "Cells must return a copy")

	assert.Equal(t, []Region{{Name: "aisle", From: 1, To: 3}}, m.Regions())
}

func TestMazeString(t *testing.T) {
	cells := openGrid(1, 2)
	cells[1].Role = Exit
	m, err := New(cells)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(m.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+---+---+", lines[0])
	assert.Equal(t, "|     X |", lines[1])
	assert.Equal(t, "+---+---+", lines[2])
}

func TestParseBorderAndRole(t *testing.T) {
	b, err := ParseBorder("top", "RIGHT")
	require.NoError(t, err)
	assert.Equal(t, Top|Right, b)
	assert.True(t, b.Has(Top))
	assert.False(t, b.Has(Left))
	assert.Equal(t, "top|right", b.String())
	assert.Equal(t, "empty", Empty.String())

	_, err = ParseBorder("up")
	assert.ErrorIs(t, err, ErrUnknownBorder)

	r, err := ParseRole("exterior")
	require.NoError(t, err)
	assert.Equal(t, Exterior, r)
	assert.Equal(t, "exterior", r.String())

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, None, r)

	_, err = ParseRole("lava")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
