package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayout(t *testing.T) {
	t.Run("valid layout", func(t *testing.T) {
		src := `
name: corridor
width: 3
height: 1
regions:
  - {name: "snacks", from: 1, to: 2}
cells:
  - {index: 0, row: 0, column: 0, border: [top, bottom, left], role: entrance}
  - {index: 1, row: 0, column: 1, border: [top, bottom]}
  - {index: 2, row: 0, column: 2, border: [top, bottom, right], role: exit}
`
		m, err := LoadLayout(strings.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, "corridor", m.Name())
		assert.Equal(t, 3, m.Len())

		c, err := m.Cell(2)
		require.NoError(t, err)
		assert.Equal(t, Exit, c.Role)
		assert.Equal(t, Top|Bottom|Right, c.Border)
		assert.Equal(t, []Region{{Name: "snacks", From: 1, To: 2}}, m.Regions())
	})

	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"unknown border", "cells:\n  - {index: 0, row: 0, column: 0, border: [up]}\n", ErrUnknownBorder},
		{"unknown role", "cells:\n  - {index: 0, row: 0, column: 0, role: lava}\n", ErrUnknownRole},
		{"no cells", "name: nothing\n", ErrEmptyMaze},
		{"declared size mismatch", "width: 4\ncells:\n  - {index: 0, row: 0, column: 0}\n", ErrInconsistentPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadLayout(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadLayout(strings.NewReader("cells: [\n"))
		assert.Error(t, err)
	})
}

func TestStore(t *testing.T) {
	m, err := Store()
	require.NoError(t, err)

	assert.Equal(t, "store", m.Name())
	assert.Equal(t, 17, m.Width())
	assert.Equal(t, 19, m.Height())
	assert.Equal(t, 323, m.Len())
	assert.Len(t, m.Regions(), 17)

	entrance, err := m.Cell(152)
	require.NoError(t, err)
	assert.Equal(t, Entrance, entrance.Role)

	exit, err := m.Cell(136)
	require.NoError(t, err)
	assert.Equal(t, Exit, exit.Role)

	open, err := m.Cell(246)
	require.NoError(t, err)
	assert.Equal(t, Empty, open.Border)

	again, err := Store()
	require.NoError(t, err)
	assert.Same(t, m, again)
}
