package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_OpenGrid(t *testing.T) {
	m, err := New(openGrid(3, 3))
	require.NoError(t, err)
	g := BuildGraph(m)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, g.Nodes())
	assert.Equal(t, 12, g.EdgeCount())
	assert.Equal(t, []Edge{{To: 1, Weight: 1}, {To: 3, Weight: 1}}, g.Neighbors(0))
	assert.Len(t, g.Neighbors(4), 4)
	assert.False(t, g.HasEdge(0, 4), "no diagonal edges")
	assert.False(t, g.HasEdge(2, 3), "row wrap is not adjacency")
}

func TestBuildGraph_Walls(t *testing.T) {
	t.Run("one walled side blocks the edge", func(t *testing.T) {
		cells := openGrid(1, 2)
		cells[0].Border |= Right
		m, err := New(cells)
		require.NoError(t, err)
		g := BuildGraph(m)
		assert.False(t, g.HasEdge(0, 1))
		assert.False(t, g.HasEdge(1, 0))
	})

	t.Run("wall and exterior roles are not nodes", func(t *testing.T) {
		cells := openGrid(1, 3)
		cells[1].Role = Wall
		cells[2].Role = Exterior
		m, err := New(cells)
		require.NoError(t, err)
		g := BuildGraph(m)
		assert.Equal(t, []int{0}, g.Nodes())
		assert.False(t, g.Contains(1))
		assert.Empty(t, g.Neighbors(0))
	})

	t.Run("special roles stay navigable", func(t *testing.T) {
		cells := openGrid(1, 3)
		cells[0].Role = Entrance
		cells[1].Role = Reward
		cells[2].Role = Exit
		m, err := New(cells)
		require.NoError(t, err)
		g := BuildGraph(m)
		assert.True(t, g.HasEdge(0, 1))
		assert.True(t, g.HasEdge(1, 2))
	})
}

func TestBuildGraph_Options(t *testing.T) {
	m, err := New(openGrid(2, 2))
	require.NoError(t, err)

	horizontalOnly := func(a, b Cell, dir Direction) bool {
		return dir == East || dir == West
	}
	g := BuildGraph(m, WithConnector(horizontalOnly), WithWeight(func(a, b Cell) int64 { return 5 }))
	assert.Equal(t, 2, g.EdgeCount())
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(5), w)
	assert.False(t, g.HasEdge(0, 2))
}

func TestBuildGraph_StoreInvariants(t *testing.T) {
	m, err := Store()
	require.NoError(t, err)
	g := BuildGraph(m)

	assert.Len(t, g.Nodes(), 184)
	assert.Equal(t, 200, g.EdgeCount())
	assert.Equal(t, []Edge{{To: 151, Weight: 1}}, g.Neighbors(152))
	assert.Equal(t, []Edge{{To: 137, Weight: 1}}, g.Neighbors(136))

	for _, u := range g.Nodes() {
		for _, e := range g.Neighbors(u) {
			assert.NotEqual(t, u, e.To, "self-loop at %d", u)
			assert.True(t, g.HasEdge(e.To, u), "edge %d-%d is not symmetric", u, e.To)
		}
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "East", East.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}
