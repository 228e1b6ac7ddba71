package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 152, c.Entrance())
	assert.Equal(t, 136, c.Exit())
	assert.Len(t, c.Items(), 80)
	assert.Len(t, c.Sections(), 17)

	it, err := c.Lookup("snacks-7")
	require.NoError(t, err)
	assert.Equal(t, Item{ID: "snacks-7", Section: "Snacks", Cell: 147, LabelCell: 164}, it)

	it, err = c.Lookup("dairy-1")
	require.NoError(t, err)
	assert.Equal(t, 77, it.Cell)
	assert.Equal(t, 60, it.LabelCell)

	_, err = c.Lookup("caviar-1")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestLoad(t *testing.T) {
	t.Run("items keep declaration order", func(t *testing.T) {
		src := `
entrance: 0
exit: 5
sections:
  - name: "Bakery"
    items:
      - {id: bread-1, cell: 2, label_cell: 7}
      - {id: bread-2, cell: 3, label_cell: 8}
`
		c, err := Load(strings.NewReader(src))
		require.NoError(t, err)
		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "bread-1", items[0].ID)
		assert.Equal(t, "Bakery", items[1].Section)
		assert.Equal(t, []string{"Bakery"}, c.Sections())
	})

	t.Run("duplicate id", func(t *testing.T) {
		src := `
entrance: 0
exit: 5
sections:
  - name: "A"
    items: [{id: x, cell: 1, label_cell: 1}]
  - name: "B"
    items: [{id: x, cell: 2, label_cell: 2}]
`
		_, err := Load(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrDuplicateItem)
	})

	t.Run("missing endpoints", func(t *testing.T) {
		_, err := Load(strings.NewReader("sections: []\n"))
		assert.ErrorIs(t, err, ErrMissingEndpoint)
	})
}
