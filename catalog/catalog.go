// Package catalog maps catalog item identifiers to the store cells they are
// collected from and the shelf tiles they are labelled on.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrUnknownItem     = errors.New("unknown catalog item")
	ErrDuplicateItem   = errors.New("duplicate catalog item")
	ErrMissingEndpoint = errors.New("catalog must declare entrance and exit cells")
)

// Item is one catalog entry.
type Item struct {
	ID        string `yaml:"id"`
	Section   string `yaml:"-"`
	Cell      int    `yaml:"cell"`       // aisle cell the shopper stands on
	LabelCell int    `yaml:"label_cell"` // shelf tile the item is shown on
}

type section struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

type document struct {
	Entrance *int      `yaml:"entrance"`
	Exit     *int      `yaml:"exit"`
	Sections []section `yaml:"sections"`
}

// Catalog is a read-only item table.
type Catalog struct {
	entrance int
	exit     int
	items    map[string]Item
	order    []string
}

// Load parses a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if doc.Entrance == nil || doc.Exit == nil {
		return nil, ErrMissingEndpoint
	}

	c := &Catalog{
		entrance: *doc.Entrance,
		exit:     *doc.Exit,
		items:    make(map[string]Item),
	}
	for _, s := range doc.Sections {
		for _, it := range s.Items {
			if _, ok := c.items[it.ID]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
			}
			it.Section = s.Name
			c.items[it.ID] = it
			c.order = append(c.order, it.ID)
		}
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded store catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(defaultCatalog))
	})
	return defaultCat, defaultErr
}

// Entrance returns the cell every route starts from.
func (c *Catalog) Entrance() int {
	return c.entrance
}

// Exit returns the cell every route ends at.
func (c *Catalog) Exit() int {
	return c.exit
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, error) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return it, nil
}

// Items returns all items in declaration order.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}
	return items
}

// Sections returns the section names in declaration order.
func (c *Catalog) Sections() []string {
	var names []string
	for _, id := range c.order {
		s := c.items[id].Section
		if !slices.Contains(names, s) {
			names = append(names, s)
		}
	}
	return names
}
