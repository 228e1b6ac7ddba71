package maze

import (
	"fmt"
	"strings"
)

// Border is a bitmask of the walled edges of a cell.
type Border uint8

// Border bits. A set bit means the edge is blocked.
const (
	Top Border = 1 << iota
	Bottom
	Left
	Right

	Empty Border = 0
)

var borderNames = []struct {
	bit  Border
	name string
}{
	{Top, "top"},
	{Bottom, "bottom"},
	{Left, "left"},
	{Right, "right"},
}

// Has reports whether every bit of b2 is set in b.
func (b Border) Has(b2 Border) bool {
	return b&b2 == b2 && b2 != Empty
}

// String returns the set edges joined with "|", or "empty".
func (b Border) String() string {
	if b == Empty {
		return "empty"
	}
	var parts []string
	for _, bn := range borderNames {
		if b&bn.bit != 0 {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseBorder converts edge names ("top", "bottom", "left", "right") into a Border.
func ParseBorder(names ...string) (Border, error) {
	var b Border
	for _, n := range names {
		found := false
		for _, bn := range borderNames {
			if strings.EqualFold(n, bn.name) {
				b |= bn.bit
				found = true
				break
			}
		}
		if !found && !strings.EqualFold(n, "empty") {
			return Empty, fmt.Errorf("%w: %q", ErrUnknownBorder, n)
		}
	}
	return b, nil
}

// Role tags a cell with special behaviour.
type Role int

// Roles a cell can carry.
const (
	None Role = iota
	Wall
	Exterior
	Entrance
	Exit
	Enemy
	Reward
)

var roleNames = map[Role]string{
	None:     "none",
	Wall:     "wall",
	Exterior: "exterior",
	Entrance: "entrance",
	Exit:     "exit",
	Enemy:    "enemy",
	Reward:   "reward",
}

// String returns the lower-case role name.
func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole converts a role name into a Role. The empty string is None.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return None, nil
	}
	for r, n := range roleNames {
		if strings.EqualFold(s, n) {
			return r, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Cell is one square of the venue.
type Cell struct {
	Index  int    // Index is unique within a maze.
	Row    int    // Row of the cell, top row is 0.
	Column int    // Column of the cell, left column is 0.
	Border Border // Border holds the walled edges.
	Role   Role   // Role tags special cells.
}

// Navigable reports whether the cell can be part of a route.
func (c Cell) Navigable() bool {
	return c.Role != Wall && c.Role != Exterior
}
