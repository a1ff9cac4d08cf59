// Package board provides the 2D grid of cells and the position-scoped player
// operations: movement, inspection, pickup, drop, and attack.
package board

import (
	"fmt"
	"strings"
)

// Direction is a compass direction on the grid.
type Direction string

// The four movement directions. North decreases Y; the origin is the
// top-left cell.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// ParseDirection normalizes user input to a Direction. Single letters and
// full names are accepted, case-insensitively.
//
// Postcondition: returns ErrUnknownDirection for anything else.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "e", "east":
		return East, nil
	case "w", "west":
		return West, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownDirection)
	}
}

// offset returns the coordinate delta for d.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
