// Package core provides the grid types shared by the generator and the
// pathfinder. It has no external dependencies and holds no global state.
package core

import "fmt"

// Position is a 0-indexed cell address on the grid.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Step returns the neighbor one cell away in direction d.
func (p Position) Step(d Dir) Position {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Touches reports whether other lies within one cell of p in both axes,
// diagonals and p itself included.
func (p Position) Touches(other Position) bool {
	return abs(p.Row-other.Row) <= 1 && abs(p.Col-other.Col) <= 1
}

// Adjacent4 reports whether other is exactly one step away along one axis.
func (p Position) Adjacent4(other Position) bool {
	return p.Manhattan(other) == 1
}

// Dir is one of the four movement directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the directions in neighbor expansion order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (row, col) offset for the direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
