// Package core provides fundamental types and utilities shared by the hunting
// simulation packages. It contains no external dependencies to keep game logic
// pure and testable.
package core

import "fmt"

// Tile is a cell position in the maze grid.
type Tile struct {
	X, Y int
}

// T creates a tile at (x, y).
func T(x, y int) Tile {
	return Tile{X: x, Y: y}
}

// Add returns the tile offset by one step in the given direction.
func (t Tile) Add(d Direction) Tile {
	dx, dy := d.Delta()
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Plus returns the tile offset by (dx, dy).
func (t Tile) Plus(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// EuclideanSq returns the squared euclidean distance between two tiles.
// Ghost targeting compares squared distances, exactly like the arcade.
func (t Tile) EuclideanSq(o Tile) int {
	dx := t.X - o.X
	dy := t.Y - o.Y
	return dx*dx + dy*dy
}

// Manhattan returns the manhattan distance between two tiles.
func (t Tile) Manhattan(o Tile) int {
	return Abs(t.X-o.X) + Abs(t.Y-o.Y)
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Direction represents a movement direction on the grid.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// Directions lists the four movement directions in arcade tie-break order:
// when two moves are equally good a ghost prefers up, then left, then down.
var Directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
