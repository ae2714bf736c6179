package chess

import "fmt"

// Coordinate addresses a square: X is the file (0 = a), Y is the rank (0 = 1).
// Off-board values are representable; use InBounds before touching a grid.
type Coordinate struct {
	X int
	Y int
}

// Sq creates a coordinate.
func Sq(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Add returns the coordinate offset by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Index returns the a1 = 0, h8 = 63 square index used by most move generators.
func (c Coordinate) Index() int {
	return c.Y*BoardSize + c.X
}

// FromIndex converts an a1 = 0 square index back to a coordinate.
func FromIndex(i int) Coordinate {
	return Coordinate{X: i % BoardSize, Y: i / BoardSize}
}

// String returns the algebraic name of an on-board square ("e4"), or the raw
// pair for off-board values.
func (c Coordinate) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string([]byte{byte('a' + c.X), byte('1' + c.Y)})
}
