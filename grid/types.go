package grid

import "fmt"

// Coordinate identifies a single cell of an n×n board.
// X grows to the East, Y grows to the North.
type Coordinate struct {
	X, Y int
}

// At is shorthand for Coordinate{X: x, Y: y}.
func At(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// InBounds reports whether c lies on an n×n board.
// Complexity: O(1).
func (c Coordinate) InBounds(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// Move returns the neighbor of c one cell towards d.
// Complexity: O(1).
func (c Coordinate) Move(d Direction) Coordinate {
	dx, dy := d.Delta()

	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Translate returns c shifted by (dx, dy).
func (c Coordinate) Translate(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Index maps c to a row-major index on an n×n board: Y*n + X.
// The caller is responsible for checking InBounds first.
// Complexity: O(1).
func (c Coordinate) Index(n int) int {
	return c.Y*n + c.X
}

// CoordinateAt converts a row-major index back to its Coordinate.
// Complexity: O(1).
func CoordinateAt(idx, n int) Coordinate {
	return Coordinate{X: idx % n, Y: idx / n}
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step is one arrow of a traversal: the arrow is drawn at At and points Dir.
// Applying Dir to At yields the coordinate of the following step.
type Step struct {
	At  Coordinate
	Dir Direction
}

// Next returns the coordinate the step points to.
func (s Step) Next() Coordinate {
	return s.At.Move(s.Dir)
}

// String renders s as "(x,y)N".
func (s Step) String() string {
	return fmt.Sprintf("%s%c", s.At, s.Dir.Letter())
}
