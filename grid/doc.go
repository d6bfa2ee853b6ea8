// Package grid defines the cell-level vocabulary shared by every hamgrid
// package: coordinates on a square n×n board, the four compass directions,
// and the (coordinate, direction) Step that a traversal is made of.
//
// What:
//
//   - Coordinate{X, Y} identifies one cell; (0,0) is the bottom-left corner
//     and North increases Y.
//   - Direction is one of North, East, South, West; Delta gives the unit move.
//   - Step pairs a coordinate with the direction of the arrow drawn on it.
//     Applying the direction to the coordinate yields the next cell.
//   - ParseDirection resolves the one-letter tokens "N", "E", "S", "W" through
//     a static table.
//
// Complexity:
//
//   - Every operation in this package is O(1) time and allocation-free.
//
// Errors:
//
//   - ErrUnknownDirection: a token or value outside the four compass points.
package grid
