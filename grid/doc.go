// Package grid models a binary occupancy grid for a point robot: every cell
// is either FREE (255) or BLOCKED (0).
//
// What:
//
//   - Grid wraps a rectangular [][]uint8 and is immutable once built.
//   - Fixed-order neighbour queries (orthogonal, diagonal, all eight).
//   - Euclidean distance between cells.
//   - Pad materialises a BLOCKED border; Reachable answers 8-connected
//     reachability with a flood fill.
//
// Coordinates:
//
//	Cell{X, Y}: X grows to the right, Y grows downwards (image rows).
//	Values[y][x] holds the raw value of Cell{x, y}.
//
// Border invariant:
//
//	Planners probe neighbours without filtering them. IsFree reports false for
//	any cell outside the grid, so every grid behaves as if surrounded by a
//	BLOCKED border. Pad makes that border explicit for callers that index
//	Values directly.
//
// Complexity:
//
//   - New, Pad:   O(W×H) time and memory.
//   - IsFree:     O(1).
//   - Reachable:  O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadValue: a value is neither Free nor Blocked.
package grid
