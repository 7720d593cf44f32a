package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadValue indicates a cell value other than Free or Blocked.
	ErrBadValue = errors.New("grid: cell value must be Free or Blocked")
)

// Cell values.
const (
	// Blocked marks an obstacle cell.
	Blocked uint8 = 0
	// Free marks a traversable cell.
	Free uint8 = 255
)

// Cell is an integer grid coordinate. It is comparable and used as a map key.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is an orthogonal heading. Boundary-following planners use it as
// the side on which the wall is expected.
type Direction int

const (
	// Right is +X.
	Right Direction = iota
	// Up is -Y.
	Up
	// Left is -X.
	Left
	// Down is +Y.
	Down
)

var directionNames = [...]string{"RIGHT", "UP", "LEFT", "DOWN"}

// String returns the upper-case direction name.
func (d Direction) String() string {
	if d < Right || d > Down {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Step returns the cell one unit from c in direction d.
func (d Direction) Step(c Cell) Cell {
	switch d {
	case Right:
		return c.Add(1, 0)
	case Up:
		return c.Add(0, -1)
	case Left:
		return c.Add(-1, 0)
	default:
		return c.Add(0, 1)
	}
}

// Grid is an immutable occupancy grid.
// Width and Height define dimensions; Values[y][x] holds Free or Blocked.
type Grid struct {
	Width, Height int
	Values        [][]uint8
}
