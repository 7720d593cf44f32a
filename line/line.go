package line

import "github.com/katalvlaran/gridnav/grid"

// Line is an ordered run of cells towards a goal, consumed from the front as
// the robot advances. The zero value is an empty line.
type Line struct {
	cells []grid.Cell
}

// New returns the line a robot standing on from follows to reach to.
// The robot's own cell is not part of it: Head is the first cell to move into.
func New(from, to grid.Cell) *Line {
	return &Line{cells: Trace(from, to)[1:]}
}

// From returns the line from from to to with from itself as the head.
func From(from, to grid.Cell) *Line {
	return &Line{cells: Trace(from, to)}
}

// Len returns the number of cells left.
func (l *Line) Len() int { return len(l.cells) }

// Empty reports whether no cells are left.
func (l *Line) Empty() bool { return len(l.cells) == 0 }

// Head returns the next cell. ok is false when the line is empty.
func (l *Line) Head() (c grid.Cell, ok bool) {
	if len(l.cells) == 0 {
		return grid.Cell{}, false
	}
	return l.cells[0], true
}

// Pop removes the head.
func (l *Line) Pop() {
	if len(l.cells) > 0 {
		l.cells = l.cells[1:]
	}
}

// Contains reports whether c is still ahead on the line.
func (l *Line) Contains(c grid.Cell) bool {
	for _, v := range l.cells {
		if v == c {
			return true
		}
	}
	return false
}

// TruncateTo discards cells from the front until the head equals c.
// It reports false, leaving the line untouched, if c is not on the line.
func (l *Line) TruncateTo(c grid.Cell) bool {
	for i, v := range l.cells {
		if v == c {
			l.cells = l.cells[i:]
			return true
		}
	}
	return false
}

// Cells returns a copy of the remaining cells.
func (l *Line) Cells() []grid.Cell {
	out := make([]grid.Cell, len(l.cells))
	copy(out, l.cells)
	return out
}
