package bug

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/line"
)

// Bug2 follows an obstacle boundary only until it steps back onto the
// original line, then resumes along that same line.
type Bug2 struct {
	grid  *grid.Grid
	goal  grid.Cell
	pos   grid.Cell
	state State
	line  *line.Line

	wall    grid.Direction
	hit     grid.Cell
	leftHit bool
}

// NewBug2 returns a Bug2 navigator standing on start. The grid is only read.
func NewBug2(g *grid.Grid, start, goal grid.Cell) *Bug2 {
	return &Bug2{
		grid:  g,
		goal:  goal,
		pos:   start,
		state: StraightLine,
		line:  line.New(start, goal),
	}
}

// Finished reports whether the robot stands on the goal.
func (b *Bug2) Finished() bool { return b.pos == b.goal }

// Position returns the robot's cell.
func (b *Bug2) Position() grid.Cell { return b.pos }

// State returns the current mode.
func (b *Bug2) State() State { return b.state }

// Wall returns the wall reference used while surrounding.
func (b *Bug2) Wall() grid.Direction { return b.wall }

// HitPoint returns where the last obstacle was hit.
func (b *Bug2) HitPoint() grid.Cell { return b.hit }

// Line returns the remaining straight-line cells.
func (b *Bug2) Line() []grid.Cell { return b.line.Cells() }

// NextStep advances the state machine once and returns the new position.
// On the goal it is a no-op.
func (b *Bug2) NextStep() grid.Cell {
	if b.Finished() {
		return b.pos
	}
	switch b.state {
	case StraightLine:
		b.straight()
	case Surround:
		b.surround()
	}

	return b.pos
}

func (b *Bug2) straight() {
	head, ok := b.line.Head()
	if !ok {
		b.line = line.New(b.pos, b.goal)
		head, _ = b.line.Head()
	}
	if b.grid.IsFree(head) {
		b.pos = head
		b.line.Pop()
		return
	}

	b.pos, b.wall = wallOnHit(b.grid, b.pos)
	b.hit = b.pos
	b.leftHit = false
	b.state = Surround
}

func (b *Bug2) surround() {
	var moved bool
	b.pos, b.wall, moved = followWall(b.grid, b.pos, b.wall)
	if moved {
		b.leftHit = true
	}
	if b.leftHit && b.line.TruncateTo(b.pos) {
		b.state = StraightLine
	}
}
