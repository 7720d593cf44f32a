package bug

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/line"
)

// Bug1 circumnavigates every obstacle it hits and leaves it from the
// boundary cell closest to the goal.
type Bug1 struct {
	grid  *grid.Grid
	goal  grid.Cell
	pos   grid.Cell
	state State
	line  *line.Line

	wall     grid.Direction
	hit      grid.Cell
	timesHit int
	around   *surroundings
}

// NewBug1 returns a Bug1 navigator standing on start. The grid is only read.
func NewBug1(g *grid.Grid, start, goal grid.Cell) *Bug1 {
	return &Bug1{
		grid:  g,
		goal:  goal,
		pos:   start,
		state: StraightLine,
		line:  line.New(start, goal),
	}
}

// Finished reports whether the robot stands on the goal.
func (b *Bug1) Finished() bool { return b.pos == b.goal }

// Position returns the robot's cell.
func (b *Bug1) Position() grid.Cell { return b.pos }

// State returns the current mode.
func (b *Bug1) State() State { return b.state }

// Wall returns the wall reference used while surrounding.
func (b *Bug1) Wall() grid.Direction { return b.wall }

// HitPoint returns where the last obstacle was hit.
func (b *Bug1) HitPoint() grid.Cell { return b.hit }

// Line returns the remaining straight-line cells.
func (b *Bug1) Line() []grid.Cell { return b.line.Cells() }

// NextStep advances the state machine once and returns the new position.
// On the goal it is a no-op.
func (b *Bug1) NextStep() grid.Cell {
	if b.Finished() {
		return b.pos
	}
	switch b.state {
	case StraightLine:
		b.straight()
	case Surround:
		b.surround()
	case BestSurrounded:
		b.leave()
	}

	return b.pos
}

func (b *Bug1) straight() {
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
	b.timesHit = HitBudget
	b.around = newSurroundings()
	b.state = Surround
}

func (b *Bug1) surround() {
	var moved bool
	b.pos, b.wall, moved = followWall(b.grid, b.pos, b.wall)
	if moved {
		b.around.record(b.pos, grid.Distance(b.pos, b.goal))
	}
	if b.pos == b.hit {
		b.timesHit--
		if b.timesHit == 0 {
			b.state = BestSurrounded
		}
	}
}

func (b *Bug1) leave() {
	if best, ok := b.around.best(); ok {
		b.pos = best
	}
	b.line = line.From(b.pos, b.goal)
	b.around = nil
	b.state = StraightLine
}
