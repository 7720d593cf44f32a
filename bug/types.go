package bug

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// State is the mode of a bug navigator.
type State int

const (
	// StraightLine follows the line towards the goal.
	StraightLine State = iota
	// Surround follows an obstacle boundary.
	Surround
	// BestSurrounded leaves the boundary from the best recorded cell (Bug1).
	BestSurrounded
)

var stateNames = [...]string{"STRAIGHT_LINE", "SURROUND", "BEST_SURROUNDED"}

// String returns the upper-case state name.
func (s State) String() string {
	if s < StraightLine || s > BestSurrounded {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// HitBudget is how many times Bug1 must stand on the hit point before it
// considers the obstacle circumnavigated. Up to three failed rotations can
// happen on the hit point before the first boundary move succeeds.
const HitBudget = 4

// orthogonalWalls pairs grid.OrthogonalNeighbors with the wall reference a
// Blocked neighbour yields.
var orthogonalWalls = [4]grid.Direction{grid.Right, grid.Left, grid.Down, grid.Up}

// notchFix pairs grid.DiagonalNeighbors with the corrective step and the
// resulting wall reference.
var notchFix = [4]struct {
	step, wall grid.Direction
}{
	{grid.Right, grid.Down}, // DownRight
	{grid.Down, grid.Left},  // DownLeft
	{grid.Left, grid.Up},    // UpLeft
	{grid.Up, grid.Right},   // UpRight
}

// turns is the boundary-following rotation table indexed by wall reference.
var turns = [4]struct {
	onMove, onBlock grid.Direction
}{
	grid.Right: {grid.Down, grid.Up},
	grid.Up:    {grid.Right, grid.Left},
	grid.Left:  {grid.Up, grid.Down},
	grid.Down:  {grid.Left, grid.Right},
}

// wallOnHit derives the wall reference for a robot at pos whose line is
// blocked. It returns the position to follow the wall from, which differs
// from pos only after a notch correction.
func wallOnHit(g *grid.Grid, pos grid.Cell) (grid.Cell, grid.Direction) {
	for i, n := range grid.OrthogonalNeighbors(pos) {
		if !g.IsFree(n) {
			return pos, orthogonalWalls[i]
		}
	}
	for i, n := range grid.DiagonalNeighbors(pos) {
		if !g.IsFree(n) {
			fix := notchFix[i]
			return fix.step.Step(pos), fix.wall
		}
	}
	// the blocked line cell is always one of the eight neighbours
	return pos, grid.Right
}

// followWall performs one boundary-following attempt from pos.
func followWall(g *grid.Grid, pos grid.Cell, wall grid.Direction) (next grid.Cell, turned grid.Direction, moved bool) {
	ahead := wall.Step(pos)
	if g.IsFree(ahead) {
		return ahead, turns[wall].onMove, true
	}
	return pos, turns[wall].onBlock, false
}

// surroundings maps boundary cells to their distance to the goal and
// remembers first-seen order for tie breaking. It lives for one Surround
// episode.
type surroundings struct {
	order []grid.Cell
	dist  map[grid.Cell]float64
}

func newSurroundings() *surroundings {
	return &surroundings{dist: make(map[grid.Cell]float64)}
}

func (s *surroundings) record(c grid.Cell, d float64) {
	if _, ok := s.dist[c]; !ok {
		s.order = append(s.order, c)
	}
	s.dist[c] = d
}

// best returns the closest recorded cell; the earliest one wins ties.
func (s *surroundings) best() (grid.Cell, bool) {
	if len(s.order) == 0 {
		return grid.Cell{}, false
	}
	best := s.order[0]
	for _, c := range s.order[1:] {
		if s.dist[c] < s.dist[best] {
			best = c
		}
	}
	return best, true
}
