package valueiter

import (
	"errors"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("valueiter: grid is nil")

	// ErrStartBlocked indicates the start cell is Blocked or outside the grid.
	ErrStartBlocked = errors.New("valueiter: start cell is not free")

	// ErrGoalBlocked indicates the goal cell is Blocked or outside the grid.
	ErrGoalBlocked = errors.New("valueiter: goal cell is not free")
)

// Adjacency maps every Free cell to its Free 8-neighbours. It is read-only
// once built.
type Adjacency map[grid.Cell][]grid.Cell

// BuildAdjacency builds the 8-connected adjacency graph over every Free cell
// of g. Neighbour lists follow grid.Neighbors order.
// Complexity: O(W·H·8) time, O(W·H·8) memory.
func BuildAdjacency(g *grid.Grid) Adjacency {
	adj := make(Adjacency, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if !g.IsFree(c) {
				continue
			}
			nbrs := make([]grid.Cell, 0, 8)
			for _, n := range grid.Neighbors(c) {
				if g.IsFree(n) {
					nbrs = append(nbrs, n)
				}
			}
			adj[c] = nbrs
		}
	}

	return adj
}
