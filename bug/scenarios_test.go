package bug_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
)

// stepper is the subset of the navigator API the scenario helpers drive.
type stepper interface {
	Finished() bool
	NextStep() grid.Cell
}

// maxSteps bounds every scenario so a regression fails instead of hanging.
const maxSteps = 1000

// rectangleRows is an open field with a convex 5×2 block straddling the
// vertical line from (5,0) to (5,7).
var rectangleRows = []string{
	"...........",
	"...........",
	"...........",
	"...#####...",
	"...#####...",
	"...........",
	"...........",
	"...........",
}

// gapRows is a horizontal wall spanning the whole map except for (2,2).
var gapRows = []string{
	".......",
	".......",
	"##.####",
	".......",
	".......",
}

func mustRows(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows...)
	require.NoError(t, err)
	return g
}

func openGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	values := make([][]uint8, h)
	for y := range values {
		values[y] = make([]uint8, w)
		for x := range values[y] {
			values[y][x] = grid.Free
		}
	}
	g, err := grid.New(values)
	require.NoError(t, err)
	return g
}

// walk steps p until it finishes and returns every position it reported.
func walk(t *testing.T, p stepper) []grid.Cell {
	t.Helper()
	var path []grid.Cell
	for i := 0; !p.Finished(); i++ {
		require.Less(t, i, maxSteps, "planner did not finish")
		path = append(path, p.NextStep())
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
