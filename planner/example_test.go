package planner_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// ExampleRun drives each strategy across a wall with a single gap.
//
//	.......
//	.......
//	##.####
//	.......
//	.......
//
// Start (5,0), goal (5,4). The bug planners find the gap by following the
// wall; value iteration descends straight through it.
func ExampleRun() {
	g, _ := grid.FromRows(
		".......",
		".......",
		"##.####",
		".......",
		".......",
	)
	for _, k := range []planner.Kind{planner.Bug1, planner.Bug2, planner.ValueIteration} {
		p, _ := planner.New(k, g, grid.Cell{X: 5, Y: 0}, grid.Cell{X: 5, Y: 4})
		res, err := planner.Run(p, planner.WithMaxSteps(1000))
		if err != nil {
			fmt.Println(k, err)
			continue
		}
		fmt.Printf("%s: reached %v in %d moves\n", k, p.Position(), len(res.Moves())-1)
	}

	// Output:
	// bug1: reached (5,4) in 22 moves
	// bug2: reached (5,4) in 22 moves
	// value: reached (5,4) in 6 moves
}
