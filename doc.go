// Package gridnav plans routes for a point robot over a binary occupancy
// grid.
//
// What is inside:
//
//	grid/         immutable Free/Blocked grid, cells, directions, neighbours
//	line/         Bresenham line tracing and the consumable Line
//	bug/          Bug1 and Bug2 reactive navigators (local sensing only)
//	valueiter/    value-iteration distance field + greedy descent
//	planner/      Planner interface, Kind factory, Run stepping loop
//	mapio/        image maps in, rendered routes out
//	cmd/gridnav/  command-line front end
//
// Every planner is a small state machine advanced by NextStep until Finished
// reports true:
//
//	p, _ := planner.New(planner.Bug2, g, start, goal)
//	res, err := planner.Run(p, planner.WithMaxSteps(10000))
//
// The bug planners do not terminate when the goal is walled off; use a step
// budget or WithReachabilityCheck when maps are not trusted.
//
// Quick ASCII example:
//
//	S . . . .
//	. # # # .
//	. . . . G
//
// Bug2 heads for G, hits the block, walks its boundary and resumes the line
// once it stands on it again.
package gridnav
