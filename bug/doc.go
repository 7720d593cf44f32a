// Package bug implements the Bug1 and Bug2 navigators: reactive planners for
// a point robot that only senses the cells adjacent to it and knows the
// direction of the goal.
//
// Both navigators are explicit state machines advanced one cell (or one
// rotation) per NextStep call:
//
//	StraightLine   follow the rasterised line towards the goal
//	Surround       follow the boundary of the obstacle that blocked the line
//	BestSurrounded (Bug1 only) jump to the boundary cell closest to the goal
//
// Hit detection:
//
//	When the next line cell is Blocked, the wall reference is the first
//	Blocked orthogonal neighbour in the order Right, Left, Down, Up. If all of
//	them are Free the robot sits in a diagonal notch: the first Blocked
//	diagonal (DownRight, DownLeft, UpLeft, UpRight) is made orthogonal by one
//	corrective step (right, down, left, up respectively).
//
// Boundary following:
//
//	Each step tries to move towards the wall reference. On success the
//	reference turns clockwise, on failure counter-clockwise:
//
//	  Right: ok→Down  fail→Up
//	  Up:    ok→Right fail→Left
//	  Left:  ok→Up    fail→Down
//	  Down:  ok→Left  fail→Right
//
// Bug1 records every boundary cell it enters with its distance to the goal and
// leaves from the closest one once it has been on the hit point HitBudget
// times. Bug2 leaves as soon as it steps back onto the remaining line.
//
// Neither navigator bounds its own step count: an obstacle that encloses the
// start or the goal makes them circle forever. Drive them through
// planner.Run with a step budget when that matters.
package bug
