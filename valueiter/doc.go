// Package valueiter implements a global planner that precomputes, for every
// Free cell, the shortest 8-connected distance to the goal and then descends
// that distance field greedily.
//
// Construction:
//
//  1. Build the adjacency graph: each Free cell maps to its Free neighbours
//     in grid.Neighbors order.
//  2. Seed a FIFO worklist with the goal at distance 0; every other cell
//     starts at +Inf.
//  3. Pop a cell and relax each neighbour with cost 1 (orthogonal) or √2
//     (diagonal). A neighbour is updated and re-enqueued only when the
//     candidate strictly improves it AND is below the best distance known
//     for the start cell; paths longer than that can never be on the route.
//
// Only strictly improving, bounded relaxations are enqueued, so the sweep
// terminates; it is an SPFA-style relaxation, not a priority-queue Dijkstra.
//
// Stepping:
//
//	NextStep moves to the neighbour with the lowest propagated distance,
//	first in enumeration order on ties. If the start is unreachable the field
//	around it stays +Inf and the robot does not move.
//
// Complexity:
//
//   - New:      O(W·H) adjacency, relaxation typically O(W·H·8), worst case
//     O((W·H)²·8).
//   - NextStep: O(8).
//   - DistanceMap: O(W·H).
//
// Errors:
//
//   - ErrNilGrid: grid pointer is nil.
//   - ErrStartBlocked: start is not a Free cell.
//   - ErrGoalBlocked: goal is not a Free cell.
package valueiter
