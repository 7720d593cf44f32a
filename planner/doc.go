// Package planner is the uniform front for the grid planners: a Planner
// interface satisfied by bug.Bug1, bug.Bug2 and valueiter.Planner, a Kind
// factory, and Run, the stepping loop that drives any of them.
//
// Run is where the guards the algorithms deliberately lack live:
//
//   - WithMaxSteps bounds the loop and reports ErrStepBudget, since the bug
//     planners circle forever around an obstacle enclosing the goal.
//   - WithReachabilityCheck rejects an unreachable goal before the first step.
//   - WithContext cancels between steps.
//   - WithOnStep observes (or aborts) every step, e.g. to animate it.
//
// Errors:
//
//   - ErrNilPlanner, ErrNilGrid: nil inputs.
//   - ErrUnknownKind: unrecognised planner name or Kind.
//   - ErrStartBlocked, ErrGoalBlocked: endpoint is not a Free cell.
//   - ErrOptionViolation: invalid option value.
//   - ErrStepBudget: MaxSteps exhausted before reaching the goal.
//   - ErrUnreachable: the reachability check failed.
package planner
