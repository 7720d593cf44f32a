// Package line rasterises straight segments between grid cells and provides
// Line, the consumable cell sequence the bug planners follow towards a goal.
//
// Trace uses 8-connected Bresenham rasterisation: the result includes both
// endpoints, consecutive cells are 8-adjacent, and exactly one cell is emitted
// per unit step along the dominant axis. Trace(b, a) is always the reverse of
// Trace(a, b); ties in the error term are resolved from the lexicographically
// smaller endpoint so that both directions rasterise the same cells.
//
// Complexity: O(max(|dx|, |dy|)) time and memory.
package line
