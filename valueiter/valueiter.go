package valueiter

import (
	"math"

	"github.com/katalvlaran/gridnav/grid"
)

// Planner descends a precomputed distance field from start to goal.
type Planner struct {
	adj   Adjacency
	dist  map[grid.Cell]float64
	start grid.Cell
	goal  grid.Cell
	pos   grid.Cell
}

// New builds the adjacency graph of g and propagates distances from goal.
// Returns ErrNilGrid, ErrStartBlocked or ErrGoalBlocked for invalid input.
// An unreachable start is not an error: see Reachable.
func New(g *grid.Grid, start, goal grid.Cell) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsFree(start) {
		return nil, ErrStartBlocked
	}
	if !g.IsFree(goal) {
		return nil, ErrGoalBlocked
	}

	p := &Planner{
		adj:   BuildAdjacency(g),
		start: start,
		goal:  goal,
		pos:   start,
	}
	p.propagate()

	return p, nil
}

// propagate runs the FIFO relaxation sweep from the goal.
func (p *Planner) propagate() {
	p.dist = make(map[grid.Cell]float64, len(p.adj))
	for c := range p.adj {
		p.dist[c] = math.Inf(1)
	}
	p.dist[p.goal] = 0

	queue := []grid.Cell{p.goal}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := p.dist[u]
		for _, v := range p.adj[u] {
			cand := du + stepCost(u, v)
			if cand < p.dist[v] && cand < p.dist[p.start] {
				p.dist[v] = cand
				queue = append(queue, v)
			}
		}
	}
}

func stepCost(a, b grid.Cell) float64 {
	if grid.IsDiagonal(a, b) {
		return math.Sqrt2
	}
	return 1
}

// Finished reports whether the robot stands on the goal.
func (p *Planner) Finished() bool { return p.pos == p.goal }

// Position returns the robot's cell.
func (p *Planner) Position() grid.Cell { return p.pos }

// NextStep moves to the neighbour with the lowest propagated distance and
// returns the new position. It does not move when no neighbour has a finite
// distance lower than the current cell's.
func (p *Planner) NextStep() grid.Cell {
	if p.Finished() {
		return p.pos
	}
	best, bestDist := p.pos, p.dist[p.pos]
	for _, n := range p.adj[p.pos] {
		if d := p.dist[n]; d < bestDist {
			best, bestDist = n, d
		}
	}
	p.pos = best

	return p.pos
}

// Distance returns the propagated distance of c, or +Inf for Blocked,
// unreachable, or pruned cells.
func (p *Planner) Distance(c grid.Cell) float64 {
	if d, ok := p.dist[c]; ok {
		return d
	}
	return math.Inf(1)
}

// StartDistance returns the shortest distance from start to goal.
func (p *Planner) StartDistance() float64 { return p.dist[p.start] }

// Reachable reports whether the goal can be reached from the start.
func (p *Planner) Reachable() bool { return !math.IsInf(p.dist[p.start], 1) }

// Adjacency returns the read-only adjacency graph.
func (p *Planner) Adjacency() Adjacency { return p.adj }

// DistanceMap rescales every finite distance linearly into [0,255], with the
// start distance mapping to 255. Distances beyond the start distance clamp
// to 255; cells with infinite distance are omitted.
func (p *Planner) DistanceMap() map[grid.Cell]uint8 {
	anchor := p.StartDistance()
	out := make(map[grid.Cell]uint8, len(p.dist))
	for c, d := range p.dist {
		switch {
		case math.IsInf(d, 1):
			continue
		case d >= anchor:
			if d == 0 {
				out[c] = 0
			} else {
				out[c] = 255
			}
		default:
			out[c] = uint8(math.Round(d / anchor * 255))
		}
	}

	return out
}
