package planner

import (
	"fmt"

	"github.com/katalvlaran/gridnav/bug"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/valueiter"
)

// New constructs the planner selected by kind, standing on start.
// Returns ErrNilGrid, ErrStartBlocked, ErrGoalBlocked or ErrUnknownKind.
func New(kind Kind, g *grid.Grid, start, goal grid.Cell) (Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsFree(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.IsFree(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	switch kind {
	case Bug1:
		return bug.NewBug1(g, start, goal), nil
	case Bug2:
		return bug.NewBug2(g, start, goal), nil
	case ValueIteration:
		p, err := valueiter.New(g, start, goal)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// Run steps p until it finishes, applying any number of functional Options.
// Returns ErrNilPlanner, ErrOptionViolation, ErrUnreachable, ErrStepBudget,
// the context error on cancellation, or any OnStep error. The Result is
// returned alongside budget, cancellation and hook errors so the partial
// route can still be inspected.
func Run(p Planner, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilPlanner
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.reach != nil && !o.reach.grid.Reachable(p.Position(), o.reach.goal) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnreachable, p.Position(), o.reach.goal)
	}

	res := &Result{Path: []grid.Cell{p.Position()}}
	for !p.Finished() {
		// cancellation check (once per step)
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		if o.MaxSteps > 0 && res.Steps >= o.MaxSteps {
			return res, fmt.Errorf("%w: %d steps", ErrStepBudget, o.MaxSteps)
		}

		pos := p.NextStep()
		res.Steps++
		res.Path = append(res.Path, pos)
		if err := o.OnStep(res.Steps, pos); err != nil {
			return res, err
		}
	}

	return res, nil
}
