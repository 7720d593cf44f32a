package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for planner construction and Run.
var (
	// ErrNilPlanner is returned when Run receives a nil Planner.
	ErrNilPlanner = errors.New("planner: planner is nil")

	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrUnknownKind is returned for an unrecognised planner kind.
	ErrUnknownKind = errors.New("planner: unknown planner kind")

	// ErrStartBlocked is returned when the start is not a Free cell.
	ErrStartBlocked = errors.New("planner: start cell is not free")

	// ErrGoalBlocked is returned when the goal is not a Free cell.
	ErrGoalBlocked = errors.New("planner: goal cell is not free")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrStepBudget is returned when the goal is not reached within MaxSteps.
	ErrStepBudget = errors.New("planner: step budget exhausted")

	// ErrUnreachable is returned when the goal cannot be reached from the start.
	ErrUnreachable = errors.New("planner: goal unreachable from start")
)

// Planner is the stepping contract shared by every strategy.
type Planner interface {
	// Finished reports whether the robot stands on the goal.
	Finished() bool
	// NextStep advances one step and returns the new position.
	NextStep() grid.Cell
	// Position returns the current cell.
	Position() grid.Cell
}

// Kind selects a planning strategy.
type Kind int

const (
	// Bug1 circumnavigates obstacles and leaves from the closest point.
	Bug1 Kind = iota
	// Bug2 leaves obstacles as soon as it regains the start-goal line.
	Bug2
	// ValueIteration descends a precomputed distance field.
	ValueIteration
)

var kindNames = [...]string{"bug1", "bug2", "value"}

// String returns the short name accepted by ParseKind.
func (k Kind) String() string {
	if k < Bug1 || k > ValueIteration {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps "bug1", "bug2" or "value" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Option configures Run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*RunOptions)

// RunOptions holds parameters and callbacks for Run.
type RunOptions struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of NextStep calls.
	// A value of 0 disables the bound.
	MaxSteps int

	// OnStep is called after every step with the 1-based step number and the
	// new position. Returning an error stops Run and propagates it.
	OnStep func(step int, pos grid.Cell) error

	// reach, when set, is checked before the first step.
	reach *reachability

	// internal error recorded during option parsing
	err error
}

type reachability struct {
	grid *grid.Grid
	goal grid.Cell
}

// DefaultOptions returns RunOptions with:
//   - context.Background()
//   - no step bound (MaxSteps == 0)
//   - a no-op OnStep hook
//   - no reachability check.
func DefaultOptions() RunOptions {
	return RunOptions{
		Ctx:    context.Background(),
		OnStep: func(int, grid.Cell) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *RunOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of steps.
//
//	n > 0: at most n steps
//	n == 0: explicit no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *RunOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a per-step callback.
func WithOnStep(fn func(step int, pos grid.Cell) error) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithReachabilityCheck makes Run fail with ErrUnreachable, before the first
// step, when goal is not 8-connected to the planner's position on g.
func WithReachabilityCheck(g *grid.Grid, goal grid.Cell) Option {
	return func(o *RunOptions) {
		if g == nil {
			o.err = fmt.Errorf("%w: reachability check needs a grid", ErrOptionViolation)
			return
		}
		o.reach = &reachability{grid: g, goal: goal}
	}
}

// Result holds the outcome of Run.
//   - Path: the starting cell followed by the position after every step.
//   - Steps: number of NextStep calls.
type Result struct {
	Path  []grid.Cell
	Steps int
}

// Moves returns Path without the repeats left by steps that only rotated or
// changed state.
func (r *Result) Moves() []grid.Cell {
	out := make([]grid.Cell, 0, len(r.Path))
	for i, c := range r.Path {
		if i > 0 && c == r.Path[i-1] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Length returns the Euclidean length of the travelled route. Jumps, such as
// Bug1 leaving from its best boundary cell, count with their straight-line
// length.
func (r *Result) Length() float64 {
	var total float64
	for i := 1; i < len(r.Path); i++ {
		total += grid.Distance(r.Path[i-1], r.Path[i])
	}
	return total
}
