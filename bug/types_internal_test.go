package bug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
)

func mustRows(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows...)
	require.NoError(t, err)
	return g
}

// TestWallOnHit_Orthogonal checks the Right, Left, Down, Up probe order.
func TestWallOnHit_Orthogonal(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want grid.Direction
	}{
		{"RightFirst", []string{"...", "..#", "..."}, grid.Right},
		{"LeftBeforeUp", []string{".#.", "#..", "..."}, grid.Left},
		{"DownBeforeUp", []string{".#.", "...", ".#."}, grid.Down},
		{"UpOnly", []string{".#.", "...", "..."}, grid.Up},
	}
	center := grid.Cell{X: 1, Y: 1}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, wall := wallOnHit(mustRows(t, tc.rows...), center)
			assert.Equal(t, center, pos, "no correction with an orthogonal wall")
			assert.Equal(t, tc.want, wall)
		})
	}
}

// TestWallOnHit_Notch checks the corrective step for each diagonal notch.
func TestWallOnHit_Notch(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		wantPos grid.Cell
		want    grid.Direction
	}{
		{"DownRight", []string{"...", "...", "..#"}, grid.Cell{X: 2, Y: 1}, grid.Down},
		{"DownLeft", []string{"...", "...", "#.."}, grid.Cell{X: 1, Y: 2}, grid.Left},
		{"UpLeft", []string{"#..", "...", "..."}, grid.Cell{X: 0, Y: 1}, grid.Up},
		{"UpRight", []string{"..#", "...", "..."}, grid.Cell{X: 1, Y: 0}, grid.Right},
		{"DownRightWins", []string{"#.#", "...", "#.#"}, grid.Cell{X: 2, Y: 1}, grid.Down},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustRows(t, tc.rows...)
			pos, wall := wallOnHit(g, grid.Cell{X: 1, Y: 1})
			assert.Equal(t, tc.wantPos, pos)
			assert.Equal(t, tc.want, wall)
			assert.False(t, g.IsFree(wall.Step(pos)), "wall reference must face a Blocked cell")
		})
	}
}

// TestFollowWall pins the rotation table for both outcomes of every heading.
func TestFollowWall(t *testing.T) {
	open := mustRows(t, "...", "...", "...")
	closed := mustRows(t, "###", "#.#", "###")
	center := grid.Cell{X: 1, Y: 1}

	cases := []struct {
		wall          grid.Direction
		onMove, onHit grid.Direction
	}{
		{grid.Right, grid.Down, grid.Up},
		{grid.Up, grid.Right, grid.Left},
		{grid.Left, grid.Up, grid.Down},
		{grid.Down, grid.Left, grid.Right},
	}
	for _, tc := range cases {
		t.Run(tc.wall.String(), func(t *testing.T) {
			next, turned, moved := followWall(open, center, tc.wall)
			require.True(t, moved)
			assert.Equal(t, tc.wall.Step(center), next)
			assert.Equal(t, tc.onMove, turned)

			next, turned, moved = followWall(closed, center, tc.wall)
			require.False(t, moved)
			assert.Equal(t, center, next)
			assert.Equal(t, tc.onHit, turned)
		})
	}
}

// TestSurroundings_Best verifies minimum selection with first-seen tie breaking.
func TestSurroundings_Best(t *testing.T) {
	s := newSurroundings()
	_, ok := s.best()
	require.False(t, ok)

	s.record(grid.Cell{X: 0, Y: 0}, 3)
	s.record(grid.Cell{X: 1, Y: 0}, 2)
	s.record(grid.Cell{X: 2, Y: 0}, 2)
	s.record(grid.Cell{X: 1, Y: 0}, 2) // revisit keeps its original slot

	best, ok := s.best()
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 1, Y: 0}, best)
	assert.Len(t, s.order, 3)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "STRAIGHT_LINE", StraightLine.String())
	assert.Equal(t, "BEST_SURROUNDED", BestSurrounded.String())
	assert.Equal(t, "State(7)", State(7).String())
}
