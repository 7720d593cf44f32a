package line_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/line"
)

func c(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

// TestTrace_Known pins the rasterisation of a few hand-checked segments.
func TestTrace_Known(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Cell
		want []grid.Cell
	}{
		{"Point", c(2, 3), c(2, 3), []grid.Cell{c(2, 3)}},
		{"Horizontal", c(0, 0), c(3, 0), []grid.Cell{c(0, 0), c(1, 0), c(2, 0), c(3, 0)}},
		{"Vertical", c(1, 3), c(1, 0), []grid.Cell{c(1, 3), c(1, 2), c(1, 1), c(1, 0)}},
		{"Diagonal", c(0, 0), c(4, 4), []grid.Cell{c(0, 0), c(1, 1), c(2, 2), c(3, 3), c(4, 4)}},
		{"Shallow", c(0, 0), c(4, 2), []grid.Cell{c(0, 0), c(1, 0), c(2, 1), c(3, 1), c(4, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, line.Trace(tc.a, tc.b))
		})
	}
}

// TestTrace_Properties checks endpoints, 8-adjacency, dominant-axis length,
// monotonicity, and that reversing the arguments reverses the sequence.
func TestTrace_Properties(t *testing.T) {
	ends := []grid.Cell{c(0, 0), c(7, 3), c(-4, 5), c(2, -6), c(-3, -3), c(5, 5), c(1, 9)}
	for _, a := range ends {
		for _, b := range ends {
			fwd := line.Trace(a, b)
			back := line.Trace(b, a)

			require.Equal(t, a, fwd[0])
			require.Equal(t, b, fwd[len(fwd)-1])
			dx, dy := b.X-a.X, b.Y-a.Y
			require.Len(t, fwd, max(abs(dx), abs(dy))+1, "%v->%v", a, b)

			for i := 1; i < len(fwd); i++ {
				stepX, stepY := fwd[i].X-fwd[i-1].X, fwd[i].Y-fwd[i-1].Y
				require.LessOrEqual(t, abs(stepX), 1)
				require.LessOrEqual(t, abs(stepY), 1)
				require.True(t, stepX*sign(dx) >= 0 && stepY*sign(dy) >= 0, "monotonic %v->%v", a, b)
			}

			for i := range back {
				require.Equal(t, fwd[len(fwd)-1-i], back[i], "%v<->%v", a, b)
			}
		}
	}
}

// TestLine_Consume covers New, Head, Pop, and emptiness.
func TestLine_Consume(t *testing.T) {
	l := line.New(c(0, 0), c(2, 2))
	require.Equal(t, 2, l.Len())

	h, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, c(1, 1), h, "robot's own cell is skipped")

	l.Pop()
	l.Pop()
	assert.True(t, l.Empty())
	_, ok = l.Head()
	assert.False(t, ok)
	l.Pop() // no-op on empty line
	assert.Equal(t, 0, l.Len())
}

// TestLine_From keeps the origin as head.
func TestLine_From(t *testing.T) {
	l := line.From(c(3, 1), c(3, 3))
	h, _ := l.Head()
	assert.Equal(t, c(3, 1), h)
	assert.Equal(t, []grid.Cell{c(3, 1), c(3, 2), c(3, 3)}, l.Cells())
}

// TestLine_TruncateTo verifies truncation keeps the suffix starting at the cell.
func TestLine_TruncateTo(t *testing.T) {
	l := line.New(c(0, 0), c(5, 0))

	assert.True(t, l.Contains(c(3, 0)))
	assert.False(t, l.Contains(c(0, 0)))

	require.False(t, l.TruncateTo(c(9, 9)))
	require.Equal(t, 5, l.Len(), "missing cell leaves the line intact")

	require.True(t, l.TruncateTo(c(3, 0)))
	assert.Equal(t, []grid.Cell{c(3, 0), c(4, 0), c(5, 0)}, l.Cells())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
