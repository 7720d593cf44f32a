package grid

import (
	"math"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of Free and
// Blocked values. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadValue for any value
// other than Free or Blocked.
// Complexity: O(W×H) time and memory.
func New(values [][]uint8) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v != Free && v != Blocked {
				return nil, ErrBadValue
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]uint8, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]uint8, w)
		copy(cells[y], values[y])
	}

	return &Grid{Width: w, Height: h, Values: cells}, nil
}

// FromRows builds a Grid from text rows: '#' is Blocked, any other byte is
// Free. Handy for tests and small hand-drawn maps.
//
//	g, _ := grid.FromRows(
//		"#####",
//		"#...#",
//		"#####",
//	)
func FromRows(rows ...string) (*Grid, error) {
	values := make([][]uint8, len(rows))
	for y, row := range rows {
		values[y] = make([]uint8, len(row))
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				values[y][x] = Blocked
			} else {
				values[y][x] = Free
			}
		}
	}

	return New(values)
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsFree reports whether c is traversable. Cells outside the grid are
// treated as Blocked.
// Complexity: O(1).
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.Values[c.Y][c.X] == Free
}

// OrthogonalNeighbors returns the four orthogonal neighbours of c in the
// fixed order Right, Left, Down, Up. No bounds filtering is applied.
func OrthogonalNeighbors(c Cell) [4]Cell {
	return [4]Cell{c.Add(1, 0), c.Add(-1, 0), c.Add(0, 1), c.Add(0, -1)}
}

// DiagonalNeighbors returns the four diagonal neighbours of c in the fixed
// order DownRight, DownLeft, UpLeft, UpRight. No bounds filtering is applied.
func DiagonalNeighbors(c Cell) [4]Cell {
	return [4]Cell{c.Add(1, 1), c.Add(-1, 1), c.Add(-1, -1), c.Add(1, -1)}
}

// Neighbors returns all eight neighbours of c: the orthogonal ones first,
// then the diagonal ones, each group in its fixed order.
func Neighbors(c Cell) [8]Cell {
	o, d := OrthogonalNeighbors(c), DiagonalNeighbors(c)
	return [8]Cell{o[0], o[1], o[2], o[3], d[0], d[1], d[2], d[3]}
}

// IsDiagonal reports whether a and b differ in both coordinates.
func IsDiagonal(a, b Cell) bool {
	return a.X != b.X && a.Y != b.Y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Pad returns a new grid surrounded by a one-cell Blocked border.
// Cell{x, y} of g becomes Cell{x+1, y+1} of the result.
// Complexity: O(W×H) time and memory.
func (g *Grid) Pad() *Grid {
	w, h := g.Width+2, g.Height+2
	cells := make([][]uint8, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]uint8, w)
		if y == 0 || y == h-1 {
			continue
		}
		copy(cells[y][1:w-1], g.Values[y-1])
	}

	return &Grid{Width: w, Height: h, Values: cells}
}

// String renders the grid with '#' for Blocked and '.' for Free cells,
// one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Values[y][x] == Free {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}
