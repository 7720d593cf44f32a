package line

import "github.com/katalvlaran/gridnav/grid"

// Trace returns the cells of the discrete segment from a to b, inclusive of
// both endpoints.
func Trace(a, b grid.Cell) []grid.Cell {
	if less(b, a) {
		cells := bresenham(b, a)
		reverse(cells)
		return cells
	}

	return bresenham(a, b)
}

// bresenham walks from a to b with the integer error-term formulation.
func bresenham(a, b grid.Cell) []grid.Cell {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if b.X < a.X {
		sx = -1
	}
	if b.Y < a.Y {
		sy = -1
	}

	cells := make([]grid.Cell, 0, max(dx, dy)+1)
	x, y := a.X, a.Y
	e := dx - dy
	for {
		cells = append(cells, grid.Cell{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

func less(a, b grid.Cell) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func reverse(cells []grid.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
