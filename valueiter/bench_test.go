package valueiter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/valueiter"
)

// BenchmarkNew measures adjacency construction plus distance propagation on
// a 200×200 map with ~20% random obstacles.
// Complexity: O(W·H·8) typical.
func BenchmarkNew(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	values := make([][]uint8, n)
	for y := range values {
		values[y] = make([]uint8, n)
		for x := range values[y] {
			if r.Intn(5) == 0 {
				values[y][x] = grid.Blocked
			} else {
				values[y][x] = grid.Free
			}
		}
	}
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: n - 1, Y: n - 1}
	values[start.Y][start.X] = grid.Free
	values[goal.Y][goal.X] = grid.Free
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := valueiter.New(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
