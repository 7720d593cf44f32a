package grid

// Reachable reports whether to can be reached from from by 8-connected moves
// over Free cells. Both endpoints must be Free.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid) Reachable(from, to Cell) bool {
	if !g.IsFree(from) || !g.IsFree(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := make([]bool, g.Width*g.Height)
	queue := []Cell{from}
	seen[g.index(from)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range Neighbors(u) {
			if !g.IsFree(v) || seen[g.index(v)] {
				continue
			}
			if v == to {
				return true
			}
			seen[g.index(v)] = true
			queue = append(queue, v)
		}
	}

	return false
}
