package gridgraph

// LocalMinima returns the indices, in row-major order, of every cell with no
// strictly lower neighbor. These are the leaves of the descent graph: every
// descending path ends at one of them. Flat plateaus count, since equal
// elevation is not a descent.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(k) for the k minima returned.
func (g *Grid) LocalMinima() []int {
	var minima []int

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			i := g.Index(x, y)
			lowest := true
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) && g.Elevation[g.Index(nx, ny)] < g.Elevation[i] {
					lowest = false
					break
				}
			}
			if lowest {
				minima = append(minima, i)
			}
		}
	}

	return minima
}
