package gridgraph

// LowerNeighbors returns the indices of the cells adjacent to idx whose
// elevation is strictly lower, i.e. the cells one can ski to from idx.
// Order is fixed: left, right, top, bottom, then (Conn8 only) the diagonals
// top-left, top-right, bottom-left, bottom-right. Directions that fall off the
// map are omitted.
//
// The result is empty for a local minimum and nil for an out-of-range idx.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) LowerNeighbors(idx int) []int {
	if idx < 0 || idx >= g.Size() {
		return nil
	}
	x, y := g.Coordinate(idx)
	elevation := g.Elevation[idx]

	result := make([]int, 0, len(g.offsets))
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.Index(nx, ny)
		if g.Elevation[n] < elevation {
			result = append(result, n)
		}
	}

	return result
}
