package grid

// Region returns every open cell reachable from p through orthogonal moves,
// in breadth-first discovery order. A wall or out-of-bounds p yields nil.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Region(p Position) []Position {
	if g.IsWall(p) {
		return nil
	}
	seen := make([]bool, len(g.nodes))
	return g.flood(g.Index(p), seen)
}

// Components finds all contiguous regions of open (non-wall) cells.
// Components are listed in row-major order of their first cell; each one
// holds its cells in breadth-first discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.nodes))
	var comps [][]Position
	for i, n := range g.nodes {
		if n.IsWall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}
	return comps
}

// Connected reports whether b is reachable from a through open cells.
func (g *Grid) Connected(a, b Position) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	for _, p := range g.Region(a) {
		if p == b {
			return true
		}
	}
	return false
}

// flood collects the open component containing index i0.
func (g *Grid) flood(i0 int, seen []bool) []Position {
	queue := []int{i0}
	seen[i0] = true
	var comp []Position

	for qi := 0; qi < len(queue); qi++ {
		u := g.PositionOf(queue[qi])
		comp = append(comp, u)
		for _, d := range Directions {
			v := u.Add(d)
			if g.IsWall(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return comp
}
