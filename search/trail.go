package search

import "github.com/katalvlaran/gridpath/grid"

// none marks an arena slot without a predecessor.
const none = -1

// Trail is a predecessor table keyed by grid.Index. It owns nothing; each
// slot is a back-reference into the same arena.
type Trail struct {
	g          *grid.Grid
	prev       []int
	discovered []bool
}

// NewTrail allocates an empty trail sized for g.
func NewTrail(g *grid.Grid) *Trail {
	n := g.Size()
	prev := make([]int, n)
	for i := range prev {
		prev[i] = none
	}
	return &Trail{g: g, prev: prev, discovered: make([]bool, n)}
}

// Root marks p as discovered with no predecessor.
func (t *Trail) Root(p grid.Position) {
	i := t.g.Index(p)
	t.discovered[i] = true
	t.prev[i] = none
}

// Link records that p was reached from `from`, marking p discovered.
// Later calls overwrite earlier ones; strategies that must not re-parent a
// node check Discovered first.
func (t *Trail) Link(p, from grid.Position) {
	i := t.g.Index(p)
	t.discovered[i] = true
	t.prev[i] = t.g.Index(from)
}

// Discovered reports whether p has been rooted or linked.
func (t *Trail) Discovered(p grid.Position) bool {
	return t.discovered[t.g.Index(p)]
}

// Parent returns the predecessor of p, if any.
func (t *Trail) Parent(p grid.Position) (grid.Position, bool) {
	j := t.prev[t.g.Index(p)]
	if j == none {
		return grid.Position{}, false
	}
	return t.g.PositionOf(j), true
}

// Path walks back from end to the first cell without a predecessor and
// returns the reversed sequence. It returns nil when end was never
// discovered or when the walk does not terminate at start.
func (t *Trail) Path(start, end grid.Position) []grid.Position {
	i := t.g.Index(end)
	if !t.discovered[i] {
		return nil
	}
	var path []grid.Position
	for steps := 0; i != none; steps++ {
		if steps > len(t.prev) {
			// cycle in the table; cannot happen when strategies link only
			// undiscovered or strictly improved cells
			return nil
		}
		path = append(path, t.g.PositionOf(i))
		i = t.prev[i]
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	if path[0] != start {
		return nil
	}
	return path
}
