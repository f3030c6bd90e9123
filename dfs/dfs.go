package dfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	g     *grid.Grid
	end   grid.Position
	stack []grid.Position
	trail *search.Trail
	order []grid.Position
}

// Search performs depth-first search on g from start and stops once end is
// settled. Returns a search precondition error for malformed input.
func Search(g *grid.Grid, start, end grid.Position) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}

	w := &dfsWalker{
		g:     g,
		end:   end,
		stack: make([]grid.Position, 0, g.Size()),
		trail: search.NewTrail(g),
		order: make([]grid.Position, 0, g.Size()),
	}
	w.trail.Root(start)
	w.stack = append(w.stack, start)
	w.traverse()

	return search.Result{
		VisitedOrder: w.order,
		Path:         w.trail.Path(start, end),
	}, nil
}

// traverse pops until the stack drains or end is settled.
func (w *dfsWalker) traverse() {
	for len(w.stack) > 0 {
		n := len(w.stack) - 1
		cur := w.stack[n]
		w.stack = w.stack[:n]

		if w.g.IsWall(cur) {
			continue
		}
		w.order = append(w.order, cur)
		if cur == w.end {
			return
		}
		w.push(cur)
	}
}

// push discovers the open, unseen neighbors of cur in reverse direction
// order so that the first direction ends up on top of the stack.
func (w *dfsWalker) push(cur grid.Position) {
	nbs := w.g.Neighbors(cur)
	for i := len(nbs) - 1; i >= 0; i-- {
		nb := nbs[i]
		if w.trail.Discovered(nb) || w.g.IsWall(nb) {
			continue
		}
		w.trail.Link(nb, cur)
		w.stack = append(w.stack, nb)
	}
}
