package bfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	g     *grid.Grid
	end   grid.Position
	queue []grid.Position
	head  int
	trail *search.Trail
	order []grid.Position
}

// Search runs breadth-first search on g from start until end is settled or
// the reachable region is exhausted.
// Returns a search precondition error for malformed input.
func Search(g *grid.Grid, start, end grid.Position) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}

	w := &walker{
		g:     g,
		end:   end,
		queue: make([]grid.Position, 0, g.Size()),
		trail: search.NewTrail(g),
		order: make([]grid.Position, 0, g.Size()),
	}

	// Seed queue with start (no parent)
	w.trail.Root(start)
	w.queue = append(w.queue, start)
	w.loop()

	return search.Result{
		VisitedOrder: w.order,
		Path:         w.trail.Path(start, end),
	}, nil
}

// loop processes the queue until it drains or end is settled.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		cur := w.dequeue()
		if w.g.IsWall(cur) {
			continue
		}
		w.order = append(w.order, cur)
		if cur == w.end {
			return
		}
		w.enqueueNeighbors(cur)
	}
}

// dequeue pops the front of the queue.
func (w *walker) dequeue() grid.Position {
	p := w.queue[w.head]
	w.head++
	return p
}

// enqueueNeighbors discovers every open, unseen neighbor of cur.
func (w *walker) enqueueNeighbors(cur grid.Position) {
	for _, nb := range w.g.Neighbors(cur) {
		if w.trail.Discovered(nb) || w.g.IsWall(nb) {
			continue
		}
		w.trail.Link(nb, cur)
		w.queue = append(w.queue, nb)
	}
}
