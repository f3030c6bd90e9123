package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Search computes the cheapest path from start to end on g, where entering
// a cell costs its weight. Cells are settled in non-decreasing distance
// order and the search stops once end is settled.
//
// Returns a search precondition error for malformed input. An unreachable
// end yields an empty Path and the full reachable region in VisitedOrder.
func Search(g *grid.Grid, start, end grid.Position) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}

	r := newRunner(g, end)
	r.init(start)
	r.process()

	return search.Result{
		VisitedOrder: r.order,
		Path:         r.trail.Path(start, end),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid    // input grid; read-only
	end     grid.Position // stop condition
	dist    []int         // index → best known distance from start
	settled []bool        // index → distance finalized
	trail   *search.Trail // predecessor arena
	pq      nodePQ        // lazy min-heap of candidates
	seq     int           // next insertion sequence number
	order   []grid.Position
}

func newRunner(g *grid.Grid, end grid.Position) *runner {
	n := g.Size()
	return &runner{
		g:       g,
		end:     end,
		dist:    make([]int, n),
		settled: make([]bool, n),
		trail:   search.NewTrail(g),
		pq:      make(nodePQ, 0, n),
		order:   make([]grid.Position, 0, n),
	}
}

// init sets every distance to +∞ except start, and seeds the heap.
func (r *runner) init(start grid.Position) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	r.dist[r.g.Index(start)] = 0
	r.trail.Root(start)

	heap.Init(&r.pq)
	r.push(start, 0)
}

// push inserts a candidate stamped with the next sequence number.
func (r *runner) push(p grid.Position, d int) {
	heap.Push(&r.pq, nodeItem{pos: p, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly settles the closest candidate until end is settled or
// the heap drains.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := r.g.Index(item.pos)

		// stale entry from an earlier relaxation
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		if r.g.IsWall(item.pos) {
			continue
		}
		r.order = append(r.order, item.pos)
		if item.pos == r.end {
			return
		}
		r.relax(item)
	}
}

// relax tries to improve each open, unsettled neighbor of item.
// Only a strictly shorter distance updates the neighbor.
func (r *runner) relax(item nodeItem) {
	for _, nb := range r.g.Neighbors(item.pos) {
		v := r.g.Index(nb)
		if r.settled[v] || r.g.IsWall(nb) {
			continue
		}
		newDist := item.dist + r.g.Weight(nb)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.trail.Link(nb, item.pos)
		r.push(nb, newDist)
	}
}
