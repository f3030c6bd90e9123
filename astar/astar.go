package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Heuristic is the Manhattan distance from p to end.
func Heuristic(p, end grid.Position) int {
	return grid.Manhattan(p, end)
}

// Search finds a cheapest path from start to end on g, expanding the
// frontier entry with the lowest f = g + h first.
// Returns a search precondition error for malformed input.
func Search(g *grid.Grid, start, end grid.Position) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}

	s := newSolver(g, end)
	s.init(start)
	s.run()

	return search.Result{
		VisitedOrder: s.order,
		Path:         s.trail.Path(start, end),
	}, nil
}

// solver holds per-call A* state.
type solver struct {
	g      *grid.Grid
	end    grid.Position
	gScore []int       // index → best known cost from start
	closed []bool      // index → settled
	inOpen []*openItem // index → live frontier entry, nil if none
	open   openSet
	seq    int
	trail  *search.Trail
	order  []grid.Position
}

func newSolver(g *grid.Grid, end grid.Position) *solver {
	n := g.Size()
	return &solver{
		g:      g,
		end:    end,
		gScore: make([]int, n),
		closed: make([]bool, n),
		inOpen: make([]*openItem, n),
		open:   make(openSet, 0, n),
		trail:  search.NewTrail(g),
		order:  make([]grid.Position, 0, n),
	}
}

func (s *solver) init(start grid.Position) {
	for i := range s.gScore {
		s.gScore[i] = math.MaxInt
	}
	s.gScore[s.g.Index(start)] = 0
	s.trail.Root(start)

	heap.Init(&s.open)
	s.push(start, 0)
}

// push adds a new frontier entry for p with cost g.
func (s *solver) push(p grid.Position, g int) {
	item := &openItem{pos: p, g: g, f: g + Heuristic(p, s.end), seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.inOpen[s.g.Index(p)] = item
}

func (s *solver) run() {
	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*openItem)
		u := s.g.Index(cur.pos)
		s.inOpen[u] = nil

		if s.closed[u] {
			continue
		}
		s.closed[u] = true

		if s.g.IsWall(cur.pos) {
			continue
		}
		s.order = append(s.order, cur.pos)
		if cur.pos == s.end {
			return
		}
		s.expand(cur)
	}
}

// expand relaxes the open, unsettled neighbors of cur. An improved
// neighbor already on the frontier is updated in place.
func (s *solver) expand(cur *openItem) {
	for _, nb := range s.g.Neighbors(cur.pos) {
		v := s.g.Index(nb)
		if s.closed[v] || s.g.IsWall(nb) {
			continue
		}
		tentative := cur.g + s.g.Weight(nb)
		if tentative >= s.gScore[v] {
			continue
		}
		s.gScore[v] = tentative
		s.trail.Link(nb, cur.pos)

		if item := s.inOpen[v]; item != nil {
			item.g = tentative
			item.f = tentative + Heuristic(nb, s.end)
			heap.Fix(&s.open, item.index)
			continue
		}
		s.push(nb, tentative)
	}
}
