package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// lattice steps, in the order the backtracker inspects them: right, down,
// left, up.
var latticeSteps = [4]grid.Direction{{DRow: 0, DCol: 2}, {DRow: 2, DCol: 0}, {DRow: 0, DCol: -2}, {DRow: -2, DCol: 0}}

// openSteps are the single steps cleared around each endpoint.
var openSteps = [4]grid.Direction{{DRow: 0, DCol: 1}, {DRow: 1, DCol: 0}, {DRow: 0, DCol: -1}, {DRow: -1, DCol: 0}}

// Generate returns a new grid of the same size as g whose walls form a
// maze between start and end. g itself is not modified.
//
// Every cell except start and end begins as a wall with weight
// grid.DefaultWeight; the backtracker, the endpoint clearing and the
// optional extra carving then open passages. The result flags exactly
// start and end; IsStart/IsEnd flags elsewhere on g are dropped.
//
// Returns ErrNilGrid, grid.ErrEmptyGrid, ErrEndpointOutOfBounds or
// ErrBadOption.
// Time: O(R·C). Memory: O(R·C).
func Generate(g *grid.Grid, start, end grid.Position, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Empty() {
		return nil, grid.ErrEmptyGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrEndpointOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrEndpointOutOfBounds, end)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Source == nil {
		o.Source = rngFromSeed(NewSeed())
	}

	c := newCarver(g, start, end, o.Source)
	c.backtrack()
	c.clearAround(start)
	c.clearAround(end)
	if o.ExtraCarving {
		c.carveExtra()
	}

	return grid.FromNodes(c.nodes)
}

// carver owns the mutable copy of the board during one Generate call.
type carver struct {
	rows, cols int
	nodes      [][]grid.Node
	visited    [][]bool
	start, end grid.Position
	src        Source
}

func newCarver(g *grid.Grid, start, end grid.Position, src Source) *carver {
	nodes := g.Nodes()
	visited := make([][]bool, len(nodes))
	for r, row := range nodes {
		visited[r] = make([]bool, len(row))
		for c := range row {
			n := &row[c]
			n.IsStart = n.Pos == start
			n.IsEnd = n.Pos == end && !n.IsStart
			n.IsWall = !(n.Pos == start || n.Pos == end)
			n.Weight = grid.DefaultWeight
		}
	}

	return &carver{
		rows:    g.Rows(),
		cols:    g.Cols(),
		nodes:   nodes,
		visited: visited,
		start:   start,
		end:     end,
		src:     src,
	}
}

// isEndpoint reports whether p is the start or the end.
func (c *carver) isEndpoint(p grid.Position) bool {
	return p == c.start || p == c.end
}

// interior reports whether p lies strictly inside the outer ring.
func (c *carver) interior(p grid.Position) bool {
	return p.Row > 0 && p.Row < c.rows-1 && p.Col > 0 && p.Col < c.cols-1
}

func (c *carver) open(p grid.Position) {
	c.nodes[p.Row][p.Col].IsWall = false
}

// origin picks the random lattice cell the backtracker starts from. A
// board with a single interior row or column has one lattice line at
// offset 1. ok is false when the chosen cell is not interior (a board
// without interior cells).
func (c *carver) origin() (p grid.Position, ok bool) {
	latRows, latCols := (c.rows-2)/2, (c.cols-2)/2
	p = grid.Pos(2*pick(c.src, latRows)+1, 2*pick(c.src, latCols)+1)
	if c.isEndpoint(p) {
		p = grid.Pos(1, 1)
	}
	return p, c.interior(p)
}

// backtrack carves a spanning tree over the lattice with an explicit stack.
func (c *carver) backtrack() {
	first, ok := c.origin()
	if !ok {
		return
	}
	stack := []grid.Position{first}
	c.visited[first.Row][first.Col] = true
	c.open(first)

	var cand []grid.Position
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		cand = cand[:0]
		for _, d := range latticeSteps {
			nb := cur.Add(d)
			if c.interior(nb) && !c.visited[nb.Row][nb.Col] {
				cand = append(cand, nb)
			}
		}
		if len(cand) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := cand[pick(c.src, len(cand))]
		link := grid.Pos((cur.Row+next.Row)/2, (cur.Col+next.Col)/2)
		c.visited[next.Row][next.Col] = true
		if c.isEndpoint(link) || c.isEndpoint(next) {
			// endpoints are never overwritten; the branch ends here
			continue
		}
		c.open(link)
		c.open(next)
		stack = append(stack, next)
	}
}

// clearAround opens the interior cells orthogonally adjacent to p.
func (c *carver) clearAround(p grid.Position) {
	for _, d := range openSteps {
		if nb := p.Add(d); c.interior(nb) {
			c.open(nb)
		}
	}
}

// carveExtra opens floor(rows·cols/50) random interior cells. Hits on
// start or end are skipped, and the same cell may be drawn twice.
func (c *carver) carveExtra() {
	inRows, inCols := c.rows-2, c.cols-2
	if inRows <= 0 || inCols <= 0 {
		return
	}
	for i := 0; i < c.rows*c.cols/50; i++ {
		p := grid.Pos(pick(c.src, inRows)+1, pick(c.src, inCols)+1)
		if !c.isEndpoint(p) {
			c.open(p)
		}
	}
}
