package grid

import "fmt"

// Builder is the mutable counterpart of Grid. Setters chain and record the
// first error they hit; every later setter becomes a no-op and Build
// returns that error.
//
//	g, err := grid.NewBuilder(5, 5).
//	    Start(grid.Pos(0, 0)).
//	    End(grid.Pos(4, 4)).
//	    Wall(grid.Pos(1, 1), grid.Pos(2, 2)).
//	    Weight(grid.Pos(0, 3), 5).
//	    Build()
type Builder struct {
	g   *Grid
	err error
}

// NewBuilder starts from an open rows × cols board.
func NewBuilder(rows, cols int) *Builder {
	g, err := New(rows, cols)
	return &Builder{g: g, err: err}
}

// BuilderFrom starts from a copy of an existing snapshot.
func BuilderFrom(src *Grid) *Builder {
	if src.Empty() {
		return &Builder{err: ErrEmptyGrid}
	}
	nodes := make([]Node, len(src.nodes))
	copy(nodes, src.nodes)
	return &Builder{g: &Grid{rows: src.rows, cols: src.cols, nodes: nodes}}
}

// node returns a pointer into the working board, recording ErrOutOfBounds.
func (b *Builder) node(p Position) *Node {
	if b.err != nil {
		return nil
	}
	if !b.g.InBounds(p) {
		b.err = fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, p, b.g.rows, b.g.cols)
		return nil
	}
	return &b.g.nodes[b.g.Index(p)]
}

// Wall marks every position in ps as a wall.
// Walling the start or end records ErrEndpointIsWall.
func (b *Builder) Wall(ps ...Position) *Builder {
	for _, p := range ps {
		n := b.node(p)
		if n == nil {
			return b
		}
		if n.IsEndpoint() {
			b.err = fmt.Errorf("%w: %s", ErrEndpointIsWall, p)
			return b
		}
		n.IsWall = true
	}
	return b
}

// Open clears the wall flag on every position in ps.
func (b *Builder) Open(ps ...Position) *Builder {
	for _, p := range ps {
		n := b.node(p)
		if n == nil {
			return b
		}
		n.IsWall = false
	}
	return b
}

// Weight sets the entry cost of p. Weights below 1 record ErrBadWeight.
func (b *Builder) Weight(p Position, w int) *Builder {
	n := b.node(p)
	if n == nil {
		return b
	}
	if w < 1 {
		b.err = fmt.Errorf("%w: %d at %s", ErrBadWeight, w, p)
		return b
	}
	n.Weight = w
	return b
}

// Start moves the start flag to p. The previous start is cleared, p loses
// any wall or end flag.
func (b *Builder) Start(p Position) *Builder {
	n := b.node(p)
	if n == nil {
		return b
	}
	for i := range b.g.nodes {
		b.g.nodes[i].IsStart = false
	}
	n.IsStart, n.IsEnd, n.IsWall = true, false, false
	return b
}

// End moves the end flag to p. The previous end is cleared, p loses any
// wall or start flag.
func (b *Builder) End(p Position) *Builder {
	n := b.node(p)
	if n == nil {
		return b
	}
	for i := range b.g.nodes {
		b.g.nodes[i].IsEnd = false
	}
	n.IsEnd, n.IsStart, n.IsWall = true, false, false
	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error { return b.err }

// Build returns an immutable snapshot of the current board. The Builder
// remains usable; later edits do not affect returned snapshots.
func (b *Builder) Build() (*Grid, error) {
	if b.err != nil {
		return nil, b.err
	}
	nodes := make([]Node, len(b.g.nodes))
	copy(nodes, b.g.nodes)

	return &Grid{rows: b.g.rows, cols: b.g.cols, nodes: nodes}, nil
}
