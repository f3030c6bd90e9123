package grid

import (
	"fmt"
	"math"
)

// Grid is an immutable rows × cols board stored row-major.
// nodes[Index(p)] describes the cell at p. A Grid never hands out its
// backing slice, so a *Grid can be shared freely between goroutines.
type Grid struct {
	rows, cols int
	nodes      []Node
}

// New returns an open rows × cols grid: no walls, no endpoints, every
// weight DefaultWeight.
// Returns ErrEmptyGrid if rows or cols is not positive and ErrGridTooLarge
// if rows×cols overflows int.
// Complexity: O(R×C).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d rows of %d", ErrGridTooLarge, rows, cols)
	}
	nodes := make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nodes[r*cols+c] = Node{Pos: Position{Row: r, Col: c}, Weight: DefaultWeight}
		}
	}

	return &Grid{rows: rows, cols: cols, nodes: nodes}, nil
}

// Default returns an open grid with the start placed on the middle row at
// 20% of the width and the end on the same row at 80% of the width.
func Default(rows, cols int) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	start, end := DefaultEndpoints(rows, cols)
	g.nodes[g.Index(start)].IsStart = true
	g.nodes[g.Index(end)].IsEnd = true

	return g, nil
}

// DefaultEndpoints returns the start and end positions Default uses.
// On boards too narrow to separate them the end is pushed one column right
// when possible so that the two never share a cell.
func DefaultEndpoints(rows, cols int) (start, end Position) {
	mid := rows / 2
	start = Position{Row: mid, Col: cols * 2 / 10}
	end = Position{Row: mid, Col: cols * 8 / 10}
	if start == end {
		switch {
		case end.Col+1 < cols:
			end.Col++
		case mid+1 < rows:
			end.Row++
		}
	}
	return start, end
}

// FromNodes builds a Grid from a non-empty rectangular 2D slice.
// The input is deep-copied and every Node.Pos is re-stamped with its
// actual coordinates. A zero Weight is treated as DefaultWeight; a
// negative one is rejected.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadWeight.
// Complexity: O(R×C).
func FromNodes(rows [][]Node) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	nodes := make([]Node, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			n := rows[r][c]
			n.Pos = Position{Row: r, Col: c}
			switch {
			case n.Weight == 0:
				n.Weight = DefaultWeight
			case n.Weight < 0:
				return nil, fmt.Errorf("%w: %d at %s", ErrBadWeight, n.Weight, n.Pos)
			}
			nodes[r*w+c] = n
		}
	}

	return &Grid{rows: h, cols: w, nodes: nodes}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows × cols.
func (g *Grid) Size() int { return len(g.nodes) }

// Empty reports whether g is nil or has no cells.
func (g *Grid) Empty() bool {
	return g == nil || len(g.nodes) == 0
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionOf converts a row-major index back to a Position.
func (g *Grid) PositionOf(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the node at p and whether p is in bounds.
func (g *Grid) At(p Position) (Node, bool) {
	if !g.InBounds(p) {
		return Node{}, false
	}
	return g.nodes[g.Index(p)], true
}

// IsWall reports whether p is a wall. Out-of-bounds positions are walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.nodes[g.Index(p)].IsWall
}

// Weight returns the entry cost of p, or 0 when p is out of bounds.
func (g *Grid) Weight(p Position) int {
	if !g.InBounds(p) {
		return 0
	}
	return g.nodes[g.Index(p)].Weight
}

// Start returns the first node flagged as start in row-major order.
func (g *Grid) Start() (Position, bool) {
	for _, n := range g.nodes {
		if n.IsStart {
			return n.Pos, true
		}
	}
	return Position{}, false
}

// End returns the first node flagged as end in row-major order.
func (g *Grid) End() (Position, bool) {
	for _, n := range g.nodes {
		if n.IsEnd {
			return n.Pos, true
		}
	}
	return Position{}, false
}

// Nodes returns a deep copy of the board as rows of Nodes.
// Complexity: O(R×C).
func (g *Grid) Nodes() [][]Node {
	out := make([][]Node, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Node, g.cols)
		copy(out[r], g.nodes[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, node := range g.nodes {
		if node.IsWall {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds orthogonal neighbors of p in Directions
// order (down, up, right, left). Walls are included; callers filter them.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// OnBorder reports whether p lies on the outermost ring.
func (g *Grid) OnBorder(p Position) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.rows-1 || p.Col == g.cols-1
}

// Interior reports whether p lies strictly inside the outermost ring.
func (g *Grid) Interior(p Position) bool {
	return p.Row > 0 && p.Row < g.rows-1 && p.Col > 0 && p.Col < g.cols-1
}
