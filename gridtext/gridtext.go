package gridtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for text boards.
var (
	// ErrBadCell is returned for a byte outside the cell alphabet.
	ErrBadCell = errors.New("gridtext: bad cell")

	// ErrWeightTooLarge is returned when a weight has no single-byte form.
	ErrWeightTooLarge = errors.New("gridtext: weight too large for text form")

	// ErrMissingStart / ErrMissingEnd are returned by Endpoints when no
	// cell carries the flag.
	ErrMissingStart = errors.New("gridtext: board has no start")
	ErrMissingEnd   = errors.New("gridtext: board has no end")

	// ErrDuplicateStart / ErrDuplicateEnd are returned by Endpoints when
	// more than one cell carries the flag.
	ErrDuplicateStart = errors.New("gridtext: board has more than one start")
	ErrDuplicateEnd   = errors.New("gridtext: board has more than one end")
)

// MaxWeight is the largest weight with a text form ('z').
const MaxWeight = 35

// Cell bytes.
const (
	Open    = '.'
	Wall    = '#'
	Start   = 'S'
	End     = 'E'
	Visited = 'o'
	OnPath  = '*'
)

// Parse reads a board from r.
func Parse(r io.Reader) (*grid.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridtext: read: %w", err)
	}
	return ParseLines(lines)
}

// ParseString reads a board from s.
func ParseString(s string) (*grid.Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines reads a board given as one string per line. Line numbers in
// errors count every entry of lines, skipped ones included.
func ParseLines(lines []string) (*grid.Grid, error) {
	var rows [][]grid.Node
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == ';' {
			continue
		}
		row := make([]grid.Node, len(line))
		for c := 0; c < len(line); c++ {
			n, err := decode(line[c])
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", err, line[c], i+1, c+1)
			}
			row[c] = n
		}
		rows = append(rows, row)
	}
	return grid.FromNodes(rows)
}

func decode(b byte) (grid.Node, error) {
	n := grid.Node{Weight: grid.DefaultWeight}
	switch {
	case b == Open || b == '1':
	case b == Wall:
		n.IsWall = true
	case b == Start:
		n.IsStart = true
	case b == End:
		n.IsEnd = true
	case b >= '2' && b <= '9', b >= 'a' && b <= 'z':
		w, err := strconv.ParseInt(string(b), 36, 0)
		if err != nil {
			return n, ErrBadCell
		}
		n.Weight = int(w)
	default:
		return n, ErrBadCell
	}
	return n, nil
}

// encode returns the byte for n, or ok=false if its weight has no form.
func encode(n grid.Node) (b byte, ok bool) {
	switch {
	case n.IsStart:
		return Start, true
	case n.IsEnd:
		return End, true
	case n.IsWall:
		return Wall, true
	case n.Weight <= grid.DefaultWeight:
		return Open, true
	case n.Weight <= MaxWeight:
		return strconv.FormatInt(int64(n.Weight), 36)[0], true
	}
	return '+', false
}

// Lines writes g as one string per row.
// Returns ErrWeightTooLarge if a weight exceeds MaxWeight.
func Lines(g *grid.Grid) ([]string, error) {
	nodes := g.Nodes()
	out := make([]string, len(nodes))
	for r, row := range nodes {
		buf := make([]byte, len(row))
		for c, n := range row {
			b, ok := encode(n)
			if !ok {
				return nil, fmt.Errorf("%w: %d at %v", ErrWeightTooLarge, n.Weight, n.Pos)
			}
			buf[c] = b
		}
		out[r] = string(buf)
	}
	return out, nil
}

// Format writes g as newline-terminated rows. Parsing the output gives back
// the same board, except that start and end always read as weight 1.
func Format(g *grid.Grid) (string, error) {
	lines, err := Lines(g)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Render draws res over g: path cells become '*', other visited cells 'o'.
// Start, end and walls keep their bytes; weights with no text form show as
// '+'.
func Render(g *grid.Grid, res search.Result) string {
	mark := make(map[grid.Position]byte, len(res.VisitedOrder))
	for _, p := range res.VisitedOrder {
		mark[p] = Visited
	}
	for _, p := range res.Path {
		mark[p] = OnPath
	}

	var sb strings.Builder
	sb.Grow(g.Size() + g.Rows())
	for _, row := range g.Nodes() {
		for _, n := range row {
			b, _ := encode(n)
			if m, ok := mark[n.Pos]; ok && !n.IsEndpoint() && !n.IsWall {
				b = m
			}
			sb.WriteByte(b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Endpoints returns the unique start and end of g.
func Endpoints(g *grid.Grid) (start, end grid.Position, err error) {
	var starts, ends int
	for _, row := range g.Nodes() {
		for _, n := range row {
			if n.IsStart {
				if starts == 0 {
					start = n.Pos
				}
				starts++
			}
			if n.IsEnd {
				if ends == 0 {
					end = n.Pos
				}
				ends++
			}
		}
	}
	switch {
	case starts == 0:
		return start, end, ErrMissingStart
	case starts > 1:
		return start, end, fmt.Errorf("%w: %d found", ErrDuplicateStart, starts)
	case ends == 0:
		return start, end, ErrMissingEnd
	case ends > 1:
		return start, end, fmt.Errorf("%w: %d found", ErrDuplicateEnd, ends)
	}
	return start, end, nil
}
