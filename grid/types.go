package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrGridTooLarge indicates a cell count that does not fit in an int.
	ErrGridTooLarge = errors.New("grid: too many cells")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadWeight indicates a node weight below 1.
	ErrBadWeight = errors.New("grid: weight must be at least 1")
	// ErrEndpointIsWall indicates an attempt to make start or end a wall.
	ErrEndpointIsWall = errors.New("grid: start and end cannot be walls")
)

// DefaultWeight is the entry cost of a node nobody assigned a weight to.
const DefaultWeight = 1

// Default board dimensions.
const (
	DefaultRows = 30
	DefaultCols = 50
)

// Position is a 0-indexed (Row, Col) coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b are orthogonal neighbors.
func Adjacent(a, b Position) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is a unit step on the board.
type Direction struct {
	DRow, DCol int
}

// Directions lists the four moves in processing order: down, up, right, left.
// Every strategy expands neighbors in exactly this order, which fixes
// tie-breaking and therefore the visit order.
var Directions = [4]Direction{
	{DRow: 1, DCol: 0},
	{DRow: -1, DCol: 0},
	{DRow: 0, DCol: 1},
	{DRow: 0, DCol: -1},
}

// Node is a single board cell.
type Node struct {
	Pos     Position `json:"pos"`
	IsStart bool     `json:"isStart"`
	IsEnd   bool     `json:"isEnd"`
	IsWall  bool     `json:"isWall"`
	Weight  int      `json:"weight"`
}

// IsEndpoint reports whether n is the start or the end node.
func (n Node) IsEndpoint() bool {
	return n.IsStart || n.IsEnd
}
