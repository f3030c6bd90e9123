package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for malformed search input.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrStartOutOfBounds is returned when start lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start out of bounds")
	// ErrEndOutOfBounds is returned when end lies outside the grid.
	ErrEndOutOfBounds = errors.New("search: end out of bounds")
	// ErrStartIsWall is returned when start is a wall cell.
	ErrStartIsWall = errors.New("search: start is a wall")
	// ErrEndIsWall is returned when end is a wall cell.
	ErrEndIsWall = errors.New("search: end is a wall")
)

// Result is the outcome of one strategy run.
type Result struct {
	// VisitedOrder is the settle order.
	VisitedOrder []grid.Position `json:"visitedOrder"`
	// Path runs from start to end, or is empty when end is unreachable.
	Path []grid.Position `json:"path"`
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Func is the signature every strategy implements.
type Func func(g *grid.Grid, start, end grid.Position) (Result, error)

// Validate checks the preconditions shared by every strategy: a non-nil,
// non-empty grid and in-bounds, non-wall endpoints.
func Validate(g *grid.Grid, start, end grid.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Empty() {
		return grid.ErrEmptyGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrStartOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrEndOutOfBounds, end, g.Rows(), g.Cols())
	}
	if g.IsWall(start) {
		return fmt.Errorf("%w: %s", ErrStartIsWall, start)
	}
	if g.IsWall(end) {
		return fmt.Errorf("%w: %s", ErrEndIsWall, end)
	}
	return nil
}

// PathCost returns the cost of walking path on g: the sum of the weights
// of every cell entered after the first. An empty path costs 0.
func PathCost(g *grid.Grid, path []grid.Position) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += g.Weight(path[i])
	}
	return cost
}

// ValidPath reports whether path is a simple 4-adjacent route over open
// cells from start to end.
func ValidPath(g *grid.Grid, start, end grid.Position, path []grid.Position) bool {
	if len(path) == 0 || path[0] != start || path[len(path)-1] != end {
		return false
	}
	seen := make(map[grid.Position]struct{}, len(path))
	for i, p := range path {
		if g.IsWall(p) {
			return false
		}
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
		if i > 0 && !grid.Adjacent(path[i-1], p) {
			return false
		}
	}
	return true
}
