package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownAlgorithm is returned for names that match no strategy.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Algorithm names a search strategy.
type Algorithm string

// Supported strategies.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

type entry struct {
	title    string
	weighted bool
	fn       search.Func
}

var registry = map[Algorithm]entry{
	BFS:      {"Breadth-First Search", false, bfs.Search},
	DFS:      {"Depth-First Search", false, dfs.Search},
	Dijkstra: {"Dijkstra's Algorithm", true, dijkstra.Search},
	AStar:    {"A* Search", true, astar.Search},
}

// All returns every strategy in a stable order.
func All() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, DFS}
}

// Parse resolves a user-supplied name.
func Parse(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "a*", "a-star", "a_star":
		key = string(AStar)
	}
	a := Algorithm(key)
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// String returns the canonical name.
func (a Algorithm) String() string { return string(a) }

// Title returns a human-readable name, or the raw name if unknown.
func (a Algorithm) Title() string {
	if e, ok := registry[a]; ok {
		return e.title
	}
	return string(a)
}

// Weighted reports whether a honors cell weights.
func (a Algorithm) Weighted() bool {
	return registry[a].weighted
}

// Func returns the search function behind a.
func (a Algorithm) Func() (search.Func, error) {
	e, ok := registry[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	return e.fn, nil
}

// Run executes a on g from start to end.
func Run(a Algorithm, g *grid.Grid, start, end grid.Position) (search.Result, error) {
	fn, err := a.Func()
	if err != nil {
		return search.Result{}, err
	}
	return fn(g, start, end)
}
