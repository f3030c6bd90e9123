// Package search holds the contract shared by the four grid strategies
// (bfs, dfs, dijkstra, astar): the Result type, the precondition checks
// every strategy runs first, and the predecessor Trail used to rebuild
// paths.
//
// Contract
//
//	Search(g, start, end) -> (Result, error)
//
//   - Result.VisitedOrder lists settled positions in settle order; no
//     position appears twice and walls never appear.
//   - Result.Path is empty iff end is unreachable. Otherwise it starts at
//     start, ends at end, and each consecutive pair is 4-adjacent.
//   - "No path" is not an error. Errors are reserved for malformed input:
//     ErrNilGrid, grid.ErrEmptyGrid, ErrStartOutOfBounds, ErrEndOutOfBounds,
//     ErrStartIsWall, ErrEndIsWall.
//
// Determinism
//
//	All strategies expand neighbors in grid.Directions order
//	(down, up, right, left), so identical inputs give identical outputs.
//
// Path reconstruction
//
//	Trail is an arena indexed by grid.Index: each discovered cell stores the
//	index of the cell that discovered it, the start stores none. Path walks
//	back from end, reverses, and drops the result if it does not begin at
//	start.
package search
