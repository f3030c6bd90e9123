// Package bfs provides breadth-first search over a grid.Grid, returning the
// settle order and the fewest-steps path between two cells.
//
// What
//
//   - Explore cells in non-decreasing step count from start.
//   - Node weights are ignored: every move costs one step.
//   - Stop as soon as end is settled.
//
// Determinism
//
//	Neighbors are enqueued in grid.Directions order (down, up, right,
//	left), so the visit sequence is fully reproducible.
//
// Discovery at enqueue time
//
//	A cell is marked discovered, and its predecessor fixed, when it is
//	enqueued rather than when it is dequeued. Each cell therefore enters
//	the queue at most once and the first time end is dequeued its
//	predecessor chain has the minimum number of edges.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(N)   (queue, discovered flags, predecessor arena)
//
// Errors
//
//	The precondition errors of package search: ErrNilGrid,
//	grid.ErrEmptyGrid, ErrStartOutOfBounds, ErrEndOutOfBounds,
//	ErrStartIsWall, ErrEndIsWall. An unreachable end is not an error.
package bfs
