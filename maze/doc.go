// Package maze rewrites the wall layout of a grid.Grid into a maze.
//
// Generate runs a randomized recursive backtracker on the odd-offset
// lattice of the board: lattice cells sit at odd (row, col) pairs and are
// joined by clearing the single cell between two of them, so parallel
// corridors are always separated by a one-cell wall. The result is a
// perfect maze, then loosened:
//
//   - the interior cells around start and end are cleared, so both always
//     have an open neighbor;
//   - floor(rows·cols/50) random interior cells are cleared to add loops
//     (disable with WithExtraCarving(false)).
//
// The outermost ring of the board is never carved. Start and end keep
// their flags and stay open. Every weight is reset to grid.DefaultWeight.
//
// Randomness is injected, never global:
//
//	g2, err := maze.Generate(g, start, end, maze.WithSeed(42))
//
// The same seed (or the same Source state) always yields the same layout.
// A *rand.Rand is not safe for concurrent use; give every goroutine its
// own Source.
package maze
