// Package grid models the rectangular board that every search strategy and
// the maze generator read from.
//
// What:
//
//   - Grid is an immutable, row-major snapshot of Nodes (rows × cols).
//   - Each Node carries its Position, start/end/wall flags and an entry
//     Weight (the cost of stepping onto it, always ≥ 1).
//   - Neighbors enumerates orthogonal neighbors in the fixed order
//     down, up, right, left. Search output depends on this order.
//   - Builder is the mutable side: chain setters, then Build a snapshot.
//   - Region and Components report open (non-wall) connectivity.
//
// Why:
//
//   - Strategies must never observe a board that changes under them, so a
//     Grid never exposes its backing slice; accessors return copies.
//   - A flat index row*cols+col lets strategies keep their working sets in
//     plain slices instead of maps keyed by formatted strings.
//
// Complexity:
//
//   - At, InBounds, Index, PositionOf, Neighbors: O(1).
//   - New, FromNodes, Nodes, Builder.Build:        O(R×C).
//   - Region, Components:                          O(R×C), Memory O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:       zero rows or zero columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrOutOfBounds:     a position outside [0,rows)×[0,cols).
//   - ErrBadWeight:       a weight below 1.
//   - ErrEndpointIsWall:  a wall painted over start/end, or vice versa.
package grid
