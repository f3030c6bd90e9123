// Package dijkstra implements uniform-cost (Dijkstra) search on a weighted
// grid.Grid.
//
// Cost model:
//
//   - Entering a cell costs that cell's Weight (≥ 1). Leaving costs nothing.
//   - The start cell itself is free; the cost of a path is the sum of the
//     weights of every cell after the first (search.PathCost).
//
// Frontier:
//
//   - A binary min-heap of (cell, distance, seq) entries ordered by
//     distance, then by seq, the global insertion counter. Among equal
//     distances the earliest inserted entry wins, which is exactly what a
//     linear scan that keeps the first minimum would return.
//   - "Lazy decrease-key": an improved distance pushes a fresh entry; the
//     outdated one stays in the heap and is discarded when popped because
//     its cell is already settled.
//
// Complexity (N = rows × cols):
//
//   - Time:  O(N log N). Each cell is settled once and each of its four
//     edges may push one entry.
//   - Space: O(N) for distances, settled flags, predecessor arena and heap.
//
// Errors:
//
//   - The precondition errors of package search.
package dijkstra
