// Package astar implements A* search on a weighted grid.Grid with the
// Manhattan distance heuristic.
//
// Relaxation is the same as in package dijkstra: entering a cell costs its
// Weight. Selection orders the frontier by f = g + h, where g is the cost
// accumulated from start and h = |Δrow| + |Δcol| to end.
//
// Admissibility:
//
//	Every step costs at least 1 and moves one row or one column, so h
//	never exceeds the true remaining cost. h is also consistent, which
//	means A* returns a cheapest path and never settles a cell Dijkstra
//	would not also settle on the same input.
//
// Frontier:
//
//	An indexed binary heap with one entry per open cell. A cheaper g for a
//	cell already on the frontier updates that entry in place (decrease-key
//	via heap.Fix) and keeps its original insertion sequence. Ties on f go
//	to the earliest inserted entry.
//
// Complexity (N = rows × cols):
//
//   - Time:  O(N log N) worst case; typically far fewer settles than
//     Dijkstra because expansion is biased toward end.
//   - Space: O(N).
package astar
