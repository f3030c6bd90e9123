// Package dfs implements iterative depth-first search over a grid.Grid.
//
// DFS settles cells in LIFO order and returns the first route it finds to
// end. The route is a simple path (every cell gets its predecessor once)
// but it is not guaranteed to be the shortest one.
//
// Determinism:
//
//	Neighbors are generated in grid.Directions order (down, up, right,
//	left) and pushed in reverse, so they come back off the stack in the
//	original order. Exploration therefore always dives "down" first.
//
// Complexity:
//
//   - Time:   O(N) for N = rows × cols.
//   - Memory: O(N) for the explicit stack and predecessor arena.
//
// Errors:
//
//   - The precondition errors of package search.
//   - An unreachable end yields an empty Path, not an error.
package dfs
