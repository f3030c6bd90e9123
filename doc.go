// Package gridpath is a playground for path finding on 2D weighted grids:
// four interchangeable search strategies, a maze generator and the small
// text and HTTP surfaces around them.
//
// 🚀 What is gridpath?
//
//	A deterministic, allocation-aware library that brings together:
//		• Grid model: immutable snapshots, a chaining Builder, regions
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, A* (Manhattan heuristic)
//		• Mazes: recursive backtracking with seeded randomness
//		• Text boards: parse, format and render search results
//		• Service: gin-based JSON API and the gridpath command
//
// Every strategy shares one signature and one result shape:
//
//	res, err := astar.Search(g, start, end)
//	res.VisitedOrder // cells in the order they were settled
//	res.Path         // start … end, empty when unreachable
//
// Movement is orthogonal only. Neighbors are always examined in the order
// down, up, right, left, and every tie is broken by insertion order, so a
// given board, start and end always produce the same output.
//
// Packages:
//
//	grid/       — Grid, Builder, Position, Node, regions
//	search/     — shared Result, preconditions, predecessor trail
//	bfs/ dfs/   — unweighted traversals
//	dijkstra/   — uniform-cost search
//	astar/      — heuristic search
//	maze/       — maze generation
//	algorithms/ — name → strategy registry
//	gridtext/   — text board format
//	config/     — environment configuration
//	api/        — HTTP API
//
// Quick ASCII example:
//
//	S 9 E
//	. . .
//
//	Dijkstra and A* step around the weight-9 cell (cost 4);
//	BFS walks straight through it (cost 10).
//
//	go get github.com/katalvlaran/gridpath
package gridpath
