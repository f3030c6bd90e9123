// Package algorithms is the registry of grid search strategies.
//
// It maps user-facing names to the four search packages so that outer
// layers (the CLI, the HTTP API) can select a strategy at run time:
//
//	alg, err := algorithms.Parse("a*")
//	res, err := algorithms.Run(alg, g, start, end)
//
// Names are case-insensitive; "a*" and "aStar" both select A*.
// Weighted reports whether a strategy honors cell weights; BFS and DFS
// treat every step as cost 1.
package algorithms
