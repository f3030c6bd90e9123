package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun compares every strategy on one weighted board.
//
//	S 9 E
//	. . .
func ExampleRun() {
	g, _ := grid.NewBuilder(2, 3).Weight(grid.Pos(0, 1), 9).Build()
	start, end := grid.Pos(0, 0), grid.Pos(0, 2)

	for _, alg := range algorithms.All() {
		res, err := algorithms.Run(alg, g, start, end)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-8s len=%d cost=%d\n", alg, len(res.Path), search.PathCost(g, res.Path))
	}
	// Output:
	// dijkstra len=5 cost=4
	// astar    len=5 cost=4
	// bfs      len=3 cost=10
	// dfs      len=5 cost=4
}
