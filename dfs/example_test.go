package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch shows DFS hugging the left column before turning right.
func ExampleSearch() {
	g, _ := grid.New(3, 3)
	res, _ := dfs.Search(g, grid.Pos(0, 0), grid.Pos(2, 2))
	fmt.Println(res.Path)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
