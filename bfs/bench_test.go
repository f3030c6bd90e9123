package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_Open measures BFS corner to corner on an open 100×100 board.
func BenchmarkSearch_Open(b *testing.B) {
	g, _ := grid.New(100, 100)
	start, end := grid.Pos(0, 0), grid.Pos(99, 99)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, end)
	}
}
