package astar

import "github.com/katalvlaran/gridpath/grid"

// openItem is a frontier entry. index is maintained by the heap so the
// entry can be updated in place.
type openItem struct {
	pos   grid.Position
	f, g  int
	seq   int
	index int
}

// openSet is a min-heap of *openItem ordered by (f, seq).
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
