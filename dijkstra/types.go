package dijkstra

import "github.com/katalvlaran/gridpath/grid"

// nodeItem is a frontier candidate: a cell, its tentative distance from
// start, and the order in which it was inserted.
type nodeItem struct {
	pos  grid.Position
	dist int
	seq  int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
