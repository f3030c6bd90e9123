package pathfinding

import "github.com/katalvlaran/gridpath/grid"

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Algorithm string   `json:"algorithm" binding:"required"`
	Grid      []string `json:"grid" binding:"required"`
}

// SearchResponse is the outcome of one search.
type SearchResponse struct {
	RequestID    string          `json:"requestId"`
	Algorithm    string          `json:"algorithm"`
	VisitedOrder []grid.Position `json:"visitedOrder"`
	Path         []grid.Position `json:"path"`
	Found        bool            `json:"found"`
	Cost         int             `json:"cost"`
}

// MazeRequest is the body of POST /maze. Either Grid or Rows/Cols
// describes the board; zero Rows/Cols fall back to server defaults and a
// zero Seed picks a fresh one.
type MazeRequest struct {
	Rows int      `json:"rows"`
	Cols int      `json:"cols"`
	Grid []string `json:"grid"`
	Seed int64    `json:"seed"`
}

// MazeResponse returns the generated board in text form.
type MazeResponse struct {
	RequestID string   `json:"requestId"`
	Seed      int64    `json:"seed"`
	Grid      []string `json:"grid"`
}

// AlgorithmInfo describes one registered strategy.
type AlgorithmInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Weighted bool   `json:"weighted"`
}
