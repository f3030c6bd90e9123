package pathfinding

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/api/middleware"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridtext"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// errTooLarge marks boards over the configured cell limit.
var errTooLarge = errors.New("pathfinding: board too large")

// Limits bounds what a single request may ask for.
type Limits struct {
	MaxCells    int // largest rows*cols accepted
	DefaultRows int // maze rows when the request gives none
	DefaultCols int // maze cols when the request gives none
}

// Server handles HTTP requests for searches and mazes.
type Server struct {
	limits Limits
}

// NewServer creates a new Server.
func NewServer(l Limits) *Server {
	return &Server{limits: l}
}

// RegisterPublic registers public routes.
func (s *Server) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", s.health)
	route.GET("/algorithms", s.listAlgorithms)
	route.POST("/search", s.search)
	route.POST("/maze", s.maze)
}

func (s *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listAlgorithms(ctx *gin.Context) {
	all := algorithms.All()
	out := make([]AlgorithmInfo, 0, len(all))
	for _, a := range all {
		out = append(out, AlgorithmInfo{Name: a.String(), Title: a.Title(), Weighted: a.Weighted()})
	}
	ctx.JSON(http.StatusOK, out)
}

// search runs one strategy on a text board.
func (s *Server) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alg, err := algorithms.Parse(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.checkLines(request.Grid); err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	g, err := gridtext.ParseLines(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end, err := gridtext.Endpoints(g)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := algorithms.Run(alg, g, start, end)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &SearchResponse{
		RequestID:    middleware.GetRequestID(ctx),
		Algorithm:    alg.String(),
		VisitedOrder: nonNil(res.VisitedOrder),
		Path:         nonNil(res.Path),
		Found:        res.Found(),
		Cost:         search.PathCost(g, res.Path),
	}
	ctx.JSON(http.StatusOK, response)
}

// maze generates a maze over a text board or a fresh default board.
func (s *Server) maze(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := s.mazeBoard(request)
	switch {
	case errors.Is(err, errTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, _ := g.Start()
	end, _ := g.End()

	seed := request.Seed
	if seed == 0 {
		seed = maze.NewSeed()
	}
	m, err := maze.Generate(g, start, end, maze.WithSeed(seed))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lines, err := gridtext.Lines(m)
	if err != nil {
		log.Printf("%s maze %s: %v", config.LogError, middleware.GetRequestID(ctx), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		RequestID: middleware.GetRequestID(ctx),
		Seed:      seed,
		Grid:      lines,
	})
}

// mazeBoard builds the board a maze request describes. Missing endpoints
// are placed where grid.Default would put them.
func (s *Server) mazeBoard(request MazeRequest) (*grid.Grid, error) {
	var g *grid.Grid
	var err error
	if len(request.Grid) > 0 {
		if err = s.checkLines(request.Grid); err != nil {
			return nil, err
		}
		if g, err = gridtext.ParseLines(request.Grid); err != nil {
			return nil, err
		}
	} else {
		rows, cols := request.Rows, request.Cols
		if rows == 0 {
			rows = s.limits.DefaultRows
		}
		if cols == 0 {
			cols = s.limits.DefaultCols
		}
		if rows <= 0 || cols <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", grid.ErrEmptyGrid, rows, cols)
		}
		// rows*cols may overflow int
		if rows > s.limits.MaxCells/cols {
			return nil, fmt.Errorf("%w: %dx%d, limit %d cells", errTooLarge, rows, cols, s.limits.MaxCells)
		}
		return grid.Default(rows, cols)
	}

	start, hasStart := g.Start()
	end, hasEnd := g.End()
	if hasStart && hasEnd {
		return g, nil
	}
	defStart, defEnd := grid.DefaultEndpoints(g.Rows(), g.Cols())
	b := grid.BuilderFrom(g)
	if !hasStart {
		start = defStart
		if hasEnd && start == end {
			start = defEnd
		}
		b.Start(start)
	}
	if !hasEnd {
		end = defEnd
		if end == start {
			end = defStart
		}
		b.End(end)
	}
	return b.Build()
}

// checkLines rejects text boards with more cells than allowed.
func (s *Server) checkLines(lines []string) error {
	cells := 0
	for _, l := range lines {
		cells += len(l)
	}
	if cells > s.limits.MaxCells {
		return fmt.Errorf("%w: %d cells, limit %d", errTooLarge, cells, s.limits.MaxCells)
	}
	return nil
}

func nonNil(p []grid.Position) []grid.Position {
	if p == nil {
		return []grid.Position{}
	}
	return p
}
