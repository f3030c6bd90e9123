// Command gridpath searches and generates grid boards from the terminal and
// serves the same operations over HTTP.
//
//	gridpath search -algo astar -in board.txt
//	gridpath maze -rows 21 -cols 41 -seed 7
//	gridpath serve
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/api"
	api_i "github.com/katalvlaran/gridpath/api/i"
	"github.com/katalvlaran/gridpath/api/pathfinding"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridtext"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

const usage = `usage: gridpath <command> [flags]

commands:
  search   run a search on a text board
  maze     print a generated maze
  serve    run the HTTP API
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "search":
		err = runSearch(args[1:], stdin, stdout, stderr)
	case "maze":
		err = runMaze(args[1:], stdout, stderr)
	case "serve":
		err = runServe(args[1:], stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "gridpath: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "%s%s %v%s\n", config.LogErrorColor, config.LogError, err, config.LogColorReset)
		return 1
	}
}

// runSearch reads a board, runs one strategy and prints the rendered result.
func runSearch(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.String("algo", "dijkstra", "search strategy: bfs, dfs, dijkstra or astar")
	in := fs.String("in", "-", "board file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, err := algorithms.Parse(*algo)
	if err != nil {
		return err
	}

	r := stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	g, err := gridtext.Parse(r)
	if err != nil {
		return err
	}
	start, end, err := gridtext.Endpoints(g)
	if err != nil {
		return err
	}

	res, err := algorithms.Run(alg, g, start, end)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, gridtext.Render(g, res))
	fmt.Fprintf(stdout, "%s: visited %d", alg.Title(), len(res.VisitedOrder))
	if !res.Found() {
		fmt.Fprintln(stdout, ", no path")
		return nil
	}
	fmt.Fprintf(stdout, ", path %d, cost %d\n", len(res.Path), search.PathCost(g, res.Path))
	return nil
}

// runMaze prints a maze over a default board.
func runMaze(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.Int("rows", grid.DefaultRows, "board rows")
	cols := fs.Int("cols", grid.DefaultCols, "board columns")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one")
	extra := fs.Bool("loops", true, "carve extra cells to add loops")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := grid.Default(*rows, *cols)
	if err != nil {
		return err
	}
	if *seed == 0 {
		*seed = maze.NewSeed()
	}
	start, end := grid.DefaultEndpoints(*rows, *cols)

	m, err := maze.Generate(g, start, end, maze.WithSeed(*seed), maze.WithExtraCarving(*extra))
	if err != nil {
		return err
	}
	out, err := gridtext.Format(m)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "; seed %d\n%s", *seed, out)
	return nil
}

// runServe loads the configuration and blocks serving the HTTP API.
func runServe(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "optional .env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	controller := pathfinding.NewServer(pathfinding.Limits{
		MaxCells:    cfg.MaxCells,
		DefaultRows: cfg.DefaultRows,
		DefaultCols: cfg.DefaultCols,
	})
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     cfg.BaseURL,
		Controllers: []api_i.Controller{controller},
	})

	log.Printf("%s%s listening on %s%s/v1%s", config.LogInfoColor, config.LogInfo, cfg.Addr(), cfg.BaseURL, config.LogColorReset)
	return router.Run()
}
