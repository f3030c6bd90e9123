// Package maze_test checks the structural guarantees of generated mazes:
// the wall outline, open endpoints, reproducibility and the spanning-tree
// shape of the carved lattice.
package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestGenerate_Errors(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	_, err = maze.Generate(nil, grid.Pos(0, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, maze.ErrNilGrid)

	_, err = maze.Generate(&grid.Grid{}, grid.Pos(0, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = maze.Generate(g, grid.Pos(5, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, maze.ErrEndpointOutOfBounds)

	_, err = maze.Generate(g, grid.Pos(0, 0), grid.Pos(1, -1))
	assert.ErrorIs(t, err, maze.ErrEndpointOutOfBounds)

	_, err = maze.Generate(g, grid.Pos(0, 0), grid.Pos(1, 1), maze.WithSource(nil))
	assert.ErrorIs(t, err, maze.ErrBadOption)
}

// ------------------------------------------------------------------------
// 2. Structural invariants
// ------------------------------------------------------------------------

func TestGenerate_Invariants(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		start, end grid.Position
		reachable  bool
	}{
		{"DefaultBoard", grid.DefaultRows, grid.DefaultCols, grid.Pos(15, 10), grid.Pos(15, 40), true},
		{"OddBoard", 21, 41, grid.Pos(1, 1), grid.Pos(19, 39), true},
		{"EvenEndpoints", 12, 16, grid.Pos(2, 2), grid.Pos(10, 14), true},
		{"BorderEndpoints", 9, 11, grid.Pos(4, 0), grid.Pos(4, 10), true},
		{"SingleLatticeRow", 3, 15, grid.Pos(1, 0), grid.Pos(1, 14), true},
		{"SingleLatticeCol", 15, 3, grid.Pos(0, 1), grid.Pos(14, 1), true},
		{"ThinBoard", 4, 9, grid.Pos(2, 0), grid.Pos(1, 8), true},
		// the end sits in a corner with no interior neighbour
		{"Tiny", 3, 3, grid.Pos(1, 1), grid.Pos(0, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := grid.NewBuilder(tc.rows, tc.cols).
				Start(tc.start).
				End(tc.end).
				Weight(grid.Pos(0, 0), 7).
				Build()
			require.NoError(t, err)

			for seed := int64(1); seed <= 5; seed++ {
				m, err := maze.Generate(src, tc.start, tc.end, maze.WithSeed(seed))
				require.NoError(t, err)
				assertMazeInvariants(t, m, tc.start, tc.end)
				if tc.reachable {
					assert.True(t, m.Connected(tc.start, tc.end), "seed %d: end unreachable", seed)
				}
			}
		})
	}
}

func assertMazeInvariants(t *testing.T, m *grid.Grid, start, end grid.Position) {
	t.Helper()

	for _, row := range m.Nodes() {
		for _, n := range row {
			assert.Equal(t, grid.DefaultWeight, n.Weight, "weight at %v", n.Pos)
			if m.OnBorder(n.Pos) && n.Pos != start && n.Pos != end {
				assert.True(t, n.IsWall, "border cell %v carved", n.Pos)
			}
		}
	}

	for _, p := range []grid.Position{start, end} {
		assert.False(t, m.IsWall(p), "endpoint %v is a wall", p)

		interior, open := 0, 0
		for _, nb := range m.Neighbors(p) {
			if m.Interior(nb) {
				interior++
				if !m.IsWall(nb) {
					open++
				}
			}
		}
		if interior > 0 {
			assert.Positive(t, open, "endpoint %v has no open interior neighbor", p)
		}
	}

	s, ok := m.Start()
	assert.True(t, ok)
	assert.Equal(t, start, s)
	e, ok := m.End()
	assert.True(t, ok)
	assert.Equal(t, end, e)
}

// TestGenerate_SingleCorridor covers boards whose interior is one cell
// thick: the lattice is a single line and must be carved end to end.
func TestGenerate_SingleCorridor(t *testing.T) {
	g, err := grid.New(3, 15)
	require.NoError(t, err)
	start, end := grid.Pos(1, 0), grid.Pos(1, 14)

	m, err := maze.Generate(g, start, end, maze.WithSource(firstChoice{}), maze.WithExtraCarving(false))
	require.NoError(t, err)

	for c := 0; c < 15; c++ {
		assert.False(t, m.IsWall(grid.Pos(1, c)), "corridor cell (1,%d) closed", c)
	}
	assert.True(t, m.Connected(start, end))
}

// TestGenerate_DropsStaleEndpoints checks that endpoint flags on the input
// grid do not survive when Generate is given other endpoints.
func TestGenerate_DropsStaleEndpoints(t *testing.T) {
	g, err := grid.NewBuilder(7, 7).Start(grid.Pos(2, 2)).End(grid.Pos(4, 4)).Build()
	require.NoError(t, err)
	start, end := grid.Pos(1, 1), grid.Pos(5, 5)

	m, err := maze.Generate(g, start, end, maze.WithSeed(4), maze.WithExtraCarving(false))
	require.NoError(t, err)

	for _, p := range []grid.Position{grid.Pos(2, 2), grid.Pos(4, 4)} {
		n, ok := m.At(p)
		require.True(t, ok)
		assert.True(t, n.IsWall, "stale endpoint %v left open", p)
		assert.False(t, n.IsEndpoint(), "stale endpoint %v still flagged", p)
	}
	s, ok := m.Start()
	assert.True(t, ok)
	assert.Equal(t, start, s)
	e, ok := m.End()
	assert.True(t, ok)
	assert.Equal(t, end, e)
}

func TestGenerate_KeepsDimensionsAndInput(t *testing.T) {
	g, err := grid.NewBuilder(11, 13).Wall(grid.Pos(5, 5)).Build()
	require.NoError(t, err)

	m, err := maze.Generate(g, grid.Pos(1, 1), grid.Pos(9, 11), maze.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, g.Rows(), m.Rows())
	assert.Equal(t, g.Cols(), m.Cols())
	assert.Equal(t, 1, g.WallCount(), "input grid must not change")
	assert.Greater(t, m.WallCount(), 1)
}

// ------------------------------------------------------------------------
// 3. Randomness
// ------------------------------------------------------------------------

func TestGenerate_SameSeedSameLayout(t *testing.T) {
	g, err := grid.New(25, 35)
	require.NoError(t, err)
	start, end := grid.Pos(3, 3), grid.Pos(21, 31)

	a, err := maze.Generate(g, start, end, maze.WithSeed(99))
	require.NoError(t, err)
	b, err := maze.Generate(g, start, end, maze.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())

	c, err := maze.Generate(g, start, end, maze.WithSource(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), c.Nodes(), "WithSeed and an equally seeded source agree")

	d, err := maze.Generate(g, start, end, maze.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Nodes(), d.Nodes())
}

func TestGenerate_ExtraCarvingOnlyOpens(t *testing.T) {
	g, err := grid.New(30, 50)
	require.NoError(t, err)
	start, end := grid.Pos(15, 10), grid.Pos(15, 40)

	plain, err := maze.Generate(g, start, end, maze.WithSeed(8), maze.WithExtraCarving(false))
	require.NoError(t, err)
	loose, err := maze.Generate(g, start, end, maze.WithSeed(8))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, plain.WallCount(), loose.WallCount())
	for _, row := range plain.Nodes() {
		for _, n := range row {
			if !n.IsWall {
				assert.False(t, loose.IsWall(n.Pos), "extra carving closed %v", n.Pos)
			}
		}
	}
}

// TestGenerate_PerfectWithoutExtraCarving places the endpoints in corners
// so nothing interferes with the lattice: the carved cells must form a
// single tree covering every odd-offset cell.
func TestGenerate_PerfectWithoutExtraCarving(t *testing.T) {
	const rows, cols = 9, 11
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	start, end := grid.Pos(0, 0), grid.Pos(rows-1, cols-1)

	for seed := int64(1); seed <= 10; seed++ {
		m, err := maze.Generate(g, start, end, maze.WithSeed(seed), maze.WithExtraCarving(false))
		require.NoError(t, err)

		lattice := 0
		for r := 1; r < rows-1; r += 2 {
			for c := 1; c < cols-1; c += 2 {
				lattice++
				assert.False(t, m.IsWall(grid.Pos(r, c)), "lattice cell (%d,%d) left closed", r, c)
			}
		}

		comps := m.Components()
		var carved []grid.Position
		for _, comp := range comps {
			if len(comp) == 1 && (comp[0] == start || comp[0] == end) {
				continue
			}
			carved = append(carved, comp...)
		}
		require.Len(t, comps, 3, "one carved region plus two isolated corners")
		assert.Len(t, carved, 2*lattice-1)

		edges := 0
		for _, p := range carved {
			for _, nb := range m.Neighbors(p) {
				if !m.IsWall(nb) && (nb.Row > p.Row || nb.Col > p.Col) {
					edges++
				}
			}
		}
		assert.Equal(t, len(carved)-1, edges, "carved region must be a tree")
	}
}

func TestNewSeed(t *testing.T) {
	assert.NotZero(t, maze.NewSeed())
}
