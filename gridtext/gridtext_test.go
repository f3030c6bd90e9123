package gridtext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridtext"
)

const board = `
; a small weighted board
S..#
.#9.
..zE
`

func TestParse(t *testing.T) {
	g, err := gridtext.ParseString(board)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.True(t, g.IsWall(grid.Pos(0, 3)))
	assert.True(t, g.IsWall(grid.Pos(1, 1)))
	assert.Equal(t, 9, g.Weight(grid.Pos(1, 2)))
	assert.Equal(t, 35, g.Weight(grid.Pos(2, 2)))
	assert.Equal(t, grid.DefaultWeight, g.Weight(grid.Pos(0, 1)))

	start, end, err := gridtext.Endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(0, 0), start)
	assert.Equal(t, grid.Pos(2, 3), end)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		msg  string
	}{
		{"BadByte", "S.\n.X\n", gridtext.ErrBadCell, "line 2, column 2"},
		{"Uppercase", "SA\n", gridtext.ErrBadCell, "line 1, column 2"},
		{"Ragged", "S..\n.E\n", grid.ErrNonRectangular, ""},
		{"Empty", "; nothing\n\n", grid.ErrEmptyGrid, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridtext.ParseString(tc.in)
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	g, err := gridtext.ParseString(board)
	require.NoError(t, err)

	out, err := gridtext.Format(g)
	require.NoError(t, err)
	assert.Equal(t, "S..#\n.#9.\n..zE\n", out)

	again, err := gridtext.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), again.Nodes())
}

func TestFormat_WeightTooLarge(t *testing.T) {
	g, err := grid.NewBuilder(1, 2).Weight(grid.Pos(0, 1), gridtext.MaxWeight+1).Build()
	require.NoError(t, err)

	_, err = gridtext.Format(g)
	assert.ErrorIs(t, err, gridtext.ErrWeightTooLarge)
	_, err = gridtext.Lines(g)
	assert.ErrorIs(t, err, gridtext.ErrWeightTooLarge)
}

func TestRender(t *testing.T) {
	g, err := gridtext.ParseLines([]string{
		"S...",
		".##.",
		"...E",
	})
	require.NoError(t, err)
	start, end, err := gridtext.Endpoints(g)
	require.NoError(t, err)

	res, err := bfs.Search(g, start, end)
	require.NoError(t, err)

	got := gridtext.Render(g, res)
	assert.Equal(t, "Sooo\n*##o\n***E\n", got)
	assert.Equal(t, 3, strings.Count(got, "\n"))
}

func TestEndpoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"NoStart", "..E\n", gridtext.ErrMissingStart},
		{"NoEnd", "S..\n", gridtext.ErrMissingEnd},
		{"TwoStarts", "S.S\n..E\n", gridtext.ErrDuplicateStart},
		{"TwoEnds", "S.E\n..E\n", gridtext.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridtext.ParseString(tc.in)
			require.NoError(t, err)
			_, _, err = gridtext.Endpoints(g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
