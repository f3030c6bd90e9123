// Package gridtext reads and writes grid.Grid boards as plain text.
//
// One line per row, one byte per cell:
//
//	.      open cell, weight 1 ('1' is accepted as well)
//	#      wall
//	S      start (weight 1)
//	E      end (weight 1)
//	2-9    weights 2..9
//	a-z    weights 10..35 (base 36)
//
// Blank lines and lines starting with ';' are skipped, so boards may carry
// comments. Render draws a search.Result on top of a board, marking
// visited cells with 'o' and the path with '*' while keeping S and E.
//
//	S..#
//	.#..
//	..9E
package gridtext
