// Package board implements the board layout and the live tile grid it
// carries: premium squares, the star square, and per-axis striders for
// walking rows and columns uniformly.
//
// This corresponds to the layout half of component A (the alphabet half
// lives in package tilemapping).
package board

import (
	"github.com/crosswordcore/engine/tilemapping"
)

// Dim is the standard board dimension, 15x15, matching the teacher's
// BoardSize.
const Dim = 15

// Premium describes the multipliers a square contributes to a play that
// covers it.
type Premium struct {
	WordMultiplier   int8
	LetterMultiplier int8
}

// noPremium is the no-op premium (both multipliers 1), returned by
// PremiumAt for out-of-range squares.
var noPremium = Premium{WordMultiplier: 1, LetterMultiplier: 1}

// Layout is an immutable description of a board's dimensions and its
// premium squares, shared across every game played on it.
type Layout struct {
	rows, cols   int
	starRow      int
	starCol      int
	premiums     [][]Premium
}

// Dims returns the row and column count.
func (l *Layout) Dims() (rows, cols int) { return l.rows, l.cols }

// StarSquare returns the coordinates of the layout's starting square.
func (l *Layout) StarSquare() (row, col int) { return l.starRow, l.starCol }

// PremiumAt returns the premium for a square. Out-of-range coordinates
// return the no-op premium rather than panicking, since callers walking
// a Strider past a board edge is a normal loop-termination case, not a
// usage error.
func (l *Layout) PremiumAt(row, col int) Premium {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return noPremium
	}
	return l.premiums[row][col]
}

// newLayoutFromDigitGrids builds a Layout from the teacher's word/letter
// multiplier digit-string grids: each character is the multiplier for
// that square, '1' meaning "no premium".
func newLayoutFromDigitGrids(wordMult, letterMult [Dim]string, starRow, starCol int) *Layout {
	l := &Layout{rows: Dim, cols: Dim, starRow: starRow, starCol: starCol}
	l.premiums = make([][]Premium, Dim)
	for r := 0; r < Dim; r++ {
		l.premiums[r] = make([]Premium, Dim)
		for c := 0; c < Dim; c++ {
			l.premiums[r][c] = Premium{
				WordMultiplier:   int8(wordMult[r][c] - '0'),
				LetterMultiplier: int8(letterMult[r][c] - '0'),
			}
		}
	}
	return l
}

// Standard15 returns the standard 15x15 tournament board layout,
// ported digit-for-digit from the teacher's WORD_MULTIPLIERS_STANDARD /
// LETTER_MULTIPLIERS_STANDARD tables.
func Standard15() *Layout {
	return newLayoutFromDigitGrids(wordMultipliersStandard, letterMultipliersStandard, 7, 7)
}

// Explo15 returns the "Explo" 15x15 variant layout, ported from the
// teacher's WORD_MULTIPLIERS_EXPLO / LETTER_MULTIPLIERS_EXPLO tables.
func Explo15() *Layout {
	return newLayoutFromDigitGrids(wordMultipliersExplo, letterMultipliersExplo, 7, 7)
}

// Board is the live grid of tiles played on a Layout. Zero value of a
// cell is the empty square; otherwise the cell holds a
// tilemapping.MachineLetter (possibly blank-designated).
type Board struct {
	Layout *Layout
	tiles  [][]tilemapping.MachineLetter
}

// New allocates an empty board for the given layout.
func New(layout *Layout) *Board {
	rows, cols := layout.Dims()
	b := &Board{Layout: layout, tiles: make([][]tilemapping.MachineLetter, rows)}
	for r := range b.tiles {
		b.tiles[r] = make([]tilemapping.MachineLetter, cols)
	}
	return b
}

// TileAt returns the tile on a square, or 0 if empty.
func (b *Board) TileAt(row, col int) tilemapping.MachineLetter {
	return b.tiles[row][col]
}

// IsEmpty reports whether a square has no tile.
func (b *Board) IsEmpty(row, col int) bool {
	return b.tiles[row][col] == 0
}

// SetLetter places a tile on a square, overwriting whatever was there.
func (b *Board) SetLetter(row, col int, ml tilemapping.MachineLetter) {
	b.tiles[row][col] = ml
}

// HasAnyTiles reports whether the board has at least one tile placed,
// which callers use to distinguish the opening move (which must cover
// the star square) from a mid-game move.
func (b *Board) HasAnyTiles() bool {
	for _, row := range b.tiles {
		for _, ml := range row {
			if ml != 0 {
				return true
			}
		}
	}
	return false
}

// TileCount returns the number of squares with a tile on them.
func (b *Board) TileCount() int {
	n := 0
	for _, row := range b.tiles {
		for _, ml := range row {
			if ml != 0 {
				n++
			}
		}
	}
	return n
}
