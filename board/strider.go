package board

import "github.com/crosswordcore/engine/tilemapping"

// Strider walks one lane of the board (a row, read across, or a column,
// read down) without the caller branching on orientation. The move
// generator's anchor walk is written once against Strider and runs
// identically across both axes.
type Strider struct {
	b          *Board
	row, col   int
	dRow, dCol int
	n          int
}

// RowStrider returns a Strider over row r, left to right.
func RowStrider(b *Board, r int) Strider {
	_, cols := b.Layout.Dims()
	return Strider{b: b, row: r, col: 0, dRow: 0, dCol: 1, n: cols}
}

// ColStrider returns a Strider over column c, top to bottom.
func ColStrider(b *Board, c int) Strider {
	rows, _ := b.Layout.Dims()
	return Strider{b: b, row: 0, col: c, dRow: 1, dCol: 0, n: rows}
}

// Len returns the number of squares in the lane.
func (s Strider) Len() int { return s.n }

// At returns the board coordinates of square i along the lane.
func (s Strider) At(i int) (row, col int) {
	return s.row + i*s.dRow, s.col + i*s.dCol
}

// TileAt returns the tile at position i along the lane.
func (s Strider) TileAt(i int) tilemapping.MachineLetter {
	r, c := s.At(i)
	return s.b.TileAt(r, c)
}

// PremiumAt returns the premium at position i along the lane.
func (s Strider) PremiumAt(i int) Premium {
	r, c := s.At(i)
	return s.b.Layout.PremiumAt(r, c)
}
