package movegen

import (
	"github.com/crosswordcore/engine/board"
	"github.com/crosswordcore/engine/kwg"
	"github.com/crosswordcore/engine/tilemapping"
)

// CrossSet is the per-square, per-orientation record of which tiles can
// legally be placed there (as a 64-bit membership bitmask keyed by
// MachineLetter) together with the face score of whatever perpendicular
// run already sits through that square. Bit 0 is reserved: it is set on
// every square that has perpendicular neighbours, so a bitmask of exactly
// 1 means "perpendicular tiles are here but no tile forms a valid
// perpendicular word, this square is dead", while an empty mask (0)
// means "no perpendicular neighbours, anything goes". Occupied squares
// are also left at 0.
type CrossSet struct {
	Bits  uint64
	Score int16
}

// allTilesBit is the CrossSet.Bits value used for "no perpendicular
// constraint": every tile except the reserved bit-0 marker is allowed.
const allTilesBit uint64 = ^uint64(1)

// computeCrossSets fills both orientations' cross-set grids for the
// whole board, as the move generator needs both before it can walk
// either axis. Grounded on original_source/movegen.rs's gen_cross_set.
// acrossOut is stored row-major (r*cols+c), matching how the across
// sweep walks it a row at a time; downOut is stored column-major
// (c*rows+r), matching how the down sweep walks it a column at a time —
// the same cache-locality split the original keeps, which also lets the
// down sweep index straight into a contiguous per-column slice instead
// of copying one out of a row-major grid on every call.
func computeCrossSets(b *board.Board, graph *kwg.Graph, tm *tilemapping.TileMapping, acrossOut, downOut []CrossSet) {
	rows, cols := b.Layout.Dims()
	for c := 0; c < cols; c++ {
		genCrossSetLane(b, graph, tm, board.ColStrider(b, c), acrossOut, func(i int) int { return i*cols + c })
	}
	for r := 0; r < rows; r++ {
		genCrossSetLane(b, graph, tm, board.RowStrider(b, r), downOut, func(i int) int { return i*rows + r })
	}
}

// genCrossSetLane walks one lane of the board (strider) and fills in the
// cross-set entries of the perpendicular orientation for every run of
// empty squares bordered by tiles along that lane. indexOf maps a lane
// position to its flat offset in the caller's output grid.
func genCrossSetLane(b *board.Board, graph *kwg.Graph, tm *tilemapping.TileMapping, strider board.Strider, out []CrossSet, indexOf func(int) int) {
	length := strider.Len()
	for i := 0; i < length; i++ {
		out[indexOf(i)] = CrossSet{}
	}

	p := int32(1)
	var score int16
	k := length
	for j := length - 1; j >= 0; j-- {
		tile := strider.TileAt(j)
		if tile != 0 {
			if p >= 0 {
				p = graph.Seek(p, tile.Unblank())
			}
			score += int16(tm.Score(tile))
			emptyBefore := j == 0 || strider.TileAt(j-1) == 0
			if emptyBefore {
				if k < length && !(k+1 < length && strider.TileAt(k+1) != 0) {
					var bits uint64 = 1
					if p > 0 {
						q := graph.Seek(p, 0)
						if q > 0 {
							q2 := graph.ArcIndex(q)
							if q2 > 0 {
								for {
									if graph.Accepts(q2) {
										bits |= 1 << graph.Tile(q2)
									}
									if graph.IsEnd(q2) {
										break
									}
									q2++
								}
							}
						}
					}
					out[indexOf(k)] = CrossSet{Bits: bits, Score: score}
				}
				if j > 0 {
					var bits uint64 = 1
					if p > 0 {
						pp := graph.ArcIndex(p)
						if pp > 0 {
							for {
								t := graph.Tile(pp)
								if t != 0 {
									q := pp
									for m := j - 2; m >= 0; m-- {
										mb := strider.TileAt(m)
										if mb == 0 {
											break
										}
										q = graph.Seek(q, mb.Unblank())
										if q <= 0 {
											break
										}
									}
									if q > 0 && graph.Accepts(q) {
										bits |= 1 << t
									}
								}
								if graph.IsEnd(pp) {
									break
								}
								pp++
							}
						}
					}
					for m := j - 2; m >= 0; m-- {
						mb := strider.TileAt(m)
						if mb == 0 {
							break
						}
						score += int16(tm.Score(mb))
					}
					out[indexOf(j-1)] = CrossSet{Bits: bits, Score: score}
				}
			}
		} else {
			p = 1
			score = 0
			k = j
		}
	}
}
