package movegen

import (
	"github.com/crosswordcore/engine/board"
	"github.com/crosswordcore/engine/tilemapping"
)

// maxExchangeBoardTiles is the cutoff above which exchanges are no
// longer enumerated in full: with 100 tiles, 7 on each rack and 7 in
// the bag, this is the most tiles that can ever be on the board while
// an exchange still stays legal, so walking past it would only ever
// surface the trivial "keep everything" case in an undersized bag
// anyway.
const maxExchangeBoardTiles = 79

// GenExchanges enumerates every distinct leave obtainable by exchanging
// some subset of rack, one Play per distinct kept multiset (exchanging
// zero tiles is included, representing a pass). Ported from
// original_source/movegen.rs's generate_exchanges, which walks the
// rack's distinct tile groups recursing over how many of each group to
// keep rather than which individual tiles to exchange, so two identical
// letters never produce the same leave twice.
func (g *Generator) GenExchanges(b *board.Board, rack *tilemapping.Rack) []Play {
	var plays []Play
	if b.TileCount() > maxExchangeBoardTiles {
		kept := rack.Tally.Clone()
		plays = append(plays, Play{Kind: Exchange, Leave: kept, Exchanged: tilemapping.MachineWord{}})
		return plays
	}

	distinct := make([]tilemapping.MachineLetter, 0, len(rack.Tally))
	for ml := 0; ml < len(rack.Tally); ml++ {
		if rack.Tally.Count(tilemapping.MachineLetter(ml)) > 0 {
			distinct = append(distinct, tilemapping.MachineLetter(ml))
		}
	}

	kept := rack.Tally.Clone()
	var recurse func(idx int)
	recurse = func(idx int) {
		if idx >= len(distinct) {
			leave := kept.Clone()
			exchanged := make(tilemapping.MachineWord, 0, rack.NumTiles()-leave.NumTiles())
			for ml := 0; ml < len(rack.Tally); ml++ {
				n := rack.Tally.Count(tilemapping.MachineLetter(ml)) - leave.Count(tilemapping.MachineLetter(ml))
				for i := 0; i < n; i++ {
					exchanged = append(exchanged, tilemapping.MachineLetter(ml))
				}
			}
			plays = append(plays, Play{Kind: Exchange, Leave: leave, Exchanged: exchanged})
			return
		}
		ml := distinct[idx]
		available := rack.Tally.Count(ml)
		for keep := available; keep >= 0; keep-- {
			kept[ml] = uint8(keep)
			recurse(idx + 1)
		}
		kept[ml] = uint8(available)
	}
	recurse(0)
	return plays
}
