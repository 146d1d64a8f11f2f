package movegen

import (
	"github.com/rs/zerolog"

	"github.com/crosswordcore/engine/board"
	"github.com/crosswordcore/engine/klv"
	"github.com/crosswordcore/engine/kwg"
	"github.com/crosswordcore/engine/tilemapping"
)

// Logger redirects the package's diagnostics. Default is zerolog.Nop.
var Logger = zerolog.Nop()

// Generator holds every scratch buffer the anchor walk needs, sized once
// at construction and reused across calls. A Generator is not safe for
// concurrent use: the move-generation model is single-threaded within
// one instance, with no interior synchronization, by design — run one
// Generator per worker goroutine rather than sharing one.
type Generator struct {
	tm     *tilemapping.TileMapping
	layout *board.Layout

	rackTally    tilemapping.RackTally
	wordBuffer   tilemapping.MachineWord
	crossAcross  []CrossSet
	crossDown    []CrossSet
	leaveScratch tilemapping.MachineWord
}

// NewGenerator allocates a Generator's scratch buffers for a given
// board layout and alphabet.
func NewGenerator(layout *board.Layout, tm *tilemapping.TileMapping) *Generator {
	rows, cols := layout.Dims()
	n := rows * cols
	maxDim := rows
	if cols > maxDim {
		maxDim = cols
	}
	return &Generator{
		tm:           tm,
		layout:       layout,
		rackTally:    tilemapping.NewRackTally(tm),
		wordBuffer:   make(tilemapping.MachineWord, maxDim),
		crossAcross:  make([]CrossSet, n),
		crossDown:    make([]CrossSet, n),
		leaveScratch: make(tilemapping.MachineWord, 7),
	}
}

// GenAll returns every legal placement and exchange for rack on b,
// scored by face value plus equity (leave value looked up in lv, or 0 if
// lv is nil). Results are sorted by descending equity; ties break by
// descending score, then by lexicographically-earlier word, a
// deterministic order callers can rely on for reproducible top-N
// selection.
func (g *Generator) GenAll(b *board.Board, graph *kwg.Graph, rack *tilemapping.Rack, lv *klv.KLV, eq EquityParams) []Play {
	plays := g.genPlacements(b, graph, rack, eq.BingoBonus)
	plays = append(plays, g.GenExchanges(b, rack)...)
	for i := range plays {
		plays[i].Equity = g.equity(&plays[i], b, rack, lv, eq)
	}
	sortPlaysByEquity(plays)
	return plays
}

// GenMovesFiltered is GenAll with three optional predicates applied
// before sorting (wordOK and leaveAdj before equity scoring, equityOK
// after it): wordOK vets a placement's Play.Word, in which 0 marks a
// board tile played through (e.g. against a profanity list or a
// restricted lexicon subset),
// leaveAdj can veto a play based on what it would leave on the rack
// (e.g. refusing to strand the blank), and equityOK filters on the
// final computed equity (e.g. a simulation harness pruning the tail of
// the candidate list before its own deeper search). Any predicate left
// nil is skipped.
func (g *Generator) GenMovesFiltered(
	b *board.Board, graph *kwg.Graph, rack *tilemapping.Rack, lv *klv.KLV, eq EquityParams,
	wordOK func(tilemapping.MachineWord) bool,
	leaveAdj func(tilemapping.RackTally) bool,
	equityOK func(float64) bool,
) []Play {
	plays := g.genPlacements(b, graph, rack, eq.BingoBonus)
	if wordOK != nil {
		kept := plays[:0]
		for _, p := range plays {
			if wordOK(p.Word) {
				kept = append(kept, p)
			}
		}
		plays = kept
	}
	plays = append(plays, g.GenExchanges(b, rack)...)
	if leaveAdj != nil {
		kept := plays[:0]
		for _, p := range plays {
			if leaveAdj(p.Leave) {
				kept = append(kept, p)
			}
		}
		plays = kept
	}
	for i := range plays {
		plays[i].Equity = g.equity(&plays[i], b, rack, lv, eq)
	}
	if equityOK != nil {
		kept := plays[:0]
		for _, p := range plays {
			if equityOK(p.Equity) {
				kept = append(kept, p)
			}
		}
		plays = kept
	}
	sortPlaysByEquity(plays)
	return plays
}

func (g *Generator) genPlacements(b *board.Board, graph *kwg.Graph, rack *tilemapping.Rack, bingoBonus int) []Play {
	computeCrossSets(b, graph, g.tm, g.crossAcross, g.crossDown)

	rows, cols := g.layout.Dims()
	if !b.HasAnyTiles() {
		sr, sc := g.layout.StarSquare()
		g.crossAcross[sr*cols+sc] = CrossSet{Bits: allTilesBit}
	}

	copy(g.rackTally, rack.Tally)
	var plays []Play

	for r := 0; r < rows; r++ {
		e := &placeEnv{
			graph: graph, tm: g.tm,
			strider:    board.RowStrider(b, r),
			crossSets:  g.crossAcross[r*cols : r*cols+cols],
			rackTally:  g.rackTally,
			wordBuffer: g.wordBuffer[:cols],
			bingoBonus: bingoBonus,
		}
		row := r
		e.onFound = func(idxLeft, idxRight, score int) {
			word := append(tilemapping.MachineWord(nil), e.wordBuffer[idxLeft:idxRight]...)
			leave := g.rackTally.Clone()
			plays = append(plays, Play{Kind: Place, Down: false, Lane: row, Idx: idxLeft, Word: word, Score: score, Leave: leave})
		}
		genPlaceMovesForLane(e, true)
	}

	for c := 0; c < cols; c++ {
		e := &placeEnv{
			graph: graph, tm: g.tm,
			strider:    board.ColStrider(b, c),
			crossSets:  g.crossDown[c*rows : c*rows+rows],
			rackTally:  g.rackTally,
			wordBuffer: g.wordBuffer[:rows],
			bingoBonus: bingoBonus,
		}
		col := c
		e.onFound = func(idxLeft, idxRight, score int) {
			word := append(tilemapping.MachineWord(nil), e.wordBuffer[idxLeft:idxRight]...)
			leave := g.rackTally.Clone()
			plays = append(plays, Play{Kind: Place, Down: true, Lane: col, Idx: idxLeft, Word: word, Score: score, Leave: leave})
		}
		genPlaceMovesForLane(e, false)
	}

	return plays
}
