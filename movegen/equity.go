package movegen

import (
	"sort"

	"github.com/crosswordcore/engine/board"
	"github.com/crosswordcore/engine/klv"
	"github.com/crosswordcore/engine/tilemapping"
)

// EquityParams parameterizes the adjustments equity() layers on top of a
// play's raw score, grounded on original_source/play_scorer.rs's
// compute_equity. Bag state (empty or not) and, when it's empty and this
// play would empty the rack, the opponents' remaining rack value are the
// caller's responsibility to fill in per call, since a Generator has no
// notion of a game's bag or other players' racks.
type EquityParams struct {
	// LeaveScale multiplies the looked-up leave value before it's added
	// to score. 1.0 reproduces the table's value unscaled.
	LeaveScale float64

	// BingoBonus is added to a play's score when it uses all 7 rack
	// tiles. GenAll and GenMovesFiltered pass it to the placement walk,
	// which folds it into Play.Score; equity() does not add it again.
	BingoBonus int

	// BagEmpty, when true, replaces the leave-value term with an
	// endgame adjustment: a penalty on tiles stranded on the rack, or a
	// bonus for opponents' stranded tiles if this play empties the
	// rack entirely.
	BagEmpty bool

	// OpponentRackValue is the sum of face values of every other
	// player's rack, used only when BagEmpty is true and this play
	// leaves no tiles behind.
	OpponentRackValue int

	// DangerousVowelPenalty is charged once per vowel placed on the
	// opening play whose square is directly beside a premium square in a
	// neighbouring lane, since such a
	// vowel is likely to set up a high-value perpendicular play for the
	// opponent. Defaults to 0.7.
	DangerousVowelPenalty float64
}

// DefaultEquityParams returns the standard weights: leave value counted
// at face value, the usual 50-point bingo bonus, and the 0.7-per-vowel
// opening-move penalty.
func DefaultEquityParams() EquityParams {
	return EquityParams{
		LeaveScale:            1.0,
		BingoBonus:            50,
		DangerousVowelPenalty: 0.7,
	}
}

// equity scores a candidate play's score plus whatever leave or endgame
// adjustment applies, per compute_equity.
func (g *Generator) equity(play *Play, b *board.Board, rack *tilemapping.Rack, lv *klv.KLV, eq EquityParams) float64 {
	equity := float64(play.Score)

	if eq.BagEmpty {
		if play.Leave.NumTiles() > 0 {
			worth := 0
			for ml := 0; ml < len(play.Leave); ml++ {
				worth += play.Leave.Count(tilemapping.MachineLetter(ml)) * g.tm.Score(tilemapping.MachineLetter(ml))
			}
			equity -= float64(10 + 2*worth)
		} else {
			equity += float64(2 * eq.OpponentRackValue)
		}
		return equity
	}

	if lv != nil {
		equity += eq.LeaveScale * float64(lv.LeaveValue(play.Leave, g.leaveScratch))
	}
	if !b.HasAnyTiles() && play.Kind == Place {
		equity -= eq.DangerousVowelPenalty * float64(g.dangerousVowelCount(play))
	}
	return equity
}

// dangerousVowelCount counts vowels in an opening play whose square has a
// premium square directly beside it in either neighbouring lane, per
// compute_equity's dangerous_vowel_count.
func (g *Generator) dangerousVowelCount(play *Play) int {
	rows, cols := g.layout.Dims()
	count := 0
	for i, tile := range play.Word {
		if tile == 0 || !g.tm.IsVowel(tile) {
			continue
		}
		dangerous := false
		if play.Down {
			row := play.Idx + i
			if play.Lane > 0 && isPremiumSquare(g.layout.PremiumAt(row, play.Lane-1)) {
				dangerous = true
			}
			if play.Lane < cols-1 && isPremiumSquare(g.layout.PremiumAt(row, play.Lane+1)) {
				dangerous = true
			}
		} else {
			col := play.Idx + i
			if play.Lane > 0 && isPremiumSquare(g.layout.PremiumAt(play.Lane-1, col)) {
				dangerous = true
			}
			if play.Lane < rows-1 && isPremiumSquare(g.layout.PremiumAt(play.Lane+1, col)) {
				dangerous = true
			}
		}
		if dangerous {
			count++
		}
	}
	return count
}

func isPremiumSquare(p board.Premium) bool {
	return p.WordMultiplier != 1 || p.LetterMultiplier != 1
}

// sortPlaysByEquity orders plays by descending equity, breaking ties by
// descending score and then by lexicographically-earlier word, so two
// calls over the same inputs always agree on an order callers can rely
// on for reproducible top-N selection.
func sortPlaysByEquity(plays []Play) {
	sort.SliceStable(plays, func(i, j int) bool {
		if plays[i].Equity != plays[j].Equity {
			return plays[i].Equity > plays[j].Equity
		}
		if plays[i].Score != plays[j].Score {
			return plays[i].Score > plays[j].Score
		}
		return compareMachineWord(plays[i].Word, plays[j].Word) < 0
	})
}

func compareMachineWord(a, b tilemapping.MachineWord) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
