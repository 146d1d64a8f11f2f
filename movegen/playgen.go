package movegen

import (
	"github.com/crosswordcore/engine/board"
	"github.com/crosswordcore/engine/kwg"
	"github.com/crosswordcore/engine/tilemapping"
)

// placeEnv is the mutable state threaded through one lane's anchor walk,
// the Go shape of original_source/movegen.rs's Env struct. A Generator
// builds one placeEnv per lane, all sharing the Generator's scratch
// buffers; nothing here is safe to share across goroutines.
type placeEnv struct {
	graph   *kwg.Graph
	tm      *tilemapping.TileMapping
	strider board.Strider

	crossSets []CrossSet
	rackTally tilemapping.RackTally
	wordBuffer tilemapping.MachineWord

	anchor, leftmost, rightmost int
	numPlayed                  int
	idxLeft                    int
	bingoBonus                 int

	onFound func(idxLeft, idxRight, score int)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (e *placeEnv) record(idxLeft, idxRight, mainScore, perpScore, wordMultiplier int) {
	score := mainScore*wordMultiplier + perpScore
	if e.numPlayed >= 7 {
		score += e.bingoBonus
	}
	e.onFound(idxLeft, idxRight, score)
}

func (e *placeEnv) playRight(idx int, p int32, mainScore, perpScore, wordMultiplier int, isUnique bool) {
	for idx < e.rightmost {
		b := e.strider.TileAt(idx)
		if b == 0 {
			break
		}
		p = e.graph.Seek(p, b.Unblank())
		if p <= 0 {
			return
		}
		mainScore += e.tm.Score(b)
		idx++
	}
	if idx > e.anchor+1 && e.numPlayed+boolToInt(isUnique) >= 2 && idx-e.idxLeft >= 2 && e.graph.Accepts(p) {
		e.record(e.idxLeft, idx, mainScore, perpScore, wordMultiplier)
	}
	if idx >= e.rightmost {
		return
	}

	p = e.graph.ArcIndex(p)
	if p <= 0 {
		return
	}
	var thisPremium board.Premium
	var thisCrossSet CrossSet
	if idx < e.rightmost {
		thisPremium = e.strider.PremiumAt(idx)
		thisCrossSet = e.crossSets[idx]
	}
	if thisCrossSet.Bits == 1 {
		return
	}
	newWordMultiplier := wordMultiplier * int(thisPremium.WordMultiplier)
	thisCrossBits := thisCrossSet.Bits
	if thisCrossBits == 0 {
		isUnique = true
		thisCrossBits = allTilesBit
	}
	for {
		tile := e.graph.Tile(p)
		if tile != 0 && thisCrossBits&(1<<tile) != 0 {
			ml := tilemapping.MachineLetter(tile)
			if e.rackTally.Count(ml) > 0 {
				e.rackTally.Take(ml)
				e.numPlayed++
				tileValue := e.tm.Score(ml) * int(thisPremium.LetterMultiplier)
				e.wordBuffer[idx] = ml
				perp := perpScore
				if thisCrossSet.Bits != 0 {
					perp = perpScore + (int(thisCrossSet.Score)+tileValue)*int(thisPremium.WordMultiplier)
				}
				e.playRight(idx+1, p, mainScore+tileValue, perp, newWordMultiplier, isUnique)
				e.numPlayed--
				e.rackTally.Add(ml)
			}
			if e.rackTally.Count(0) > 0 {
				e.rackTally.Take(0)
				e.numPlayed++
				tileValue := e.tm.Score(0) * int(thisPremium.LetterMultiplier)
				e.wordBuffer[idx] = ml | tilemapping.BlankMask
				perp := perpScore
				if thisCrossSet.Bits != 0 {
					perp = perpScore + (int(thisCrossSet.Score)+tileValue)*int(thisPremium.WordMultiplier)
				}
				e.playRight(idx+1, p, mainScore+tileValue, perp, newWordMultiplier, isUnique)
				e.numPlayed--
				e.rackTally.Add(0)
			}
		}
		if e.graph.IsEnd(p) {
			break
		}
		p++
	}
}

func (e *placeEnv) playLeft(idx int, p int32, mainScore, perpScore, wordMultiplier int, isUnique bool) {
	for idx >= e.leftmost {
		b := e.strider.TileAt(idx)
		if b == 0 {
			break
		}
		p = e.graph.Seek(p, b.Unblank())
		if p <= 0 {
			return
		}
		mainScore += e.tm.Score(b)
		idx--
	}
	if e.numPlayed+boolToInt(isUnique) >= 2 && e.anchor-idx >= 2 && e.graph.Accepts(p) {
		e.record(idx+1, e.anchor+1, mainScore, perpScore, wordMultiplier)
	}

	p = e.graph.ArcIndex(p)
	if p <= 0 {
		return
	}
	var thisPremium board.Premium
	var thisCrossSet CrossSet
	if idx >= e.leftmost {
		thisPremium = e.strider.PremiumAt(idx)
		thisCrossSet = e.crossSets[idx]
	}
	newWordMultiplier := wordMultiplier * int(thisPremium.WordMultiplier)
	thisCrossBits := thisCrossSet.Bits
	if thisCrossBits == 0 {
		isUnique = true
		thisCrossBits = allTilesBit
	}
	for {
		tile := e.graph.Tile(p)
		if tile == 0 {
			e.idxLeft = idx + 1
			e.playRight(e.anchor+1, p, mainScore, perpScore, wordMultiplier, isUnique)
		} else if idx >= e.leftmost && thisCrossBits&(1<<tile) != 0 {
			ml := tilemapping.MachineLetter(tile)
			if e.rackTally.Count(ml) > 0 {
				e.rackTally.Take(ml)
				e.numPlayed++
				tileValue := e.tm.Score(ml) * int(thisPremium.LetterMultiplier)
				e.wordBuffer[idx] = ml
				perp := perpScore
				if thisCrossSet.Bits != 0 {
					perp = perpScore + (int(thisCrossSet.Score)+tileValue)*int(thisPremium.WordMultiplier)
				}
				e.playLeft(idx-1, p, mainScore+tileValue, perp, newWordMultiplier, isUnique)
				e.numPlayed--
				e.rackTally.Add(ml)
			}
			if e.rackTally.Count(0) > 0 {
				e.rackTally.Take(0)
				e.numPlayed++
				tileValue := e.tm.Score(0) * int(thisPremium.LetterMultiplier)
				e.wordBuffer[idx] = ml | tilemapping.BlankMask
				perp := perpScore
				if thisCrossSet.Bits != 0 {
					perp = perpScore + (int(thisCrossSet.Score)+tileValue)*int(thisPremium.WordMultiplier)
				}
				e.playLeft(idx-1, p, mainScore+tileValue, perp, newWordMultiplier, isUnique)
				e.numPlayed--
				e.rackTally.Add(0)
			}
		}
		if e.graph.IsEnd(p) {
			break
		}
		p++
	}
}

// genPlaceMovesForLane drives the anchor loop for one lane: existing
// tiles always anchor a play, and empty squares with a nonzero
// perpendicular cross set anchor a play too, with rightmost shrinking
// after each anchor to avoid generating the same play twice from two
// different anchors along the same open run.
func genPlaceMovesForLane(e *placeEnv, singleTilePlays bool) {
	length := e.strider.Len()
	for i := 0; i < length; i++ {
		e.wordBuffer[i] = 0
	}
	rightmost := length
	leftmost := length
	for {
		for leftmost > 0 && e.strider.TileAt(leftmost-1) == 0 {
			leftmost--
		}
		if leftmost > 0 {
			e.anchor = leftmost - 1
			e.leftmost = 0
			e.rightmost = rightmost
			e.playLeft(e.anchor, e.graph.GaddagRoot(), 0, 0, 1, singleTilePlays)
		}
		{
			lm := leftmost
			if lm > 0 {
				lm++
			}
			for anchor := rightmost - 1; anchor >= lm; anchor-- {
				crossBits := e.crossSets[anchor].Bits
				if crossBits != 0 {
					if rightmost-lm < 2 {
						break
					}
					if crossBits != 1 {
						e.anchor = anchor
						e.leftmost = lm
						e.rightmost = rightmost
						e.playLeft(e.anchor, e.graph.GaddagRoot(), 0, 0, 1, singleTilePlays)
					}
					rightmost = anchor
				}
			}
		}
		for leftmost > 0 && e.strider.TileAt(leftmost-1) != 0 {
			leftmost--
		}
		if leftmost <= 1 {
			break
		}
		rightmost = leftmost - 1
	}
}
