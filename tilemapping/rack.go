package tilemapping

import "strings"

// RackTally is the dense-array multiset representation of a rack: a count
// per MachineLetter, indexed directly by tile value. Hot-path rack
// operations (movegen's anchor walk, klv's leave lookup) use this instead
// of a sorted tile sequence so membership and decrement are O(1).
type RackTally []uint8

// NewRackTally allocates a zeroed tally sized to the alphabet.
func NewRackTally(tm *TileMapping) RackTally {
	return make(RackTally, tm.Length())
}

// Add increments the count for ml by one.
func (rt RackTally) Add(ml MachineLetter) {
	rt[ml]++
}

// Take decrements the count for ml by one. It reports false (and leaves
// the tally unchanged) if ml isn't present, which callers treat as a
// programmer error at the point a move is being assembled from a rack
// known to contain the tile.
func (rt RackTally) Take(ml MachineLetter) bool {
	if rt[ml] == 0 {
		return false
	}
	rt[ml]--
	return true
}

// Count returns how many of a tile are on the rack.
func (rt RackTally) Count(ml MachineLetter) int { return int(rt[ml]) }

// NumTiles returns the total number of tiles on the rack.
func (rt RackTally) NumTiles() int {
	n := 0
	for _, c := range rt {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy, for scratch use during move
// generation where a tally is mutated along a walk and must be restored.
func (rt RackTally) Clone() RackTally {
	out := make(RackTally, len(rt))
	copy(out, rt)
	return out
}

// Rack pairs a tally with the alphabet it is drawn from. The tally is the
// only stored form of the rack; String renders it for display on demand.
type Rack struct {
	Tally RackTally
	tm    *TileMapping
}

// NewRack builds an empty rack for the given alphabet.
func NewRack(tm *TileMapping) *Rack {
	return &Rack{Tally: NewRackTally(tm), tm: tm}
}

// RackFromLetters builds a rack from user-visible letters (one rune per
// tile; blanks are written "?"). It returns a *UsageError if any letter
// is not in the alphabet.
func RackFromLetters(tm *TileMapping, letters string) (*Rack, error) {
	r := NewRack(tm)
	for _, ch := range letters {
		ml, err := tm.Val(string(ch))
		if err != nil {
			return nil, err
		}
		if ml.IsBlanked() {
			// a rack never carries a blank pre-designated as a letter
			ml = 0
		}
		r.Tally.Add(ml)
	}
	return r, nil
}

// String renders the rack's letters in alphabet order, blank last as "?".
func (r *Rack) String() string {
	var b strings.Builder
	for ml := 1; ml < len(r.Tally); ml++ {
		for i := 0; i < int(r.Tally[ml]); i++ {
			b.WriteString(r.tm.label(MachineLetter(ml)))
		}
	}
	for i := 0; i < int(r.Tally[0]); i++ {
		b.WriteString("?")
	}
	return b.String()
}

// NumTiles returns the number of tiles currently on the rack.
func (r *Rack) NumTiles() int { return r.Tally.NumTiles() }
