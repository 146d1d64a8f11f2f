// Package bag implements the drawable tile pool: a shuffled multiset of
// MachineLetters, generalized from the teacher's rune-keyed TileSet/Bag
// to a tilemapping.LetterDistribution-driven pool.
package bag

import (
	"math/rand"

	"github.com/crosswordcore/engine/tilemapping"
)

// Bag holds the undrawn tiles for a game. Unlike the teacher's slice of
// *Tile pointers drawn by swap-remove (order doesn't matter there since
// every draw is already a fresh random index), this bag is logically
// ordered and is drawn from the tail, so that PutBack's order-preserving
// merge of "the tiles still here" against "the tiles coming back" has a
// well-defined "here" to merge against.
type Bag struct {
	tiles []tilemapping.MachineLetter
}

// New builds a fresh, shuffled bag from a distribution.
func New(dist *tilemapping.LetterDistribution, rng *rand.Rand) *Bag {
	tm := dist.TileMapping()
	b := &Bag{tiles: make([]tilemapping.MachineLetter, 0, dist.NumTiles())}
	for ml := 0; ml < tm.Length(); ml++ {
		for i := 0; i < dist.Count(tilemapping.MachineLetter(ml)); i++ {
			b.tiles = append(b.tiles, tilemapping.MachineLetter(ml))
		}
	}
	b.Shuffle(rng)
	return b
}

// Shuffle randomizes the remaining tiles in place.
func (b *Bag) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Count returns the number of tiles remaining in the bag.
func (b *Bag) Count() int { return len(b.tiles) }

// Draw removes and returns one tile from the bag. ok is false if the bag
// is empty.
func (b *Bag) Draw() (ml tilemapping.MachineLetter, ok bool) {
	n := len(b.tiles)
	if n == 0 {
		return 0, false
	}
	ml = b.tiles[n-1]
	b.tiles = b.tiles[:n-1]
	return ml, true
}

// DrawN draws up to n tiles (fewer if the bag runs out first).
func (b *Bag) DrawN(n int) []tilemapping.MachineLetter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	out := append([]tilemapping.MachineLetter(nil), b.tiles[len(b.tiles)-n:]...)
	b.tiles = b.tiles[:len(b.tiles)-n]
	return out
}

// Replenish draws tiles from the bag to top a rack tally back up to
// rackSize, drawing as many as are available if the bag runs dry first.
func (b *Bag) Replenish(tally tilemapping.RackTally, rackSize int) {
	need := rackSize - tally.NumTiles()
	for i := 0; i < need; i++ {
		ml, ok := b.Draw()
		if !ok {
			return
		}
		tally.Add(ml)
	}
}

// ExchangeAllowed reports whether the bag holds enough tiles for an
// exchange to be a legal move, mirroring the teacher's rule that an
// exchange requires at least a full rack's worth of tiles left behind.
func (b *Bag) ExchangeAllowed(rackSize int) bool {
	return b.Count() >= rackSize
}

// PutBack returns tiles (e.g. from a cancelled exchange, or in a replay
// harness) to the bag. A single tile is inserted at a uniformly random
// position. Several tiles are first shuffled among themselves, then
// merged in one at a time, each position drawn from the tiles already in
// the bag or the (shuffled) tiles being returned with probability
// proportional to how many of each group remain unplaced — the tiles
// already in the bag keep their relative order. This is ported
// exactly from the original bag's put_back, which is the only place the
// distilled spec leaves this operation's exact statistics unspecified.
func (b *Bag) PutBack(rng *rand.Rand, tiles []tilemapping.MachineLetter) {
	switch len(tiles) {
	case 0:
		return
	case 1:
		pos := rng.Intn(len(b.tiles) + 1)
		b.tiles = append(b.tiles, 0)
		copy(b.tiles[pos+1:], b.tiles[pos:])
		b.tiles[pos] = tiles[0]
		return
	}

	shuffled := append([]tilemapping.MachineLetter(nil), tiles...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	old := b.tiles
	oldRemaining := len(old)
	newRemaining := len(shuffled)
	out := make([]tilemapping.MachineLetter, 0, oldRemaining+newRemaining)
	oi, ni := 0, 0
	for oldRemaining > 0 || newRemaining > 0 {
		takeOld := false
		switch {
		case newRemaining == 0:
			takeOld = true
		case oldRemaining == 0:
			takeOld = false
		default:
			takeOld = rng.Intn(oldRemaining+newRemaining) < oldRemaining
		}
		if takeOld {
			out = append(out, old[oi])
			oi++
			oldRemaining--
		} else {
			out = append(out, shuffled[ni])
			ni++
			newRemaining--
		}
	}
	b.tiles = out
}
