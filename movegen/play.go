// Package movegen implements the anchor-walk move generator (component
// E): cross-set precomputation, placement enumeration via the Gordon
// algorithm over a GADDAG, exchange enumeration, and equity scoring.
package movegen

import (
	"github.com/crosswordcore/engine/tilemapping"
)

// PlayKind distinguishes the two shapes a Play can take.
type PlayKind int

const (
	// Place is a tile placement on the board.
	Place PlayKind = iota
	// Exchange is a rack exchange (or a pass, represented as an
	// exchange of zero tiles).
	Exchange
)

// Play is a single generated candidate move. For a Place play, Word is
// the new run of tiles covering [Idx, Idx+len(Word)) along Lane (0 for
// tiles already on the board that the play reads through, a real
// MachineLetter otherwise); for an Exchange play, Word and Score are
// unused and Leave reflects the rack kept after setting Exchanged aside.
type Play struct {
	Kind PlayKind

	Down  bool
	Lane  int
	Idx   int
	Word  tilemapping.MachineWord
	Score int

	Exchanged tilemapping.MachineWord

	// Leave is the rack tally remaining after this play, snapshotted at
	// the moment the play was found (independent of the generator's own
	// scratch tally, which is reused and mutated for every other play).
	Leave tilemapping.RackTally

	Equity float64
}
