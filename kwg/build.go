package kwg

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crosswordcore/engine/tilemapping"
)

// Logger redirects the Builder's debug-level diagnostics. Default is
// zerolog.Nop, so importing this package as a library produces no
// output unless a caller opts in.
var Logger = zerolog.Nop()

// Build compiles a sorted, deduplicated word list into a packed node
// array in the given format. words must already be sorted in ascending
// MachineLetter order with no duplicates; Build validates this and
// returns a *FormatError rather than silently reordering, since a
// caller passing unsorted input almost always has a bug in the sort
// step itself.
func (b *Builder) Build(words []tilemapping.MachineWord, format Format) (*Graph, error) {
	if err := validateSortedUnique(words, format); err != nil {
		return nil, err
	}

	sm := newStateMaker()
	dawgStart := sm.makeDawg(words, 0, false)

	var gaddagStart uint32
	if format == Gaddawg {
		gaddagStart = sm.makeDawg(gaddagInputWords(words), dawgStart, true)
	}

	Logger.Debug().Int("states", len(sm.states)).Int("words", len(words)).Msg("kwg: trie built")

	prev := genPrevIndexes(sm.states)
	dest := make([]uint32, len(sm.states))
	dfg := &statesDefragger{states: sm.states, prevIndexes: prev, destination: dest, numWritten: 2}
	dest[0] = ^uint32(0) // tolerate an empty lexicon
	dfg.defrag(dawgStart)
	if format == Gaddawg {
		dfg.defrag(gaddagStart)
	}
	dest[0] = 0

	if dfg.numWritten > MaxNodes {
		return nil, &FormatError{Msg: fmt.Sprintf("built graph has %d nodes, exceeds MaxNodes (%d)", dfg.numWritten, MaxNodes)}
	}

	Logger.Debug().Uint32("nodes_written", dfg.numWritten).Msg("kwg: defragmentation complete")

	buf := dfg.toBytes(dawgStart, gaddagStart)
	return FromBytes(buf, format)
}

// validateSortedUnique checks ordering and, for Gaddawg builds only,
// rejects tile 0: the GADDAG separator needs that value free to splice
// reverse(prefix) and suffix together unambiguously. A DawgOnly build has
// no such separator, so its words may legitimately contain tile 0 — the
// KLV's rack-multiset words use it to mean "blank tile".
func validateSortedUnique(words []tilemapping.MachineWord, format Format) error {
	for i := 1; i < len(words); i++ {
		c := compareMachineWords(words[i-1], words[i])
		if c == 0 {
			return &FormatError{Msg: fmt.Sprintf("duplicate word at index %d", i)}
		}
		if c > 0 {
			return &FormatError{Msg: fmt.Sprintf("word at index %d is out of order", i)}
		}
	}
	if format != Gaddawg {
		return nil
	}
	for _, w := range words {
		for _, ml := range w {
			if ml == 0 {
				return &FormatError{Msg: "input word contains tile 0 (reserved for the GADDAG separator)"}
			}
		}
	}
	return nil
}
