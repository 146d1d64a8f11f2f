package kwg

import (
	"sort"

	"github.com/crosswordcore/engine/tilemapping"
)

// Builder constructs a Graph offline from a word list. It implements
// component C: an incremental trie with on-the-fly suffix minimization,
// optionally followed by a GADDAG phase whose nodes are stitched onto
// the already-built DAWG instead of re-minimized from scratch.
//
// A Builder holds no state between calls: each Build starts from an
// empty trie.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() *Builder { return &Builder{} }

// transition is an unconfirmed trie edge still being assembled; once its
// subtree is complete it is folded into a dedup'd state via makeState.
type transition struct {
	tile     uint8
	accepts  bool
	arcIndex uint32
}

// state is a dedup'd, immutable trie node: one tile edge, whether it
// accepts, its child arc, and a link to the next sibling. Two states
// with identical fields are always merged into the same index, which is
// what gives the built graph its DAWG suffix-sharing.
type state struct {
	tile      uint8
	accepts   bool
	arcIndex  uint32
	nextIndex uint32
}

type stateMaker struct {
	states []state
	finder map[state]uint32
}

func newStateMaker() *stateMaker {
	sm := &stateMaker{finder: make(map[state]uint32)}
	// The sink state always exists at index 0.
	sink := state{}
	sm.states = append(sm.states, sink)
	sm.finder[sink] = 0
	return sm
}

// makeState folds a completed batch of sibling transitions (already in
// trie order, to be linked last-first) into dedup'd states, returning
// the index of the first (leftmost) sibling.
func (sm *stateMaker) makeState(transitions []transition) uint32 {
	var ret uint32
	for i := len(transitions) - 1; i >= 0; i-- {
		t := transitions[i]
		s := state{tile: t.tile, accepts: t.accepts, arcIndex: t.arcIndex, nextIndex: ret}
		if idx, ok := sm.finder[s]; ok {
			ret = idx
		} else {
			ret = uint32(len(sm.states))
			sm.states = append(sm.states, s)
			sm.finder[s] = ret
		}
	}
	return ret
}

// transitionStack mirrors the Rust TransitionStack: a flat buffer of
// in-progress transitions plus a stack of batch-start offsets, one per
// trie depth currently open.
type transitionStack struct {
	transitions []transition
	indexes     []int
}

func (ts *transitionStack) push(tile uint8) {
	ts.transitions = append(ts.transitions, transition{tile: tile})
	ts.indexes = append(ts.indexes, len(ts.transitions))
}

func (ts *transitionStack) pop(sm *stateMaker) {
	n := len(ts.indexes)
	startOfBatch := ts.indexes[n-1]
	ts.indexes = ts.indexes[:n-1]
	newArcIndex := sm.makeState(ts.transitions[startOfBatch:])
	ts.transitions[startOfBatch-1].arcIndex = newArcIndex
	ts.transitions = ts.transitions[:startOfBatch]
}

// makeDawg threads sortedWords (already validated sorted, deduped, and
// sharing the builder's tile alphabet) into the trie under construction,
// returning the resulting root arc index. When isGaddagPhase is set, a
// word ending in tile 0 (the GADDAG separator) is not terminated with
// its own accepts transition; instead its arc is redirected into the
// already-built DAWG rooted at dawgStartState, stitching the GADDAG's
// suffix continuation onto shared DAWG nodes instead of re-minimizing
// them.
func (sm *stateMaker) makeDawg(sortedWords []tilemapping.MachineWord, dawgStartState uint32, isGaddagPhase bool) uint32 {
	ts := &transitionStack{}
	for i, word := range sortedWords {
		thisLen := len(word)
		prefixLen := 0
		if i > 0 {
			prevLen := len(ts.indexes)
			minLen := thisLen
			if prevLen < minLen {
				minLen = prevLen
			}
			prevWord := sortedWords[i-1]
			for prefixLen < minLen && prevWord[prefixLen] == word[prefixLen] {
				prefixLen++
			}
			for k := prefixLen; k < prevLen; k++ {
				ts.pop(sm)
			}
		}
		for _, ml := range word[prefixLen:thisLen] {
			ts.push(uint8(ml))
		}
		transitionsLen := len(ts.transitions)
		if isGaddagPhase && word[thisLen-1] == 0 {
			ts.indexes = ts.indexes[:len(ts.indexes)-1]
			p := dawgStartState
			for k := thisLen - 2; k >= 0; k-- {
				sought := uint8(word[k])
				for {
					if sm.states[p].tile == sought {
						p = sm.states[p].arcIndex
						break
					}
					p = sm.states[p].nextIndex
				}
			}
			ts.transitions[transitionsLen-1].arcIndex = p
		} else {
			ts.transitions[transitionsLen-1].accepts = true
		}
	}
	for len(ts.indexes) > 0 {
		ts.pop(sm)
	}
	return sm.makeState(ts.transitions)
}

// gaddagInputWords expands each word into its GADDAG drowwords: the full
// reversal (anchor at the last tile, empty suffix) plus, for every
// interior split point, reverse(prefix)+separator (the suffix continues
// into the shared DAWG via makeDawg's stitching, not as literal tiles
// here). Results are deduped (distinct words can share drowwords) and
// sorted, as makeDawg requires sorted, deduped input.
func gaddagInputWords(words []tilemapping.MachineWord) []tilemapping.MachineWord {
	seen := make(map[string]tilemapping.MachineWord)
	for _, w := range words {
		rev := make(tilemapping.MachineWord, len(w))
		for i, ml := range w {
			rev[len(w)-1-i] = ml
		}
		seen[machineWordKey(rev)] = rev

		withSep := append(append(tilemapping.MachineWord(nil), rev...), 0)
		for splitLen := 1; splitLen < len(w); splitLen++ {
			entry := append(tilemapping.MachineWord(nil), withSep[splitLen:]...)
			seen[machineWordKey(entry)] = entry
		}
	}
	out := make([]tilemapping.MachineWord, 0, len(seen))
	for _, w := range seen {
		out = append(out, w)
	}
	sortMachineWords(out)
	return out
}

func machineWordKey(w tilemapping.MachineWord) string {
	b := make([]byte, len(w))
	for i, ml := range w {
		b[i] = byte(ml)
	}
	return string(b)
}

func sortMachineWords(words []tilemapping.MachineWord) {
	sort.Slice(words, func(i, j int) bool {
		return compareMachineWords(words[i], words[j]) < 0
	})
}

func compareMachineWords(a, b tilemapping.MachineWord) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
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
