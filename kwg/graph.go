package kwg

import (
	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/crosswordcore/engine/tilemapping"
)

// countCacheSize bounds the memoized-count cache, the same way the
// teacher bounds its crossCache in dawg.go (there: 2048 entries keyed by
// pattern string; here: keyed by node offset). A built graph's counts
// never change, so eviction only costs a recompute, never correctness.
const countCacheSize = 1 << 16

// Graph is a packed node array plus, for a Gaddawg, the offset its
// GADDAG half starts at.
type Graph struct {
	nodes      []Node
	format     Format
	dawgRoot   int32
	gaddagRoot int32

	counts *simplelru.LRU
}

// FromBytes parses a little-endian stream of 4-byte nodes, as written by
// ToBytes or by the offline Builder.
func FromBytes(buf []byte, format Format) (*Graph, error) {
	if len(buf)%4 != 0 {
		return nil, &FormatError{Msg: "node array length not a multiple of 4"}
	}
	n := len(buf) / 4
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		r := i * 4
		v := uint32(buf[r]) | uint32(buf[r+1])<<8 | uint32(buf[r+2])<<16 | uint32(buf[r+3])<<24
		nodes[i] = Node(v)
	}
	g := &Graph{nodes: nodes, format: format, dawgRoot: 0}
	if format == Gaddawg {
		g.gaddagRoot = 1
	}
	lru, _ := simplelru.NewLRU(countCacheSize, nil)
	g.counts = lru
	return g, nil
}

// ToBytes serializes the node array back to its little-endian byte form.
func (g *Graph) ToBytes() []byte {
	out := make([]byte, len(g.nodes)*4)
	for i, n := range g.nodes {
		v := uint32(n)
		r := i * 4
		out[r] = byte(v)
		out[r+1] = byte(v >> 8)
		out[r+2] = byte(v >> 16)
		out[r+3] = byte(v >> 24)
	}
	return out
}

// Format returns whether this graph is DAWG-only or a combined gaddawg.
func (g *Graph) Format() Format { return g.format }

// DawgRoot returns the offset of the node holding the forward-reading
// DAWG root arc (node 0); its ArcIndex is the root's first child.
func (g *Graph) DawgRoot() int32 { return g.dawgRoot }

// GaddagRoot returns the offset of the node holding the GADDAG root arc
// (node 1). Only valid when Format() is Gaddawg.
func (g *Graph) GaddagRoot() int32 { return g.gaddagRoot }

// NumNodes returns the size of the node array.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Node returns the raw node at offset p.
func (g *Graph) Node(p int32) Node { return g.nodes[p] }

// Tile returns the tile of the node at p.
func (g *Graph) Tile(p int32) uint8 { return g.nodes[p].Tile() }

// Accepts reports whether the node at p completes a word.
func (g *Graph) Accepts(p int32) bool { return g.nodes[p].Accepts() }

// IsEnd reports whether the node at p is the last in its sibling list.
func (g *Graph) IsEnd(p int32) bool { return g.nodes[p].IsEnd() }

// ArcIndex returns the child arc index of the node at p.
func (g *Graph) ArcIndex(p int32) int32 { return g.nodes[p].ArcIndex() }

// Seek scans the sibling list starting at the child of p for a node
// whose tile equals the given MachineLetter, returning its offset, or
// -1 if p has no such child (or p is negative, or p has no children).
// Node 0 holds the DAWG root arc, so Seek(0, tile) searches the DAWG
// root's children.
func (g *Graph) Seek(p int32, tile tilemapping.MachineLetter) int32 {
	if p < 0 {
		return -1
	}
	q := g.nodes[p].ArcIndex()
	if q <= 0 {
		return -1
	}
	for g.nodes[q].Tile() != uint8(tile) {
		if g.nodes[q].IsEnd() {
			return -1
		}
		q++
	}
	return q
}

// CountWords returns the number of complete words reachable by
// following p's arc and then every sibling up to the end of its list
// (the same quantity as the original's word_counts[p]: it cumulates
// across siblings, not just p's own subtree). Results are memoized in a
// bounded LRU, since the same subtree is revisited constantly by
// GetWordByIndex/GetWordIndex during move generation.
func (g *Graph) CountWords(p int32) uint32 {
	if v, ok := g.counts.Get(p); ok {
		return v.(uint32)
	}
	count := g.countWordsUncached(p)
	g.counts.Add(p, count)
	return count
}

func (g *Graph) countWordsUncached(p int32) uint32 {
	n := g.nodes[p]
	var count uint32
	if n.Accepts() {
		count = 1
	}
	if ai := n.ArcIndex(); ai != 0 {
		count += g.CountWords(ai)
	}
	if !n.IsEnd() {
		count += g.CountWords(p + 1)
	}
	return count
}

// GetWordByIndex writes the word at lexicographic index idx, starting
// the walk at arc p, into out (which is reset). idx is 0-based among
// the words reachable through p's sibling list. The bijection this
// establishes with GetWordIndex is what makes KLV leave lookups work:
// both functions must walk the same graph the same way.
func (g *Graph) GetWordByIndex(p int32, idx uint32, out tilemapping.MachineWord) tilemapping.MachineWord {
	out = out[:0]
	for {
		n := g.nodes[p]
		if idx == 0 && n.Accepts() {
			out = append(out, tilemapping.MachineLetter(n.Tile()))
			return out
		}
		var wordsHere uint32
		if n.IsEnd() {
			wordsHere = g.CountWords(p)
		} else {
			wordsHere = g.CountWords(p) - g.CountWords(p+1)
		}
		if idx < wordsHere {
			if n.Accepts() {
				idx--
			}
			out = append(out, tilemapping.MachineLetter(n.Tile()))
			p = n.ArcIndex()
		} else {
			idx -= wordsHere
			if n.IsEnd() {
				panic("kwg: index out of range")
			}
			p++
		}
	}
}

// GetWordIndex returns the lexicographic index of word among the words
// reachable through p's sibling list, or -1 if word is not present.
func (g *Graph) GetWordIndex(p int32, word tilemapping.MachineWord) int64 {
	var idx uint32
	for i, ml := range word {
		if p == 0 {
			return -1
		}
		n := g.nodes[p]
		for n.Tile() != uint8(ml) {
			if n.IsEnd() {
				return -1
			}
			idx += g.CountWords(p) - g.CountWords(p+1)
			p++
			n = g.nodes[p]
		}
		if i == len(word)-1 {
			if n.Accepts() {
				return int64(idx)
			}
			return -1
		}
		if n.Accepts() {
			idx++
		}
		p = n.ArcIndex()
	}
	return -1
}
