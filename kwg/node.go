// Package kwg implements the packed word graph: a DAWG, or a combined
// DAWG+GADDAG ("gaddawg"), stored as a flat array of 32-bit nodes.
//
// This corresponds to component B of the engine design.
package kwg

// Node is one packed 32-bit entry in a Graph's node array.
//
// Bit layout, low to high:
//
//	bits  0-21 (22 bits): arc_index, the index of this node's child
//	                      (first node of the child sibling list), or 0
//	                      if this letter has no children.
//	bit   22             : is_end, set on the last node of a sibling list.
//	bit   23             : accepts, set if the path ending at this node
//	                      spells a complete word.
//	bits 24-31 (8 bits)  : tile, the MachineLetter this node represents.
//
// Node 0 is conventionally the DAWG root arc, and node 1 (when present)
// the GADDAG root arc.
type Node uint32

const (
	arcIndexMask uint32 = 0x3fffff
	isEndBit     uint32 = 0x400000
	acceptsBit   uint32 = 0x800000
	tileShift           = 24
)

// Tile returns the MachineLetter this node represents.
func (n Node) Tile() uint8 {
	return uint8(uint32(n) >> tileShift)
}

// Accepts reports whether the path ending at this node spells a
// complete word.
func (n Node) Accepts() bool {
	return uint32(n)&acceptsBit != 0
}

// IsEnd reports whether this is the last node in its sibling list.
func (n Node) IsEnd() bool {
	return uint32(n)&isEndBit != 0
}

// ArcIndex returns the index of this node's child sibling list, or 0 if
// this letter is a dead end.
func (n Node) ArcIndex() int32 {
	return int32(uint32(n) & arcIndexMask)
}

// packNode builds a Node from its fields. Panics if arcIndex doesn't fit
// in 22 bits, which is a builder invariant violation rather than a
// reachable runtime condition.
func packNode(tile uint8, accepts, isEnd bool, arcIndex int32) Node {
	if arcIndex < 0 || uint32(arcIndex) > arcIndexMask {
		panic("kwg: arc_index out of range")
	}
	v := uint32(arcIndex)
	if isEnd {
		v |= isEndBit
	}
	if accepts {
		v |= acceptsBit
	}
	v |= uint32(tile) << tileShift
	return Node(v)
}
