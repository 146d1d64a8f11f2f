// Package klv implements the leave-value table: a DAWG over sorted rack
// multisets (component D) with a parallel array of leave values, used by
// the move generator's equity calculation.
package klv

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/crosswordcore/engine/kwg"
	"github.com/crosswordcore/engine/tilemapping"
)

// Logger redirects the package's diagnostics. Default is zerolog.Nop.
var Logger = zerolog.Nop()

// FormatError reports malformed KLV bytes: truncated segments or a
// leaves-segment length that matches neither the f32 nor the legacy
// i16 encoding.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "klv: " + e.Msg }

// KLV is a word graph over sorted rack tiles (blank sorted last) plus a
// leave value per word in that graph, addressed by the same bijective
// GetWordIndex/GetWordByIndex ordering the graph already provides.
type KLV struct {
	Graph  *kwg.Graph
	leaves []float32
}

func readU32LE(buf []byte, r int) uint32 {
	return uint32(buf[r]) | uint32(buf[r+1])<<8 | uint32(buf[r+2])<<16 | uint32(buf[r+3])<<24
}

func appendU32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// New pairs a word graph over sorted rack tiles with its leave values.
// len(leaves) must equal the number of words the graph encodes; callers
// building a table from scratch (e.g. from simulation output, outside
// this module's scope) are responsible for that invariant.
func New(graph *kwg.Graph, leaves []float32) *KLV {
	return &KLV{Graph: graph, leaves: append([]float32(nil), leaves...)}
}

// ToBytes serializes back to the wire format FromBytes reads, always in
// the current f32 encoding (the legacy i16/256 encoding is read-only,
// kept for compatibility with older leave tables).
func (k *KLV) ToBytes() []byte {
	kwgBytes := k.Graph.ToBytes()
	out := make([]byte, 0, 4+len(kwgBytes)+4+len(k.leaves)*4)
	out = appendU32LE(out, uint32(len(kwgBytes)/4))
	out = append(out, kwgBytes...)
	out = appendU32LE(out, uint32(len(k.leaves)))
	for _, v := range k.leaves {
		out = appendU32LE(out, math.Float32bits(v))
	}
	return out
}

// FromBytes parses the wire format:
//
//	<kwg_word_count:u32 little-endian, in 4-byte node units>
//	<kwg bytes, kwg_word_count*4 bytes>
//	<leave_count:u32>
//	<leaves: either leave_count*4 bytes of f32, or leave_count*2 bytes of
//	 i16 scaled by 1/256 — selected by which size matches the remaining
//	 buffer length>
func FromBytes(buf []byte) (*KLV, error) {
	if len(buf) < 8 {
		return nil, &FormatError{Msg: "buffer too short for header"}
	}
	r := 0
	kwgNodeCount := readU32LE(buf, r)
	r += 4
	kwgByteLen := int(kwgNodeCount) * 4
	if r+kwgByteLen > len(buf) {
		return nil, &FormatError{Msg: "truncated kwg segment"}
	}
	graph, err := kwg.FromBytes(buf[r:r+kwgByteLen], kwg.DawgOnly)
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("embedded kwg: %v", err)}
	}
	r += kwgByteLen

	if r+4 > len(buf) {
		return nil, &FormatError{Msg: "truncated leaf count"}
	}
	leaveCount := int(readU32LE(buf, r))
	r += 4

	rest := len(buf) - r
	leaves := make([]float32, leaveCount)
	switch {
	case leaveCount == 0:
		// nothing to read
	case rest == leaveCount*4:
		for i := 0; i < leaveCount; i++ {
			bits := readU32LE(buf, r)
			leaves[i] = math.Float32frombits(bits)
			r += 4
		}
	case rest == leaveCount*2:
		Logger.Debug().Int("count", leaveCount).Msg("klv: reading legacy i16/256 leaves")
		for i := 0; i < leaveCount; i++ {
			v := int16(uint16(buf[r]) | uint16(buf[r+1])<<8)
			leaves[i] = float32(v) / 256
			r += 2
		}
	default:
		return nil, &FormatError{Msg: fmt.Sprintf("leaves segment is %d bytes, matches neither f32 (%d) nor legacy i16 (%d) for %d leaves", rest, leaveCount*4, leaveCount*2, leaveCount)}
	}

	return &KLV{Graph: graph, leaves: leaves}, nil
}

// LeaveValue returns the tabulated equity value of holding the tiles in
// tally after a play, or 0 if the rack's multiset isn't present in the
// table (a rack larger than the table was built for, most commonly).
// scratch is reused across calls to avoid allocating the sorted word on
// every lookup in the move generator's hot path; its contents on return
// are unspecified.
func (k *KLV) LeaveValue(tally tilemapping.RackTally, scratch tilemapping.MachineWord) float32 {
	word := sortedRackWord(tally, scratch)
	if len(word) == 0 {
		return 0
	}
	idx := k.Graph.GetWordIndex(k.Graph.ArcIndex(k.Graph.DawgRoot()), word)
	if idx < 0 || int(idx) >= len(k.leaves) {
		Logger.Warn().Str("rack", fmt.Sprint(word)).Msg("klv: leave not found, using zero value")
		return 0
	}
	return k.leaves[idx]
}

// sortedRackWord renders a tally as a word suitable for KLV lookup: the
// non-blank tiles in ascending tile order, followed by any blanks (tile
// 0), so the blank sorts last.
func sortedRackWord(tally tilemapping.RackTally, scratch tilemapping.MachineWord) tilemapping.MachineWord {
	out := scratch[:0]
	for ml := 1; ml < len(tally); ml++ {
		for i := 0; i < tally.Count(tilemapping.MachineLetter(ml)); i++ {
			out = append(out, tilemapping.MachineLetter(ml))
		}
	}
	for i := 0; i < tally.Count(0); i++ {
		out = append(out, 0)
	}
	return out
}
