// Package tilemapping implements the tile alphabet: the ordered table of
// tiles with their display labels, scores, distribution frequencies and
// vowel flags, plus the dense rack-tally representation used throughout
// the rest of the engine.
//
// This corresponds to component A of the engine design: Alphabet &
// Board-Layout (the layout half lives in package board).
package tilemapping

import (
	"fmt"
)

// MachineLetter is a tile encoded as a small integer, 0..Length()-1.
// 0 always denotes the blank. On the board or in a word buffer, a tile
// may carry the high-bit "blank-designated-as-letter" marker: t | 0x80
// means "blank playing as tile t". On a rack, blanks are always stored
// as plain 0.
type MachineLetter uint8

// BlankMask is the high bit used to mark a blank tile that has been
// designated to represent a particular letter.
const BlankMask MachineLetter = 0x80

// Unblank strips the blank-designation bit, returning the underlying tile.
func (ml MachineLetter) Unblank() MachineLetter {
	return ml &^ BlankMask
}

// IsBlanked returns true if this tile is a blank playing as some letter.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask != 0
}

// MachineWord is a sequence of MachineLetters, e.g. a word or a board run.
type MachineWord []MachineLetter

// UserVisible renders a MachineWord using the given TileMapping's labels.
func (mw MachineWord) UserVisible(tm *TileMapping) string {
	var out []byte
	for _, ml := range mw {
		out = append(out, []byte(tm.label(ml))...)
	}
	return string(out)
}

// Tile holds the static properties of one letter in an alphabet.
type Tile struct {
	Label      string
	BlankLabel string
	Freq       uint8
	Score      int8
	IsVowel    bool
}

// TileMapping is an ordered, immutable table of tiles. Index 0 is always
// the blank. It supports O(1) lookups in both directions (letter string
// to MachineLetter, and MachineLetter to display label).
type TileMapping struct {
	tiles []Tile
	vals  map[string]MachineLetter
}

// UsageError reports a violation at the snapshot/rack construction
// boundary: tiles outside the alphabet's range, or other usage errors
// that are the caller's responsibility, not a format or programmer bug.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "tilemapping: " + e.Msg }

// NewTileMapping builds a TileMapping from an ordered tile list. tiles[0]
// must be the blank (Label "?", Score 0).
func NewTileMapping(tiles []Tile) (*TileMapping, error) {
	if len(tiles) == 0 || tiles[0].Label != "?" {
		return nil, &UsageError{Msg: "tile 0 must be the blank, labelled \"?\""}
	}
	if len(tiles) > 64 {
		// A 64-bit cross-set mask has one bit per tile: the blank plus at
		// most 63 non-blank tiles.
		return nil, &UsageError{Msg: "alphabet too large for a 64-bit cross-set mask"}
	}
	tm := &TileMapping{
		tiles: append([]Tile(nil), tiles...),
		vals:  make(map[string]MachineLetter, len(tiles)*2),
	}
	for i, t := range tm.tiles {
		ml := MachineLetter(i)
		tm.vals[t.Label] = ml
		// The blank's own BlankLabel ("?") must keep mapping to plain 0.
		if t.BlankLabel != "" && i != 0 {
			tm.vals[t.BlankLabel] = ml | BlankMask
		}
	}
	return tm, nil
}

// Length returns the size of the alphabet, including the blank.
func (tm *TileMapping) Length() int { return len(tm.tiles) }

// Score returns the face score of a tile. The blank-designation bit is
// masked off first, matching the scoring rule in the data model: a
// designated blank always scores according to tile 0 (typically zero).
func (tm *TileMapping) Score(ml MachineLetter) int {
	base := ml.Unblank()
	if ml.IsBlanked() {
		return int(tm.tiles[0].Score)
	}
	if int(base) >= len(tm.tiles) {
		return 0
	}
	return int(tm.tiles[base].Score)
}

// Freq returns the bag frequency of a tile.
func (tm *TileMapping) Freq(ml MachineLetter) uint8 {
	base := ml.Unblank()
	if int(base) >= len(tm.tiles) {
		return 0
	}
	return tm.tiles[base].Freq
}

// IsVowel returns true if the tile (ignoring the blank-designation bit)
// is a vowel.
func (tm *TileMapping) IsVowel(ml MachineLetter) bool {
	base := ml.Unblank()
	if int(base) >= len(tm.tiles) {
		return false
	}
	return tm.tiles[base].IsVowel
}

// label returns the display label for a board cell value: 0 is the
// empty-square label, a blank-designated tile uses its lowercase form.
func (tm *TileMapping) label(ml MachineLetter) string {
	if ml == 0 {
		return "."
	}
	base := ml.Unblank()
	if int(base) >= len(tm.tiles) {
		return "?"
	}
	if ml.IsBlanked() {
		return tm.tiles[base].BlankLabel
	}
	return tm.tiles[base].Label
}

// LabelForBoard is the exported form of label, per §4.A.
func (tm *TileMapping) LabelForBoard(ml MachineLetter) string { return tm.label(ml) }

// Val converts a one-character label (or its lowercase blank-designated
// form) to a MachineLetter.
func (tm *TileMapping) Val(label string) (MachineLetter, error) {
	ml, ok := tm.vals[label]
	if !ok {
		return 0, &UsageError{Msg: fmt.Sprintf("unknown tile label %q", label)}
	}
	return ml, nil
}
