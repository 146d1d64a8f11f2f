package tilemapping

// Prebuilt alphabets/tile distributions, generalized from the teacher's
// per-locale tile sets in bag.go (which keyed scores and counts by rune)
// into MachineLetter-indexed TileMapping tables. Ordering within each
// table is alphabetical after the blank, matching the teacher's locale
// constants (IcelandicAlphabet, EnglishAlphabet, PolishAlphabet,
// NorwegianAlphabet in dawg.go).

// EnglishAlphabet returns the standard English Scrabble-family tile
// mapping: A-Z plus the blank, with scores and frequencies matching the
// classic 100-tile English distribution (original_source/alphabet.rs).
func EnglishAlphabet() *TileMapping {
	tm, err := NewTileMapping([]Tile{
		{"?", "?", 2, 0, false},
		{"A", "a", 9, 1, true},
		{"B", "b", 2, 3, false},
		{"C", "c", 2, 3, false},
		{"D", "d", 4, 2, false},
		{"E", "e", 12, 1, true},
		{"F", "f", 2, 4, false},
		{"G", "g", 3, 2, false},
		{"H", "h", 2, 4, false},
		{"I", "i", 9, 1, true},
		{"J", "j", 1, 8, false},
		{"K", "k", 1, 5, false},
		{"L", "l", 4, 1, false},
		{"M", "m", 2, 3, false},
		{"N", "n", 6, 1, false},
		{"O", "o", 8, 1, true},
		{"P", "p", 2, 3, false},
		{"Q", "q", 1, 10, false},
		{"R", "r", 6, 1, false},
		{"S", "s", 4, 1, false},
		{"T", "t", 6, 1, false},
		{"U", "u", 4, 1, true},
		{"V", "v", 2, 4, false},
		{"W", "w", 2, 4, false},
		{"X", "x", 1, 8, false},
		{"Y", "y", 2, 4, false},
		{"Z", "z", 1, 10, false},
	})
	if err != nil {
		panic(err)
	}
	return tm
}

// PolishAlphabet returns the Polish tile mapping, generalized from the
// teacher's initPolishTileSet (bag.go).
func PolishAlphabet() *TileMapping {
	tm, err := NewTileMapping([]Tile{
		{"?", "?", 2, 0, false},
		{"A", "a", 9, 1, true},
		{"Ą", "ą", 1, 5, true},
		{"B", "b", 2, 3, false},
		{"C", "c", 3, 2, false},
		{"Ć", "ć", 1, 6, false},
		{"D", "d", 3, 2, false},
		{"E", "e", 7, 1, true},
		{"Ę", "ę", 1, 5, true},
		{"F", "f", 1, 5, false},
		{"G", "g", 2, 3, false},
		{"H", "h", 2, 3, false},
		{"I", "i", 8, 1, true},
		{"J", "j", 2, 3, false},
		{"K", "k", 3, 3, false},
		{"L", "l", 3, 2, false},
		{"Ł", "ł", 2, 3, false},
		{"M", "m", 3, 2, false},
		{"N", "n", 5, 1, false},
		{"Ń", "ń", 1, 7, false},
		{"O", "o", 6, 1, true},
		{"Ó", "ó", 1, 5, true},
		{"P", "p", 3, 2, false},
		{"R", "r", 4, 1, false},
		{"S", "s", 4, 1, false},
		{"Ś", "ś", 1, 5, false},
		{"T", "t", 3, 2, false},
		{"U", "u", 2, 3, true},
		{"W", "w", 4, 1, false},
		{"Y", "y", 4, 2, false},
		{"Z", "z", 5, 1, false},
		{"Ź", "ź", 1, 9, false},
		{"Ż", "ż", 1, 5, false},
	})
	if err != nil {
		panic(err)
	}
	return tm
}

// NorwegianAlphabet returns the Norwegian (Bokmål) tile mapping,
// generalized from the teacher's initNorwegianTileSet (bag.go).
func NorwegianAlphabet() *TileMapping {
	tm, err := NewTileMapping([]Tile{
		{"?", "?", 2, 0, false},
		{"A", "a", 11, 1, true},
		{"B", "b", 3, 3, false},
		{"C", "c", 1, 8, false},
		{"D", "d", 4, 2, false},
		{"E", "e", 12, 1, true},
		{"F", "f", 2, 4, false},
		{"G", "g", 3, 2, false},
		{"H", "h", 3, 3, false},
		{"I", "i", 5, 1, true},
		{"J", "j", 2, 5, false},
		{"K", "k", 4, 2, false},
		{"L", "l", 5, 1, false},
		{"M", "m", 2, 2, false},
		{"N", "n", 5, 1, false},
		{"O", "o", 4, 2, true},
		{"P", "p", 2, 3, false},
		{"R", "r", 6, 1, false},
		{"S", "s", 4, 1, false},
		{"T", "t", 5, 1, false},
		{"U", "u", 4, 3, true},
		{"V", "v", 3, 3, false},
		{"W", "w", 1, 10, false},
		{"Y", "y", 2, 3, true},
		{"Æ", "æ", 1, 6, true},
		{"Ø", "ø", 2, 4, true},
		{"Å", "å", 2, 3, true},
	})
	if err != nil {
		panic(err)
	}
	return tm
}

// TotalTiles returns the sum of the bag frequency of every tile in the
// mapping, i.e. the size of a fresh bag.
func (tm *TileMapping) TotalTiles() int {
	n := 0
	for _, t := range tm.tiles {
		n += int(t.Freq)
	}
	return n
}

// LetterDistribution is the bag's initial composition: how many of each
// tile a fresh bag holds. It is derived from a TileMapping's Freq field
// but kept as its own type because package bag needs it independent of
// the rest of TileMapping's label/score surface (original_source's
// alphabet.rs keeps "freq" as a field alongside score on the same Tile,
// but the teacher's bag.go instead builds a flat slice of runes up front
// from initTileSet/initEnglishTileSet; this type is the middle ground,
// letting bag.New enumerate without re-deriving the flat list itself).
type LetterDistribution struct {
	tm     *TileMapping
	counts []uint8
}

// NewLetterDistribution reads counts directly off the TileMapping.
func NewLetterDistribution(tm *TileMapping) *LetterDistribution {
	counts := make([]uint8, tm.Length())
	for i := range counts {
		counts[i] = tm.Freq(MachineLetter(i))
	}
	return &LetterDistribution{tm: tm, counts: counts}
}

// TileMapping returns the alphabet this distribution was built from.
func (ld *LetterDistribution) TileMapping() *TileMapping { return ld.tm }

// Count returns how many of a tile a fresh bag holds.
func (ld *LetterDistribution) Count(ml MachineLetter) int {
	base := ml.Unblank()
	if int(base) >= len(ld.counts) {
		return 0
	}
	return int(ld.counts[base])
}

// NumTiles returns the total size of a fresh bag built from this
// distribution.
func (ld *LetterDistribution) NumTiles() int {
	n := 0
	for _, c := range ld.counts {
		n += int(c)
	}
	return n
}
