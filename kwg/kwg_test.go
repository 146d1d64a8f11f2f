package kwg

import (
	"sort"
	"testing"

	"github.com/crosswordcore/engine/tilemapping"
)

func wordsFromStrings(t *testing.T, tm *tilemapping.TileMapping, ss []string) []tilemapping.MachineWord {
	t.Helper()
	out := make([]tilemapping.MachineWord, len(ss))
	for i, s := range ss {
		w := make(tilemapping.MachineWord, len(s))
		for j, ch := range s {
			ml, err := tm.Val(string(ch))
			if err != nil {
				t.Fatalf("unknown letter %q: %v", ch, err)
			}
			w[j] = ml
		}
		out[i] = w
	}
	sort.Slice(out, func(i, j int) bool { return compareMachineWords(out[i], out[j]) < 0 })
	return out
}

func buildTestGraph(t *testing.T, ss []string) (*Graph, *tilemapping.TileMapping, []tilemapping.MachineWord) {
	t.Helper()
	tm := tilemapping.EnglishAlphabet()
	words := wordsFromStrings(t, tm, ss)
	g, err := NewBuilder().Build(words, DawgOnly)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g, tm, words
}

func TestBuildAcceptsEveryInputWord(t *testing.T) {
	lexicon := []string{"CAT", "CATS", "CATE", "DOG", "DOGS", "DO", "A"}
	g, tm, words := buildTestGraph(t, lexicon)

	for _, w := range words {
		p := g.DawgRoot()
		for _, ml := range w {
			p = g.Seek(p, ml)
			if p < 0 {
				t.Fatalf("word %q not found while seeking", w.UserVisible(tm))
			}
		}
		if !g.Accepts(p) {
			t.Errorf("word %q: final node does not accept", w.UserVisible(tm))
		}
	}
}

func TestSeekRejectsNonWords(t *testing.T) {
	g, tm, _ := buildTestGraph(t, []string{"CAT", "CATS", "DOG"})
	ml, _ := tm.Val("X")
	if p := g.Seek(g.DawgRoot(), ml); p >= 0 {
		t.Errorf("Seek for a tile never in the lexicon returned %d, want -1", p)
	}
}

func TestCountWordsMatchesInputSize(t *testing.T) {
	lexicon := []string{"CAT", "CATS", "CATE", "DOG", "DOGS", "DO", "A"}
	g, _, words := buildTestGraph(t, lexicon)
	root := g.Node(g.DawgRoot()).ArcIndex()
	if got, want := g.CountWords(root), uint32(len(words)); got != want {
		t.Errorf("CountWords(root) = %d, want %d", got, want)
	}
}

func TestGetWordByIndexAndGetWordIndexAreInverse(t *testing.T) {
	lexicon := []string{"CAT", "CATS", "CATE", "DOG", "DOGS", "DO", "A", "AA", "AAH"}
	g, _, words := buildTestGraph(t, lexicon)
	root := g.Node(g.DawgRoot()).ArcIndex()

	var scratch tilemapping.MachineWord
	for idx := uint32(0); idx < uint32(len(words)); idx++ {
		word := g.GetWordByIndex(root, idx, scratch)
		gotIdx := g.GetWordIndex(root, word)
		if gotIdx != int64(idx) {
			t.Errorf("GetWordIndex(GetWordByIndex(%d)) = %d, want %d", idx, gotIdx, idx)
		}
	}

	for _, w := range words {
		if idx := g.GetWordIndex(root, w); idx < 0 {
			t.Errorf("GetWordIndex(%v) = -1, want a valid index", w)
		}
	}
}

func TestGetWordIndexRejectsAbsentWord(t *testing.T) {
	g, tm, _ := buildTestGraph(t, []string{"CAT", "CATS", "DOG"})
	absent := wordsFromStrings(t, tm, []string{"ZEBRA"})[0]
	root := g.Node(g.DawgRoot()).ArcIndex()
	if idx := g.GetWordIndex(root, absent); idx != -1 {
		t.Errorf("GetWordIndex(absent word) = %d, want -1", idx)
	}
}

func TestBuildRejectsUnsortedInput(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	words := wordsFromStrings(t, tm, []string{"CAT", "DOG"})
	words[0], words[1] = words[1], words[0] // unsort
	if _, err := NewBuilder().Build(words, DawgOnly); err == nil {
		t.Error("expected an error for out-of-order input")
	}
}

func TestBuildRejectsDuplicateInput(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	words := wordsFromStrings(t, tm, []string{"CAT", "CAT", "DOG"})
	if _, err := NewBuilder().Build(words, DawgOnly); err == nil {
		t.Error("expected an error for duplicate input")
	}
}

func TestGaddawgBuildHasBothRoots(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	words := wordsFromStrings(t, tm, []string{"CAT", "CATS", "DOG"})
	g, err := NewBuilder().Build(words, Gaddawg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Format() != Gaddawg {
		t.Fatalf("Format() = %v, want Gaddawg", g.Format())
	}
	dawgCount := g.CountWords(g.Node(g.DawgRoot()).ArcIndex())
	if dawgCount != uint32(len(words)) {
		t.Errorf("DAWG word count = %d, want %d", dawgCount, len(words))
	}
	if g.GaddagRoot() == g.DawgRoot() {
		t.Error("GaddagRoot and DawgRoot should address different node offsets")
	}
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	g, _, _ := buildTestGraph(t, []string{"CAT", "CATS", "DOG", "DOGS"})
	buf := g.ToBytes()
	g2, err := FromBytes(buf, DawgOnly)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if g2.NumNodes() != g.NumNodes() {
		t.Fatalf("NumNodes mismatch: %d vs %d", g2.NumNodes(), g.NumNodes())
	}
	for i := 0; i < g.NumNodes(); i++ {
		if g.Node(int32(i)) != g2.Node(int32(i)) {
			t.Fatalf("node %d differs after round trip", i)
		}
	}
}
