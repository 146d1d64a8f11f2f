package klv

import (
	"math"
	"sort"
	"testing"

	"github.com/crosswordcore/engine/kwg"
	"github.com/crosswordcore/engine/tilemapping"
)

func buildTestKLV(t *testing.T, tm *tilemapping.TileMapping, leaves []string, values []float32) *KLV {
	t.Helper()
	if len(leaves) != len(values) {
		t.Fatal("leaves/values length mismatch in test setup")
	}
	words := make([]tilemapping.MachineWord, len(leaves))
	for i, s := range leaves {
		w := make(tilemapping.MachineWord, len(s))
		for j, ch := range s {
			ml, err := tm.Val(string(ch))
			if err != nil {
				t.Fatalf("unknown letter %q: %v", ch, err)
			}
			w[j] = ml
		}
		words[i] = w
	}
	type pair struct {
		w tilemapping.MachineWord
		v float32
	}
	pairs := make([]pair, len(words))
	for i := range words {
		pairs[i] = pair{words[i], values[i]}
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].w, pairs[j].w
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		for k := 0; k < n; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	sortedWords := make([]tilemapping.MachineWord, len(pairs))
	sortedValues := make([]float32, len(pairs))
	for i, p := range pairs {
		sortedWords[i] = p.w
		sortedValues[i] = p.v
	}

	g, err := kwg.NewBuilder().Build(sortedWords, kwg.DawgOnly)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return New(g, sortedValues)
}

func TestLeaveValueLooksUpSortedRack(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	// KLV leaves are single-blank-last sorted racks.
	k := buildTestKLV(t, tm, []string{"EST", "AEIOU"}, []float32{1.5, -3.25})

	tally := tilemapping.NewRackTally(tm)
	for _, ch := range "TSE" { // unsorted input; LeaveValue sorts internally
		ml, _ := tm.Val(string(ch))
		tally.Add(ml)
	}
	scratch := make(tilemapping.MachineWord, 0, 7)
	if got, want := k.LeaveValue(tally, scratch), float32(1.5); got != want {
		t.Errorf("LeaveValue(EST) = %v, want %v", got, want)
	}
}

func TestLeaveValueLooksUpRackContainingBlank(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	// "?" is the blank (tile 0); in a KLV rack word it sorts last, after
	// every real letter.
	k := buildTestKLV(t, tm, []string{"AB?", "EST"}, []float32{12.0, 1.5})

	tally := tilemapping.NewRackTally(tm)
	for _, ch := range "BA?" { // unsorted input; LeaveValue sorts internally
		ml, err := tm.Val(string(ch))
		if err != nil {
			t.Fatal(err)
		}
		tally.Add(ml)
	}
	scratch := make(tilemapping.MachineWord, 0, 7)
	if got, want := k.LeaveValue(tally, scratch), float32(12.0); got != want {
		t.Errorf("LeaveValue(AB?) = %v, want %v", got, want)
	}
}

func TestLeaveValueUnknownRackReturnsZero(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	k := buildTestKLV(t, tm, []string{"EST"}, []float32{1.5})

	tally := tilemapping.NewRackTally(tm)
	for _, ch := range "ZZZZ" {
		ml, _ := tm.Val(string(ch))
		tally.Add(ml)
	}
	scratch := make(tilemapping.MachineWord, 0, 7)
	if got := k.LeaveValue(tally, scratch); got != 0 {
		t.Errorf("LeaveValue(unknown) = %v, want 0", got)
	}
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	k := buildTestKLV(t, tm, []string{"EST", "AEIOU", "QU"}, []float32{1.5, -3.25, 8.0})

	buf := k.ToBytes()
	k2, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	tally := tilemapping.NewRackTally(tm)
	for _, ch := range "EST" {
		ml, _ := tm.Val(string(ch))
		tally.Add(ml)
	}
	scratch := make(tilemapping.MachineWord, 0, 7)
	if got, want := k2.LeaveValue(tally, scratch), float32(1.5); got != want {
		t.Errorf("round-tripped LeaveValue(EST) = %v, want %v", got, want)
	}
}

func TestFromBytesDetectsLegacyI16Encoding(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	// Build a tiny one-word kwg by hand via the builder, then splice a
	// legacy-width (2 bytes/leaf) leaves segment onto it.
	ml, _ := tm.Val("A")
	g, err := kwg.NewBuilder().Build([]tilemapping.MachineWord{{ml}}, kwg.DawgOnly)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	kwgBytes := g.ToBytes()

	buf := make([]byte, 0)
	buf = appendU32LE(buf, uint32(len(kwgBytes)/4))
	buf = append(buf, kwgBytes...)
	buf = appendU32LE(buf, 1) // one leave
	scaled := int16(2.5 * 256)
	buf = append(buf, byte(uint16(scaled)), byte(uint16(scaled)>>8))

	k, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("FromBytes(legacy): %v", err)
	}
	tally := tilemapping.NewRackTally(tm)
	tally.Add(ml)
	scratch := make(tilemapping.MachineWord, 0, 7)
	got := k.LeaveValue(tally, scratch)
	if math.Abs(float64(got-2.5)) > 1e-4 {
		t.Errorf("LeaveValue from legacy i16 encoding = %v, want ~2.5", got)
	}
}

func TestFromBytesRejectsMalformedLeavesSegment(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	ml, _ := tm.Val("A")
	g, err := kwg.NewBuilder().Build([]tilemapping.MachineWord{{ml}}, kwg.DawgOnly)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	kwgBytes := g.ToBytes()

	buf := make([]byte, 0)
	buf = appendU32LE(buf, uint32(len(kwgBytes)/4))
	buf = append(buf, kwgBytes...)
	buf = appendU32LE(buf, 2) // claims 2 leaves
	buf = append(buf, 0, 0, 0)

	if _, err := FromBytes(buf); err == nil {
		t.Error("expected an error for a leaves segment matching neither encoding")
	}
}
