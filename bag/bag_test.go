package bag

import (
	"math/rand"
	"testing"

	"github.com/crosswordcore/engine/tilemapping"
)

func newTestBag(seed int64) (*Bag, *tilemapping.TileMapping) {
	tm := tilemapping.EnglishAlphabet()
	dist := tilemapping.NewLetterDistribution(tm)
	rng := rand.New(rand.NewSource(seed))
	return New(dist, rng), tm
}

func TestNewBagHoldsFullDistribution(t *testing.T) {
	b, _ := newTestBag(1)
	if got, want := b.Count(), 100; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
}

func TestDrawRemovesATileAndShrinksTheBag(t *testing.T) {
	b, _ := newTestBag(2)
	start := b.Count()
	ml, ok := b.Draw()
	if !ok {
		t.Fatal("Draw() on a full bag should succeed")
	}
	if ml == 0 {
		t.Log("drew a blank, which is valid, just noting it")
	}
	if got, want := b.Count(), start-1; got != want {
		t.Errorf("Count() after Draw = %d, want %d", got, want)
	}
}

func TestDrawOnEmptyBagReportsFalse(t *testing.T) {
	b, _ := newTestBag(3)
	b.DrawN(b.Count())
	if _, ok := b.Draw(); ok {
		t.Error("Draw() on an empty bag should report ok=false")
	}
}

func TestDrawNStopsAtBagExhaustion(t *testing.T) {
	b, _ := newTestBag(4)
	total := b.Count()
	drawn := b.DrawN(total + 50)
	if len(drawn) != total {
		t.Errorf("DrawN(more than available) returned %d tiles, want %d", len(drawn), total)
	}
	if b.Count() != 0 {
		t.Errorf("Count() after draining = %d, want 0", b.Count())
	}
}

func TestReplenishToolsRackUpToSize(t *testing.T) {
	b, tm := newTestBag(5)
	tally := tilemapping.NewRackTally(tm)
	c, _ := tm.Val("C")
	tally.Add(c)
	tally.Add(c)

	b.Replenish(tally, 7)
	if got, want := tally.NumTiles(), 7; got != want {
		t.Errorf("rack size after Replenish = %d, want %d", got, want)
	}
}

func TestReplenishStopsWhenBagRunsDry(t *testing.T) {
	b, tm := newTestBag(6)
	b.DrawN(b.Count() - 2) // leave exactly 2 tiles
	tally := tilemapping.NewRackTally(tm)
	b.Replenish(tally, 7)
	if got, want := tally.NumTiles(), 2; got != want {
		t.Errorf("rack size after Replenish with a nearly-empty bag = %d, want %d", got, want)
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after replenishing from a near-empty bag", b.Count())
	}
}

func TestExchangeAllowedRequiresAFullRackLeftBehind(t *testing.T) {
	b, _ := newTestBag(7)
	b.DrawN(b.Count() - 6) // leave 6 tiles
	if b.ExchangeAllowed(7) {
		t.Error("ExchangeAllowed(7) should be false with only 6 tiles left")
	}
	if !b.ExchangeAllowed(6) {
		t.Error("ExchangeAllowed(6) should be true with exactly 6 tiles left")
	}
}

func TestPutBackSingleTileInsertsSomewhere(t *testing.T) {
	b, tm := newTestBag(8)
	before := b.Count()
	z, _ := tm.Val("Z")
	rng := rand.New(rand.NewSource(9))
	b.PutBack(rng, []tilemapping.MachineLetter{z})
	if got, want := b.Count(), before+1; got != want {
		t.Errorf("Count() after PutBack(1 tile) = %d, want %d", got, want)
	}
}

func TestPutBackPreservesTotalTileCounts(t *testing.T) {
	b, _ := newTestBag(10)
	// draw every tile out, then put a chunk of them back, and check that
	// every letter's count is conserved across the round trip.
	drawn := b.DrawN(b.Count())

	rng := rand.New(rand.NewSource(11))
	returned := drawn[:len(drawn)/2]
	b.PutBack(rng, returned)

	inBag := make(map[tilemapping.MachineLetter]int)
	for _, ml := range b.tiles {
		inBag[ml]++
	}
	if b.Count() != len(returned) {
		t.Fatalf("Count() after PutBack = %d, want %d", b.Count(), len(returned))
	}
	gotCounts := make(map[tilemapping.MachineLetter]int)
	for _, ml := range returned {
		gotCounts[ml]++
	}
	if len(inBag) != len(gotCounts) {
		t.Fatalf("distinct letters in bag after PutBack = %d, want %d", len(inBag), len(gotCounts))
	}
	for ml, n := range gotCounts {
		if inBag[ml] != n {
			t.Errorf("bag holds %d of %v after PutBack, want %d", inBag[ml], ml, n)
		}
	}
}

func TestShuffleIsDeterministicForAFixedSeed(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	dist := tilemapping.NewLetterDistribution(tm)

	rng1 := rand.New(rand.NewSource(42))
	b1 := New(dist, rng1)

	rng2 := rand.New(rand.NewSource(42))
	b2 := New(dist, rng2)

	for i := range b1.tiles {
		if b1.tiles[i] != b2.tiles[i] {
			t.Fatalf("two bags built from the same seed diverge at tile %d", i)
		}
	}
}
