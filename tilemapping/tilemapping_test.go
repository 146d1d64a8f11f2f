package tilemapping

import "testing"

func TestEnglishAlphabetBlankIsZero(t *testing.T) {
	tm := EnglishAlphabet()
	ml, err := tm.Val("?")
	if err != nil {
		t.Fatalf("Val(?) failed: %v", err)
	}
	if ml != 0 {
		t.Errorf("blank MachineLetter = %d, want 0", ml)
	}
	if tm.Score(0) != 0 {
		t.Errorf("blank score = %d, want 0", tm.Score(0))
	}
}

func TestScoreIgnoresBlankDesignation(t *testing.T) {
	tm := EnglishAlphabet()
	a, err := tm.Val("A")
	if err != nil {
		t.Fatal(err)
	}
	blankA := a | BlankMask
	if got, want := tm.Score(blankA), int(tm.tiles[0].Score); got != want {
		t.Errorf("Score(blank-as-A) = %d, want %d (blank's own score)", got, want)
	}
	if got := tm.Score(a); got != 1 {
		t.Errorf("Score(A) = %d, want 1", got)
	}
}

func TestUnblankRoundTrip(t *testing.T) {
	tm := EnglishAlphabet()
	z, err := tm.Val("Z")
	if err != nil {
		t.Fatal(err)
	}
	blanked := z | BlankMask
	if !blanked.IsBlanked() {
		t.Fatal("expected IsBlanked")
	}
	if blanked.Unblank() != z {
		t.Errorf("Unblank() = %d, want %d", blanked.Unblank(), z)
	}
}

func TestTotalTilesMatchesClassicEnglishDistribution(t *testing.T) {
	tm := EnglishAlphabet()
	if got, want := tm.TotalTiles(), 100; got != want {
		t.Errorf("TotalTiles() = %d, want %d", got, want)
	}
}

func TestRackFromLettersRejectsUnknownLabel(t *testing.T) {
	tm := EnglishAlphabet()
	if _, err := RackFromLetters(tm, "CATZ1"); err == nil {
		t.Error("expected an error for an unknown tile label")
	}
}

func TestRackTallyTakeReportsMissingTile(t *testing.T) {
	tm := EnglishAlphabet()
	r, err := RackFromLetters(tm, "CAT")
	if err != nil {
		t.Fatal(err)
	}
	z, _ := tm.Val("Z")
	if r.Tally.Take(z) {
		t.Error("Take on an absent tile should report false")
	}
	c, _ := tm.Val("C")
	if !r.Tally.Take(c) {
		t.Error("Take on a present tile should report true")
	}
	if r.NumTiles() != 2 {
		t.Errorf("NumTiles() after Take = %d, want 2", r.NumTiles())
	}
}

func TestRackTallyCloneIsIndependent(t *testing.T) {
	tm := EnglishAlphabet()
	r, err := RackFromLetters(tm, "CAT")
	if err != nil {
		t.Fatal(err)
	}
	clone := r.Tally.Clone()
	c, _ := tm.Val("C")
	clone.Take(c)
	if r.Tally.Count(c) != 1 {
		t.Error("mutating a clone should not affect the original tally")
	}
}
