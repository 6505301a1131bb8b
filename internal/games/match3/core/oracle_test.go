package core

import (
	"math/rand"
	"testing"
)

func TestFindValidMoveScanOrder(t *testing.T) {
	b := mustBoard(t, 3, [][]Token{
		{0, 1, 0, 2},
		{1, 0, 2, 1},
		{2, 2, 1, 0},
		{0, 1, 0, 2},
	})
	before := b.Clone()

	a, c, ok := FindValidMove(b)
	if !ok {
		t.Fatal("FindValidMove() found nothing on a playable board")
	}
	if a != P(0, 1) || c != P(1, 1) {
		t.Errorf("FindValidMove() = %v-%v, want (0,1)-(1,1)", a, c)
	}
	if !b.Equal(before) {
		t.Error("FindValidMove mutated the board")
	}

	hint, ok := SuggestMove(b)
	if !ok || hint.A != a || hint.B != c {
		t.Errorf("SuggestMove() = %v, %v; want same pair as FindValidMove", hint, ok)
	}
}

func deadlockedBoard(t *testing.T) *Board {
	t.Helper()
	return mustBoard(t, 4, [][]Token{
		{0, 1, 2, 3},
		{2, 3, 0, 1},
		{0, 1, 2, 3},
		{2, 3, 0, 1},
	})
}

func TestDeadlockDetection(t *testing.T) {
	b := deadlockedBoard(t)
	if HasValidMove(b) {
		t.Error("HasValidMove() = true on a deadlocked board")
	}
	if !IsDeadlocked(b) {
		t.Error("IsDeadlocked() = false on a deadlocked board")
	}
	if _, ok := SuggestMove(b); ok {
		t.Error("SuggestMove() returned a hint on a deadlocked board")
	}
}

func TestShuffleProducesPlayableBoard(t *testing.T) {
	b := deadlockedBoard(t)
	countsBefore := b.CountByKind()

	tries, ok := Shuffle(b, rand.New(rand.NewSource(3)), DefaultShuffleAttempts)
	if !ok {
		t.Fatalf("Shuffle() failed after %d tries", tries)
	}
	if IsDeadlocked(b) {
		t.Error("board still deadlocked after Shuffle()")
	}
	if HasMatch(b) {
		t.Error("Shuffle() left a standing match")
	}
	if tries <= DefaultShuffleAttempts {
		countsAfter := b.CountByKind()
		for k := range countsBefore {
			if countsBefore[k] != countsAfter[k] {
				t.Errorf("kind %d count changed from %d to %d", k, countsBefore[k], countsAfter[k])
			}
		}
	}
}

func TestShuffleSingleKindIsBounded(t *testing.T) {
	b := mustBoard(t, 1, [][]Token{
		{0, 0},
		{0, 0},
	})

	tries, ok := Shuffle(b, rand.New(rand.NewSource(1)), 5)
	if ok {
		t.Error("Shuffle() should not succeed with a single kind")
	}
	if tries != 10 {
		t.Errorf("Shuffle() tries = %d, want 10", tries)
	}
}
