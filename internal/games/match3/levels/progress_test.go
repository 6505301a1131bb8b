package levels_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func TestProgressStarRatchet(t *testing.T) {
	thresholds := []int{1000, 1500, 2000}
	p := make(levels.Progress)

	rec, changed := p.Complete(3, levels.Stars(1500, thresholds), 1500)
	if !changed || rec.Stars != 2 || rec.BestScore != 1500 || !rec.Completed {
		t.Fatalf("first completion: got %+v changed=%v", rec, changed)
	}

	rec, changed = p.Complete(3, levels.Stars(1200, thresholds), 1200)
	if changed {
		t.Error("weaker run should not change the record")
	}
	if rec.Stars != 2 || rec.BestScore != 1500 {
		t.Errorf("after weaker run: got %+v, want stars=2 best=1500", rec)
	}

	rec, changed = p.Complete(3, levels.Stars(2100, thresholds), 2100)
	if !changed || rec.Stars != 3 || rec.BestScore != 2100 {
		t.Errorf("after stronger run: got %+v changed=%v", rec, changed)
	}
}

func TestProgressRatchetsFieldsIndependently(t *testing.T) {
	p := levels.Progress{1: {Completed: true, Stars: 1, BestScore: 900}}

	rec, changed := p.Complete(1, 2, 800)
	if !changed {
		t.Error("more stars should count as a change")
	}
	if rec.Stars != 2 || rec.BestScore != 900 {
		t.Errorf("got %+v, want stars=2 best=900", rec)
	}
}

func TestProgressUnlocked(t *testing.T) {
	p := levels.Progress{
		1: {Completed: true, Stars: 1, BestScore: 500},
		2: {Completed: false},
	}

	tests := []struct {
		id       int
		expected bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{4, false},
	}

	for _, tc := range tests {
		if got := p.Unlocked(tc.id); got != tc.expected {
			t.Errorf("Unlocked(%d) = %v, want %v", tc.id, got, tc.expected)
		}
	}

	if !(levels.Progress{}).Unlocked(1) {
		t.Error("level 1 should be unlocked with no progress")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := levels.NewMemoryStore()

	p, err := store.Load()
	if err != nil || len(p) != 0 {
		t.Fatalf("empty store Load() = %v, %v", p, err)
	}

	p.Complete(1, 3, 1800)
	if err := store.Save(p); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Mutating the saved map must not leak into the store.
	p.Complete(2, 1, 100)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 1 || loaded[1].Stars != 3 || loaded[1].BestScore != 1800 {
		t.Errorf("Load() = %+v", loaded)
	}
	if loaded.TotalStars() != 3 {
		t.Errorf("TotalStars() = %d, want 3", loaded.TotalStars())
	}
}
