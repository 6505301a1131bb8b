package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProgressRoundTrip(t *testing.T) {
	store := openTestStore(t)
	var ps levels.ProgressStore = store.Progress()

	p, err := ps.Load()
	if err != nil {
		t.Fatalf("Load() on empty db failed: %v", err)
	}
	if len(p) != 0 {
		t.Errorf("Expected empty progress, got %v", p)
	}

	p.Complete(1, 3, 1800)
	p.Complete(2, 1, 650)
	if err := ps.Save(p); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := ps.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(loaded))
	}
	if rec := loaded[1]; !rec.Completed || rec.Stars != 3 || rec.BestScore != 1800 {
		t.Errorf("Level 1 record = %+v", rec)
	}
	if !loaded.Unlocked(3) {
		t.Error("Level 3 should be unlocked after completing level 2")
	}
}

func TestProgressNeverRegresses(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProgress(levels.Progress{4: {Completed: true, Stars: 2, BestScore: 1500}}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	// A stale map with weaker values must not downgrade the stored record.
	if err := store.SaveProgress(levels.Progress{4: {Completed: true, Stars: 1, BestScore: 1200}}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if rec := p[4]; rec.Stars != 2 || rec.BestScore != 1500 {
		t.Errorf("Record regressed: %+v", rec)
	}

	if err := store.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}
	p, _ = store.LoadProgress()
	if len(p) != 0 {
		t.Errorf("Expected no records after reset, got %v", p)
	}
}

func TestAttemptLog(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveAttempt(Attempt{
		GameID:    "match3",
		LevelID:   2,
		Score:     720,
		Stars:     1,
		MovesUsed: 14,
		Outcome:   OutcomeComplete,
	})
	if err != nil {
		t.Fatalf("SaveAttempt() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a uuid id, got %q", id)
	}

	if _, err := store.SaveAttempt(Attempt{GameID: "match3", LevelID: 2, Score: 300, Outcome: OutcomeFailed}); err != nil {
		t.Fatalf("SaveAttempt() failed: %v", err)
	}
	if _, err := store.SaveAttempt(Attempt{GameID: "match3_endless", Score: 5000, Outcome: OutcomeAbandoned}); err != nil {
		t.Fatalf("SaveAttempt() failed: %v", err)
	}

	got, err := store.AttemptByID(id)
	if err != nil {
		t.Fatalf("AttemptByID() failed: %v", err)
	}
	if got == nil || got.Score != 720 || got.MovesUsed != 14 || got.Outcome != OutcomeComplete {
		t.Errorf("AttemptByID() = %+v", got)
	}

	missing, err := store.AttemptByID("00000000-0000-0000-0000-000000000000")
	if err != nil || missing != nil {
		t.Errorf("AttemptByID(unknown) = %v, %v", missing, err)
	}

	recent, err := store.RecentAttempts(2, 10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 attempts for level 2, got %d", len(recent))
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected stats for 1 level, got %v", stats)
	}
	if st := stats[2]; st.Attempts != 2 || st.Wins != 1 || st.BestScore != 720 {
		t.Errorf("Level 2 stats = %+v", st)
	}
}

func TestAttemptRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveAttempt(Attempt{ID: "not-a-uuid", GameID: "match3", Outcome: OutcomeFailed}); err == nil {
		t.Error("Expected an error for a malformed attempt id")
	}
}
