package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestPrintAttemptsFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	id, err := store.SaveAttempt(storage.Attempt{
		GameID:    "match3",
		LevelID:   2,
		Score:     340,
		Stars:     2,
		MovesUsed: 7,
		Outcome:   storage.OutcomeComplete,
	})
	if err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	attempts, err := store.RecentAttempts(2, 10)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}

	var buf bytes.Buffer
	printAttempts(&buf, attempts)
	out := buf.String()
	for _, want := range []string{"complete", "340", id} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	a, err := store.AttemptByID(id)
	if err != nil || a == nil {
		t.Fatalf("AttemptByID(%q) = %v, %v", id, a, err)
	}
	if a.Score != 340 || a.LevelID != 2 {
		t.Errorf("attempt = %+v", a)
	}
}

func TestPrintAttemptsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printAttempts(&buf, nil)
	if !strings.Contains(buf.String(), "No attempts") {
		t.Errorf("output = %q", buf.String())
	}
}
