package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

const sampleYAML = `
levels:
  - id: 1
    name: Intro
    description: Score and collect.
    moves: 12
    goals:
      score: 300
      collectGem: {type: 2, count: 8}
      collectAny: 30
    starThresholds: [300, 600, 900]
  - id: 2
    name: Second
    description: Two colors.
    moves: 15
    goals:
      collectGem: {type: 0, count: 5}
      collectGem2: {type: 1, count: 6}
      collectGem3: {type: 3, count: 7}
    starThresholds: [100, 200, 300]
`

func TestParseLiteralShape(t *testing.T) {
	table, err := levels.Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("got %d levels, want 2", table.Len())
	}

	lvl, err := table.ByID(1)
	if err != nil {
		t.Fatalf("ByID(1) failed: %v", err)
	}
	if lvl.Name != "Intro" || lvl.Moves != 12 {
		t.Errorf("level 1 = %+v", lvl)
	}
	if lvl.Goals.Score != 300 || lvl.Goals.CollectAny != 30 {
		t.Errorf("level 1 goals = %+v", lvl.Goals)
	}
	if lvl.Goals.CollectGem == nil || lvl.Goals.CollectGem.Type != 2 || lvl.Goals.CollectGem.Count != 8 {
		t.Errorf("level 1 collectGem = %+v", lvl.Goals.CollectGem)
	}
	if len(lvl.StarThresholds) != 3 || lvl.StarThresholds[2] != 900 {
		t.Errorf("level 1 thresholds = %v", lvl.StarThresholds)
	}

	second, _ := table.ByID(2)
	clauses := second.Goals.Clauses()
	if len(clauses) != 3 {
		t.Fatalf("level 2 clauses = %+v, want 3 gem clauses", clauses)
	}
	if clauses[2].Gem != 3 || clauses[2].Target != 7 {
		t.Errorf("third clause = %+v", clauses[2])
	}

	next, ok := table.Next(1)
	if !ok || next.ID != 2 {
		t.Errorf("Next(1) = %v, %v", next.ID, ok)
	}
	if _, ok := table.Next(2); ok {
		t.Error("Next on the last level should report false")
	}
}

func TestByIDUnknown(t *testing.T) {
	table := levels.Default()
	_, err := table.ByID(999)
	if !errors.Is(err, levels.ErrUnknownLevel) {
		t.Errorf("ByID(999) error = %v, want ErrUnknownLevel", err)
	}
	if !errors.Is(err, core.ErrInvalidRequest) {
		t.Errorf("ByID(999) error = %v, want it to match core.ErrInvalidRequest", err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := levels.Parse([]byte("levels: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := levels.Parse([]byte("levels: []")); err == nil {
		t.Error("empty level list should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	table, err := levels.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("got %d levels, want 2", table.Len())
	}

	if _, err := levels.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestDefaultCampaignIsClean(t *testing.T) {
	table := levels.Default()
	if table.Len() != 10 {
		t.Errorf("default campaign has %d levels, want 10", table.Len())
	}
	if errs := levels.Lint(table, core.DefaultRules().Kinds); len(errs) != 0 {
		t.Errorf("default campaign has lint errors: %v", errs)
	}
}
