package levels_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func TestLint(t *testing.T) {
	valid := levels.Definition{
		ID:             1,
		Moves:          10,
		Goals:          levels.Goals{Score: 100},
		StarThresholds: []int{100, 200, 300},
	}

	tests := []struct {
		name   string
		mutate func(*levels.Definition)
		code   string
	}{
		{"zero moves", func(d *levels.Definition) { d.Moves = 0 }, "BAD_MOVES"},
		{"two thresholds", func(d *levels.Definition) { d.StarThresholds = []int{1, 2} }, "BAD_THRESHOLDS"},
		{"flat thresholds", func(d *levels.Definition) { d.StarThresholds = []int{100, 100, 300} }, "BAD_THRESHOLDS"},
		{"no goals", func(d *levels.Definition) { d.Goals = levels.Goals{} }, "NO_GOALS"},
		{"gem type out of range", func(d *levels.Definition) {
			d.Goals.CollectGem = &levels.GemGoal{Type: 9, Count: 3}
		}, "BAD_GEM_TYPE"},
		{"zero gem count", func(d *levels.Definition) {
			d.Goals.CollectGem2 = &levels.GemGoal{Type: 1, Count: 0}
		}, "BAD_COUNT"},
		{"bad id", func(d *levels.Definition) { d.ID = 0 }, "BAD_ID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			errs := levels.Lint(levels.NewTable([]levels.Definition{d}), 6)
			found := false
			for _, e := range errs {
				if e.Code == tc.code {
					found = true
				}
			}
			if !found {
				t.Errorf("Lint() = %v, want a %s finding", errs, tc.code)
			}
		})
	}

	if errs := levels.Lint(levels.NewTable([]levels.Definition{valid}), 6); len(errs) != 0 {
		t.Errorf("valid level has findings: %v", errs)
	}
}

func TestLintIDOrder(t *testing.T) {
	base := levels.Definition{Moves: 10, Goals: levels.Goals{Score: 1}, StarThresholds: []int{1, 2, 3}}
	first, second, third := base, base, base
	first.ID, second.ID, third.ID = 1, 3, 3

	errs := levels.Lint(levels.NewTable([]levels.Definition{first, second, third}), 6)
	codes := map[string]bool{}
	for _, e := range errs {
		codes[e.Code] = true
	}
	if !codes["ID_ORDER"] || !codes["DUPLICATE_ID"] {
		t.Errorf("Lint() = %v, want ID_ORDER and DUPLICATE_ID", errs)
	}
}
