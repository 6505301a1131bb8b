package levels

import (
	"fmt"
	"sort"
)

// ValidationError contains details about a level content problem.
type ValidationError struct {
	LevelID int
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("level %d: [%s] %s", e.LevelID, e.Code, e.Message)
}

// Lint checks level content that the engine itself never validates:
//   - ids are positive, unique and contiguous from 1 in table order
//   - moves budget is positive
//   - exactly three strictly increasing star thresholds
//   - at least one goal clause, with positive targets
//   - gem goal types fall within [0, kinds)
//
// It does not decide whether a goal is reachable within the moves budget.
func Lint(t *Table, kinds int) []ValidationError {
	var errs []ValidationError
	add := func(id int, code, format string, args ...any) {
		errs = append(errs, ValidationError{LevelID: id, Code: code, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[int]bool)
	for i, d := range t.defs {
		switch {
		case d.ID < 1:
			add(d.ID, "BAD_ID", "id must be >= 1")
		case seen[d.ID]:
			add(d.ID, "DUPLICATE_ID", "id appears more than once")
		case d.ID != i+1:
			add(d.ID, "ID_ORDER", "expected id %d at position %d", i+1, i+1)
		}
		seen[d.ID] = true

		if d.Moves <= 0 {
			add(d.ID, "BAD_MOVES", "moves must be positive, got %d", d.Moves)
		}
		lintThresholds(d, add)
		lintGoals(d, kinds, add)
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].LevelID < errs[j].LevelID
	})
	return errs
}

type addFunc func(id int, code, format string, args ...any)

func lintThresholds(d Definition, add addFunc) {
	if len(d.StarThresholds) != 3 {
		add(d.ID, "BAD_THRESHOLDS", "want 3 star thresholds, got %d", len(d.StarThresholds))
		return
	}
	for i := 1; i < 3; i++ {
		if d.StarThresholds[i] <= d.StarThresholds[i-1] {
			add(d.ID, "BAD_THRESHOLDS", "thresholds %v are not strictly increasing", d.StarThresholds)
			return
		}
	}
}

func lintGoals(d Definition, kinds int, add addFunc) {
	g := d.Goals
	if len(g.Clauses()) == 0 {
		add(d.ID, "NO_GOALS", "level has no goal clauses")
	}
	if g.Score < 0 {
		add(d.ID, "BAD_COUNT", "score goal %d is negative", g.Score)
	}
	if g.CollectAny < 0 {
		add(d.ID, "BAD_COUNT", "collectAny goal %d is negative", g.CollectAny)
	}
	gemGoals := []struct {
		name string
		goal *GemGoal
	}{
		{"collectGem", g.CollectGem},
		{"collectGem2", g.CollectGem2},
		{"collectGem3", g.CollectGem3},
	}
	for _, entry := range gemGoals {
		name, gg := entry.name, entry.goal
		if gg == nil {
			continue
		}
		if gg.Type < 0 || gg.Type >= kinds {
			add(d.ID, "BAD_GEM_TYPE", "%s type %d outside [0,%d)", name, gg.Type, kinds)
		}
		if gg.Count <= 0 {
			add(d.ID, "BAD_COUNT", "%s count must be positive, got %d", name, gg.Count)
		}
	}
}
