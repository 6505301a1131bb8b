package levels_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func run(score, moves int, collected []int) core.RunState {
	total := 0
	for _, n := range collected {
		total += n
	}
	return core.RunState{Score: score, MovesLeft: moves, Collected: collected, TotalCollected: total}
}

func TestEvaluateScoreGoal(t *testing.T) {
	def := levels.Definition{
		ID:             1,
		Moves:          20,
		Goals:          levels.Goals{Score: 500},
		StarThresholds: []int{500, 1000, 1500},
	}

	tests := []struct {
		name     string
		run      core.RunState
		expected levels.Status
		stars    int
	}{
		{"exactly at target with moves left", run(500, 5, make([]int, 6)), levels.StatusComplete, 1},
		{"below target with moves left", run(499, 5, make([]int, 6)), levels.StatusInProgress, 0},
		{"below target out of moves", run(499, 0, make([]int, 6)), levels.StatusFailed, 0},
		{"met on the very last move", run(510, 0, make([]int, 6)), levels.StatusComplete, 1},
		{"three stars", run(1600, 3, make([]int, 6)), levels.StatusComplete, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := levels.Evaluate(tc.run, def)
			if got.Status != tc.expected {
				t.Errorf("Evaluate() status = %s, want %s", got.Status, tc.expected)
			}
			if got.Stars != tc.stars {
				t.Errorf("Evaluate() stars = %d, want %d", got.Stars, tc.stars)
			}
		})
	}
}

func TestEvaluateConjunction(t *testing.T) {
	def := levels.Definition{
		ID:    4,
		Moves: 20,
		Goals: levels.Goals{
			Score:      500,
			CollectGem: &levels.GemGoal{Type: 0, Count: 10},
		},
		StarThresholds: []int{500, 800, 1200},
	}

	onlyScore := run(700, 10, []int{4, 9, 9, 0, 0, 0})
	if got := levels.Evaluate(onlyScore, def); got.Status != levels.StatusInProgress {
		t.Errorf("score only: status = %s, want in_progress", got.Status)
	}

	onlyGems := run(300, 10, []int{12, 0, 0, 0, 0, 0})
	if got := levels.Evaluate(onlyGems, def); got.Status != levels.StatusInProgress {
		t.Errorf("gems only: status = %s, want in_progress", got.Status)
	}

	both := run(800, 10, []int{10, 0, 0, 0, 0, 0})
	got := levels.Evaluate(both, def)
	if got.Status != levels.StatusComplete || got.Stars != 2 {
		t.Errorf("both: got %+v, want complete with 2 stars", got)
	}
}

func TestEvaluateCollectClauses(t *testing.T) {
	def := levels.Definition{
		Moves: 10,
		Goals: levels.Goals{
			CollectGem:  &levels.GemGoal{Type: 1, Count: 3},
			CollectGem2: &levels.GemGoal{Type: 2, Count: 3},
			CollectGem3: &levels.GemGoal{Type: 5, Count: 3},
			CollectAny:  20,
		},
		StarThresholds: []int{100, 200, 300},
	}

	almost := run(0, 1, []int{5, 3, 3, 3, 3, 2})
	if got := levels.Evaluate(almost, def); got.Status != levels.StatusInProgress {
		t.Errorf("one gem short: status = %s, want in_progress", got.Status)
	}

	done := run(150, 1, []int{5, 3, 3, 3, 3, 3})
	if got := levels.Evaluate(done, def); got.Status != levels.StatusComplete || got.Stars != 1 {
		t.Errorf("all clauses: got %+v, want complete with 1 star", got)
	}
}

func TestEvaluateNoClauses(t *testing.T) {
	def := levels.Definition{Moves: 5, StarThresholds: []int{10, 20, 30}}
	got := levels.Evaluate(run(0, 5, nil), def)
	if got.Status != levels.StatusComplete || got.Stars != 0 {
		t.Errorf("no clauses: got %+v, want complete with 0 stars", got)
	}
}

func TestStars(t *testing.T) {
	thresholds := []int{1000, 1500, 2000}
	tests := []struct {
		score, expected int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{1499, 1},
		{1500, 2},
		{1999, 2},
		{2000, 3},
		{9000, 3},
	}

	for _, tc := range tests {
		if got := levels.Stars(tc.score, thresholds); got != tc.expected {
			t.Errorf("Stars(%d) = %d, want %d", tc.score, got, tc.expected)
		}
	}

	if got := levels.Stars(5000, nil); got != 0 {
		t.Errorf("Stars with no thresholds = %d, want 0", got)
	}
}
