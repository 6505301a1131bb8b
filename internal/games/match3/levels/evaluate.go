package levels

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// Status is the outcome of evaluating a run against a level.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
)

// Result is the evaluation of a run. Stars is only set when Complete.
type Result struct {
	Status Status
	Stars  int
}

// GoalsMet reports whether every present goal clause holds. A level with
// no clauses is trivially satisfied.
func GoalsMet(run core.RunState, def Definition) bool {
	for _, c := range def.Goals.Clauses() {
		if !c.Met(run) {
			return false
		}
	}
	return true
}

// Evaluate decides whether the run has completed, failed, or is still going.
// It is meant to be called after every settled resolution cycle.
func Evaluate(run core.RunState, def Definition) Result {
	if GoalsMet(run, def) {
		return Result{Status: StatusComplete, Stars: Stars(run.Score, def.StarThresholds)}
	}
	if run.MovesLeft == 0 {
		// The last move's cascades are already in run, so this is the final word.
		if GoalsMet(run, def) {
			return Result{Status: StatusComplete, Stars: Stars(run.Score, def.StarThresholds)}
		}
		return Result{Status: StatusFailed}
	}
	return Result{Status: StatusInProgress}
}

// Stars rates a score against increasing thresholds [t1, t2, t3]:
// 3 at or above t3, 2 at or above t2, 1 at or above t1, else 0.
func Stars(score int, thresholds []int) int {
	for stars := min(len(thresholds), 3); stars > 0; stars-- {
		if score >= thresholds[stars-1] {
			return stars
		}
	}
	return 0
}
