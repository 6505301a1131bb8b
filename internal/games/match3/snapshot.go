package match3

import (
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateResolving     GameStateType = "resolving"
	StateLevelComplete GameStateType = "level_complete"
	StateLevelFailed   GameStateType = "level_failed"
	StateCampaignDone  GameStateType = "campaign_done"
	StateFinished      GameStateType = "finished"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // level id, 0 for endless
	Score     int
	MovesLeft int
	Collected []int
	Board     [][]m3.Token
	Cursor    m3.Pos
	Selected  *m3.Pos
	State     GameStateType
	Stars     int // stars of the last evaluated result
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state == stateFinished:
		state = StateFinished
	case g.state == stateCampaignDone:
		state = StateCampaignDone
	case g.state == stateLevelResult && g.result.Status == levels.StatusComplete:
		state = StateLevelComplete
	case g.state == stateLevelResult:
		state = StateLevelFailed
	case g.anim.active():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Level: g.level.ID,
		State: state,
		Stars: g.result.Stars,
	}
	if g.selected != nil {
		p := *g.selected
		snap.Selected = &p
	}
	if g.engine != nil {
		run := g.engine.Run()
		snap.Score = run.Score
		snap.MovesLeft = run.MovesLeft
		snap.Collected = run.Collected
		snap.Board = g.engine.Board().Tokens()
		snap.Cursor = g.cursor
	}
	return snap
}
