// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Shuffle    ShuffleConfig    `yaml:"shuffle"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid shape and gem variety.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Kinds int `yaml:"kinds"` // number of gem colors, 2..6 for the terminal palette
}

// ScoringConfig defines how removed gems turn into points.
type ScoringConfig struct {
	PointsPerGem int `yaml:"points_per_gem"`
}

// ShuffleConfig bounds the deadlock reshuffle.
type ShuffleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// AnimationConfig defines how many ticks the UI lingers on each phase.
// The engine itself has no timers; these only pace the presentation.
type AnimationConfig struct {
	SwapTicks    int `yaml:"swap_ticks"`    // swapped pair highlight
	PhaseTicks   int `yaml:"phase_ticks"`   // per cascade phase
	InvalidTicks int `yaml:"invalid_ticks"` // rejected swap flash
	ResultTicks  int `yaml:"result_ticks"`  // level complete/failed banner before input is accepted
}

// DifficultyConfig selects a preset and tweaks level budgets.
type DifficultyConfig struct {
	Preset     string `yaml:"preset"`      // easy, normal, hard, fixed
	MovesBonus int    `yaml:"moves_bonus"` // added to every level's moves budget
}

// Rules converts the config into engine rules.
func (c Match3Config) Rules() core.Rules {
	return core.Rules{
		Rows:            c.Board.Rows,
		Cols:            c.Board.Cols,
		Kinds:           c.Board.Kinds,
		PointsPerGem:    c.Scoring.PointsPerGem,
		ShuffleAttempts: c.Shuffle.MaxAttempts,
	}
}

// LevelMoves applies the moves bonus to a level budget, never going below 1.
func (c Match3Config) LevelMoves(moves int) int {
	return max(1, moves+c.Difficulty.MovesBonus)
}
