package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetTuning is what a preset changes relative to the loaded config.
// Gem kinds are left alone so level goals keep naming valid colors.
type presetTuning struct {
	movesBonus int
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {movesBonus: 5},
	DifficultyNormal: {movesBonus: 0},
	DifficultyHard:   {movesBonus: -3},
	DifficultyFixed:  {},
}

// ParseDifficultyPreset validates a preset name. An empty name means fixed:
// the config file is used as written.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return p, nil
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
