package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:  8,
			Cols:  8,
			Kinds: 6,
		},
		Scoring: ScoringConfig{
			PointsPerGem: 10,
		},
		Shuffle: ShuffleConfig{
			MaxAttempts: 100,
		},
		Animation: AnimationConfig{
			SwapTicks:    6,
			PhaseTicks:   8,
			InvalidTicks: 12,
			ResultTicks:  45,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMatch3YAML
}

// LoadMatch3 loads match-3 configuration.
// Search order: customPath -> ~/.arcade/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func LoadMatch3(customPath string) (Match3Config, error) {
	// Unset keys keep their default values.
	cfg := DefaultMatch3Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = DefaultMatch3Config()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/match3.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = DefaultMatch3Config()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects configs the engine cannot run with.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Rows < 3 || c.Board.Cols < 3:
		return fmt.Errorf("config: board must be at least 3x3, got %dx%d", c.Board.Rows, c.Board.Cols)
	case c.Board.Kinds < 2 || c.Board.Kinds > 6:
		return fmt.Errorf("config: kinds must be in 2..6, got %d", c.Board.Kinds)
	case c.Scoring.PointsPerGem <= 0:
		return fmt.Errorf("config: points_per_gem must be positive, got %d", c.Scoring.PointsPerGem)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	if IsFixedPreset(preset) {
		return
	}

	cfg.Difficulty.MovesBonus = presets[preset].movesBonus
}
