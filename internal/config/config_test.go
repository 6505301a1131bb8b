package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	def := DefaultMatch3Config()
	if cfg.Board != def.Board || cfg.Scoring != def.Scoring || cfg.Shuffle != def.Shuffle {
		t.Errorf("embedded config %+v differs from hardcoded %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match3.yaml")
	data := []byte("board:\n  rows: 6\n  cols: 7\n  kinds: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 7 || cfg.Board.Kinds != 4 {
		t.Errorf("board = %+v", cfg.Board)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Scoring.PointsPerGem != 10 {
		t.Errorf("points_per_gem = %d, want default 10", cfg.Scoring.PointsPerGem)
	}

	rules := cfg.Rules()
	if rules.Rows != 6 || rules.Cols != 7 || rules.Kinds != 4 || rules.PointsPerGem != 10 {
		t.Errorf("Rules() = %+v", rules)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  kinds: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("kinds=1 should fail validation")
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		wantBonus int
	}{
		{"easy", "easy", 5},
		{"normal", "normal", 0},
		{"hard", "hard", -3},
		{"empty is fixed", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseDifficultyPreset(tc.preset)
			if err != nil {
				t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tc.preset, err)
			}
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, p)
			if cfg.Difficulty.MovesBonus != tc.wantBonus {
				t.Errorf("moves bonus = %d, want %d", cfg.Difficulty.MovesBonus, tc.wantBonus)
			}
			if cfg.Board.Kinds != 6 {
				t.Errorf("kinds changed to %d", cfg.Board.Kinds)
			}
		})
	}

	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLevelMoves(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Difficulty.MovesBonus = -3

	if got := cfg.LevelMoves(20); got != 17 {
		t.Errorf("LevelMoves(20) = %d, want 17", got)
	}
	if got := cfg.LevelMoves(2); got != 1 {
		t.Errorf("LevelMoves(2) = %d, want floor of 1", got)
	}
}
