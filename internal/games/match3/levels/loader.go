package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// levelFile is the YAML document shape: a top-level list of levels.
type levelFile struct {
	Levels []Definition `yaml:"levels"`
}

// Parse decodes a YAML level document. Level order is preserved.
func Parse(data []byte) (*Table, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(lf.Levels) == 0 {
		return nil, fmt.Errorf("levels: document has no levels")
	}
	return NewTable(lf.Levels), nil
}

// LoadFile loads a level table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return t, nil
}

// Load loads the level table.
// Search order: customPath -> ~/.arcade/configs/match3_levels.yaml -> ./configs/match3_levels.yaml -> embedded default
func Load(customPath string) (*Table, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		if t, err := LoadFile(filepath.Join(home, ".arcade", "configs", "match3_levels.yaml")); err == nil {
			return t, nil
		}
	}

	if t, err := LoadFile(filepath.Join("configs", "match3_levels.yaml")); err == nil {
		return t, nil
	}

	return Default(), nil
}

// Default returns the embedded campaign.
func Default() *Table {
	t, err := Parse(defaultLevelsYAML)
	if err != nil {
		// Fallback to a single hardcoded level if the embed is broken
		return NewTable([]Definition{{
			ID:             1,
			Name:           "Warm-up",
			Description:    "Score 500 points.",
			Moves:          20,
			Goals:          Goals{Score: 500},
			StarThresholds: []int{500, 1000, 1500},
		}})
	}
	return t
}
