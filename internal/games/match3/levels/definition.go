// Package levels defines match-3 level content and turns run state into
// win/lose decisions, star ratings, and persisted progress.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// ErrUnknownLevel is returned when a level id is not in the table.
// It matches core.ErrInvalidRequest under errors.Is.
var ErrUnknownLevel = fmt.Errorf("levels: unknown level: %w", core.ErrInvalidRequest)

// GemGoal asks for a number of gems of one kind.
type GemGoal struct {
	Type  int `yaml:"type"`
	Count int `yaml:"count"`
}

// Goals holds the optional goal clauses of a level. A zero Score or
// CollectAny and a nil gem goal mean the clause is absent.
type Goals struct {
	Score       int      `yaml:"score,omitempty"`
	CollectGem  *GemGoal `yaml:"collectGem,omitempty"`
	CollectGem2 *GemGoal `yaml:"collectGem2,omitempty"`
	CollectGem3 *GemGoal `yaml:"collectGem3,omitempty"`
	CollectAny  int      `yaml:"collectAny,omitempty"`
}

// Definition is one level record.
type Definition struct {
	ID             int    `yaml:"id"`
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Moves          int    `yaml:"moves"`
	Goals          Goals  `yaml:"goals"`
	StarThresholds []int  `yaml:"starThresholds"`
}

// ClauseKind identifies a goal clause.
type ClauseKind int

const (
	ClauseScore ClauseKind = iota
	ClauseGem
	ClauseAny
)

// Clause is a single goal condition.
type Clause struct {
	Kind   ClauseKind
	Gem    int // gem kind for ClauseGem
	Target int
}

// Progress returns the current value the clause is measured against.
func (c Clause) Progress(run core.RunState) int {
	switch c.Kind {
	case ClauseScore:
		return run.Score
	case ClauseGem:
		return run.CollectedOf(c.Gem)
	case ClauseAny:
		return run.TotalCollected
	default:
		return 0
	}
}

// Met reports whether the clause holds for run.
func (c Clause) Met(run core.RunState) bool {
	return c.Progress(run) >= c.Target
}

// Clauses returns the present goal clauses in a stable order: score, the
// three gem goals, then any-gem.
func (g Goals) Clauses() []Clause {
	var out []Clause
	if g.Score > 0 {
		out = append(out, Clause{Kind: ClauseScore, Target: g.Score})
	}
	for _, gg := range []*GemGoal{g.CollectGem, g.CollectGem2, g.CollectGem3} {
		if gg != nil {
			out = append(out, Clause{Kind: ClauseGem, Gem: gg.Type, Target: gg.Count})
		}
	}
	if g.CollectAny > 0 {
		out = append(out, Clause{Kind: ClauseAny, Target: g.CollectAny})
	}
	return out
}

// Table is the ordered, read-only list of levels supplied at startup.
type Table struct {
	defs []Definition
}

// NewTable wraps defs in their given order.
func NewTable(defs []Definition) *Table {
	return &Table{defs: append([]Definition(nil), defs...)}
}

// Len returns the number of levels.
func (t *Table) Len() int {
	return len(t.defs)
}

// Levels returns a copy of the level list.
func (t *Table) Levels() []Definition {
	return append([]Definition(nil), t.defs...)
}

// ByID returns the first level with the given id.
func (t *Table) ByID(id int) (Definition, error) {
	for _, d := range t.defs {
		if d.ID == id {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
}

// Next returns the level following id in table order.
func (t *Table) Next(id int) (Definition, bool) {
	for i, d := range t.defs {
		if d.ID == id && i+1 < len(t.defs) {
			return t.defs[i+1], true
		}
	}
	return Definition{}, false
}
