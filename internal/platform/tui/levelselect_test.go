package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func testTable() *levels.Table {
	def := func(id int, name string) levels.Definition {
		return levels.Definition{
			ID:             id,
			Name:           name,
			Moves:          10,
			Goals:          levels.Goals{Score: 100 * id},
			StarThresholds: []int{100 * id, 200 * id, 300 * id},
		}
	}
	return levels.NewTable([]levels.Definition{def(1, "First"), def(2, "Second"), def(3, "Third")})
}

func pressKeys(m LevelSelectModel, keys ...tea.KeyMsg) LevelSelectModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(LevelSelectModel)
	}
	return m
}

func TestLevelSelectLockedLevel(t *testing.T) {
	m := NewLevelSelectModel(testTable(), make(levels.Progress), 80, 24)

	m = pressKeys(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != 0 {
		t.Fatalf("locked level 2 was selected")
	}

	m = pressKeys(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", m.Selected())
	}
}

func TestLevelSelectStartsAtFirstUnfinished(t *testing.T) {
	progress := levels.Progress{1: {Completed: true, Stars: 2, BestScore: 150}}
	m := NewLevelSelectModel(testTable(), progress, 80, 24)

	m = pressKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", m.Selected())
	}
}

func TestLevelSelectView(t *testing.T) {
	progress := levels.Progress{1: {Completed: true, Stars: 2, BestScore: 150}}
	m := NewLevelSelectModel(testTable(), progress, 80, 24)

	view := m.View()
	for _, want := range []string{"SELECT LEVEL", "First", "best 150", "locked", "10 moves, score 200"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLevelSelectBack(t *testing.T) {
	m := NewLevelSelectModel(testTable(), make(levels.Progress), 80, 24)
	m = pressKeys(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("esc should request back")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}
