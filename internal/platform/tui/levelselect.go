package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

var (
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// LevelSelectModel lets users pick an unlocked campaign level.
type LevelSelectModel struct {
	defs      []levels.Definition
	progress  levels.Progress
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // chosen level id, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level selector over table. The cursor starts
// on the first uncompleted unlocked level.
func NewLevelSelectModel(table *levels.Table, progress levels.Progress, width, height int) LevelSelectModel {
	defs := table.Levels()
	cursor := 0
	for i, def := range defs {
		if progress.Unlocked(def.ID) {
			cursor = i
		}
		if progress.Unlocked(def.ID) && !progress[def.ID].Completed {
			break
		}
	}

	return LevelSelectModel{
		defs:      defs,
		progress:  progress,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.defs)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.defs) == 0 {
			return m, nil
		}
		def := m.defs[m.cursor]
		if !m.progress.Unlocked(def.ID) {
			return m, nil
		}
		m.selected = def.ID
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list with locks and stars.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, def := range m.defs {
		b.WriteString(centerText(m.levelLine(i, def), m.width))
		b.WriteString("\n")
	}

	if len(m.defs) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(goalSummary(m.defs[m.cursor]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// levelLine renders one row of the list.
func (m LevelSelectModel) levelLine(i int, def levels.Definition) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	if !m.progress.Unlocked(def.ID) {
		return lockedStyle.Render(fmt.Sprintf("%s%2d. %-18s  locked", cursor, def.ID, def.Name))
	}

	rec := m.progress[def.ID]
	stars := strings.Repeat("★", rec.Stars) + strings.Repeat("☆", 3-rec.Stars)
	line := fmt.Sprintf("%s%2d. %-18s  ", cursor, def.ID, def.Name)
	if i == m.cursor {
		line = cursorStyle.Render(line)
	}
	best := ""
	if rec.Completed {
		best = fmt.Sprintf("  best %d", rec.BestScore)
	}
	return line + starStyle.Render(stars) + best
}

// goalSummary describes the goals and budget of def in one line.
func goalSummary(def levels.Definition) string {
	parts := []string{fmt.Sprintf("%d moves", def.Moves)}
	for _, c := range def.Goals.Clauses() {
		switch c.Kind {
		case levels.ClauseScore:
			parts = append(parts, fmt.Sprintf("score %d", c.Target))
		case levels.ClauseGem:
			parts = append(parts, fmt.Sprintf("%d %s", c.Target, strings.ToLower(match3.GemName(c.Gem))))
		case levels.ClauseAny:
			parts = append(parts, fmt.Sprintf("%d gems", c.Target))
		}
	}
	return strings.Join(parts, ", ")
}

// Selected returns the chosen level id, or 0 if none was chosen.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selector and returns the chosen level id,
// or 0 when the user backed out. quit reports that the user wants to exit.
func RunLevelSelector(table *levels.Table, progress levels.Progress, cfg core.RuntimeConfig) (level int, quit bool, err error) {
	model := NewLevelSelectModel(table, progress, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return 0, true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
