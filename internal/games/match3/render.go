package match3

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

const (
	cellWidth  = 3 // interior width of each cell
	cellHeight = 1 // interior height of each cell
	hudHeight  = 4
	footerRows = 2
)

// gem is how one kind is drawn.
type gem struct {
	Glyph rune
	Color core.Color
	Name  string
}

// Gems is the palette for up to six kinds.
var Gems = []gem{
	{'◆', core.ColorRed, "Red"},
	{'●', core.ColorGreen, "Green"},
	{'▲', core.ColorYellow, "Yellow"},
	{'■', core.ColorBlue, "Blue"},
	{'★', core.ColorMagenta, "Magenta"},
	{'♥', core.ColorCyan, "Cyan"},
}

// GemName returns the display name of a kind.
func GemName(kind int) string {
	if kind < 0 || kind >= len(Gems) {
		return fmt.Sprintf("Gem %d", kind)
	}
	return Gems[kind].Name
}

// minScreenSize returns the smallest screen that fits HUD, board and footer.
func (g *Game) minScreenSize() (int, int) {
	rows, cols := g.opts.Config.Board.Rows, g.opts.Config.Board.Cols
	if g.engine != nil {
		rows, cols = g.engine.Board().Rows(), g.engine.Board().Cols()
	}
	w := max(cols*(cellWidth+1)+1, 40)
	h := hudHeight + rows*(cellHeight+1) + 1 + footerRows
	return w, h
}

// layout returns the board placement for the current screen.
func (g *Game) layout() core.GridLayout {
	b := g.engine.Board()
	return core.NewGridLayout(b.Rows(), b.Cols(), cellWidth, cellHeight, g.screenW, hudHeight)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	grid := g.layout()
	g.renderHUD(dst, grid.Origin)
	g.renderBoard(dst, grid)
	g.renderFooter(dst, grid.Origin)
	g.renderOverlays(dst, grid.Origin)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}

// renderHUD draws title, score, moves and goal progress above the board.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	run := g.engine.Run()

	title := "M A T C H - 3"
	if g.mode == ModeEndless {
		title = "M A T C H - 3   endless"
	}
	dst.DrawTextCentered(0, title)

	left := fmt.Sprintf("Score: %d", run.Score)
	dst.DrawText(box.X, 1, left)

	var right string
	if g.mode == ModeCampaign {
		right = fmt.Sprintf("Moves: %d", run.MovesLeft)
		dst.DrawTextCentered(2, fmt.Sprintf("Level %d/%d  %s", g.level.ID, g.table.Len(), g.level.Name))
		g.renderGoals(dst, box, run)
	} else {
		right = fmt.Sprintf("Gems: %d", run.TotalCollected)
	}
	x := box.Right() - utf8.RuneCountInString(right)
	dst.DrawText(max(x, box.X), 1, right)
}

// renderGoals draws one line of clause progress, colored per gem.
func (g *Game) renderGoals(dst *core.Screen, box core.Rect, run m3.RunState) {
	clauses := g.level.Goals.Clauses()
	parts := make([]string, 0, len(clauses))
	colors := make([]core.Color, 0, len(clauses))

	for _, c := range clauses {
		color := core.ColorWhite
		if c.Met(run) {
			color = core.ColorGreen
		}
		var label string
		switch c.Kind {
		case levels.ClauseScore:
			label = fmt.Sprintf("Score %d/%d", min(c.Progress(run), c.Target), c.Target)
		case levels.ClauseGem:
			label = fmt.Sprintf("%s %d/%d", GemName(c.Gem), min(c.Progress(run), c.Target), c.Target)
			if !c.Met(run) && c.Gem < len(Gems) {
				color = Gems[c.Gem].Color
			}
		case levels.ClauseAny:
			label = fmt.Sprintf("Any %d/%d", min(c.Progress(run), c.Target), c.Target)
		}
		parts = append(parts, label)
		colors = append(colors, color)
	}

	total := len(strings.Join(parts, "  "))
	x := box.X + (box.W-total)/2
	for i, p := range parts {
		dst.DrawTextColored(x, 3, p, colors[i])
		x += utf8.RuneCountInString(p) + 2
	}
}

// renderBoard draws the grid, gems and cursor decorations.
func (g *Game) renderBoard(dst *core.Screen, grid core.GridLayout) {
	dst.DrawBox(grid.Origin, core.ColorGray)

	b := g.engine.Board()
	matched := g.matchedCells()

	for r := range b.Rows() {
		for c := range b.Cols() {
			p := m3.P(r, c)
			cell := grid.Cell(r, c)
			mid := cell.X + cell.W/2

			switch tok := b.Get(p); {
			case tok == m3.Empty:
				dst.SetColored(mid, cell.Y, '·', core.ColorGray)
			case matched[p]:
				dst.SetColored(mid, cell.Y, '✦', core.ColorBrightWhite)
			default:
				gm := Gems[int(tok)%len(Gems)]
				dst.SetColored(mid, cell.Y, gm.Glyph, gm.Color)
			}

			if l, r, color, ok := g.decoration(p); ok {
				dst.SetColored(cell.X, cell.Y, l, color)
				dst.SetColored(cell.Right()-1, cell.Y, r, color)
			}
		}
	}
}

// matchedCells returns the cells highlighted by the current match phase.
func (g *Game) matchedCells() map[m3.Pos]bool {
	if !g.anim.showing(m3.PhaseMatch) {
		return nil
	}
	out := make(map[m3.Pos]bool, len(g.anim.step.Cascade.Matched))
	for _, p := range g.anim.step.Cascade.Matched {
		out[p] = true
	}
	return out
}

// decoration picks the brackets drawn around a cell, most important first.
func (g *Game) decoration(p m3.Pos) (rune, rune, core.Color, bool) {
	switch {
	case g.anim.kind == animReject && (p == g.anim.a || p == g.anim.b):
		return 'x', 'x', core.ColorRed, true
	case g.anim.kind == animSwap && (p == g.anim.a || p == g.anim.b):
		return '>', '<', core.ColorOrange, true
	case g.selected != nil && *g.selected == p:
		return '<', '>', core.ColorOrange, true
	case !g.anim.active() && p == g.cursor:
		return '[', ']', core.ColorBrightWhite, true
	case g.hint != nil && (p == g.hint.A || p == g.hint.B):
		return '{', '}', core.ColorYellow, true
	}
	return 0, 0, core.ColorDefault, false
}

// renderFooter shows the last swap summary and the controls.
func (g *Game) renderFooter(dst *core.Screen, box core.Rect) {
	y := box.Bottom()

	var status string
	switch {
	case g.anim.showing(m3.PhaseShuffle):
		status = "No moves left - shuffling"
	case g.anim.kind == animReject:
		status = "No match"
	case g.anim.kind == animResolve && g.anim.step.Cascade.Index > 1:
		status = fmt.Sprintf("Cascade x%d", g.anim.step.Cascade.Index)
	case g.last.Accepted:
		status = fmt.Sprintf("+%d (%d gems, %d cascades)", g.last.ScoreDelta(), g.last.GemsRemoved(), len(g.last.Cascades))
		if g.last.Reshuffled {
			status += "  board shuffled"
		}
	}
	if status != "" {
		dst.DrawTextCentered(y, status)
	}

	dst.DrawTextColored(max((g.screenW-len(g.Controls()))/2, 0), y+1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	cx, cy := box.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, core.ColorWhite, "PAUSED", "Press P to resume")
	case g.state == stateCampaignDone:
		drawOverlay(dst, cx, cy, core.ColorGreen,
			"CAMPAIGN COMPLETE!",
			fmt.Sprintf("Session score: %d", g.sessionScore),
			fmt.Sprintf("Stars: %d", g.progress.TotalStars()),
			"Press R to play again")
	case g.state == stateLevelResult && g.result.Status == levels.StatusComplete:
		lines := []string{
			"LEVEL COMPLETE",
			starLine(g.result.Stars),
			fmt.Sprintf("Score: %d", g.engine.Run().Score),
		}
		if g.resultTicks == 0 {
			if _, ok := g.table.Next(g.level.ID); ok {
				lines = append(lines, "Enter: next level  R: replay")
			} else {
				lines = append(lines, "Enter: finish  R: replay")
			}
		}
		drawOverlay(dst, cx, cy, core.ColorGreen, lines...)
	case g.state == stateLevelResult:
		lines := []string{"OUT OF MOVES", fmt.Sprintf("Score: %d", g.engine.Run().Score)}
		if g.resultTicks == 0 {
			lines = append(lines, "Enter: try again")
		}
		drawOverlay(dst, cx, cy, core.ColorRed, lines...)
	}
}

// starLine renders a 0..3 star rating.
func starLine(stars int) string {
	return strings.Repeat("★ ", stars) + strings.Repeat("☆ ", 3-stars)
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.ClearRect(box)
	dst.DrawBox(box, color)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}
