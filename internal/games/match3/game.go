// Package match3 is the playable match-3 game: it drives the board engine
// from player input, paces resolution phases for display, evaluates level
// goals after every settled swap, and persists progress.
package match3

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry ids.
const (
	IDCampaign = "match3"
	IDEndless  = "match3_endless"
)

// AttemptLog records finished level attempts. *storage.Store implements it.
type AttemptLog interface {
	SaveAttempt(storage.Attempt) (string, error)
}

// Options are the collaborators and settings of a game instance.
type Options struct {
	Config     config.Match3Config
	Levels     *levels.Table
	Progress   levels.ProgressStore // nil keeps progress in memory
	Attempts   AttemptLog           // nil disables the attempt log
	Logger     *log.Logger
	StartLevel int // campaign level to open; 0 picks the first uncompleted one
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.Config.Board.Rows == 0 {
		o.Config = config.DefaultMatch3Config()
	}
	if o.Levels == nil || o.Levels.Len() == 0 {
		o.Levels = levels.Default()
	}
	if o.Progress == nil {
		o.Progress = levels.NewMemoryStore()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Package-level defaults used by the registry factories. The CLI sets them
// before creating a game; SSH sessions build games with NewWithOptions.
var (
	defaultsMu     sync.Mutex
	defaultOptions Options
)

// SetDefaults sets the options used by New and NewEndless.
func SetDefaults(o Options) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultOptions = o
}

func currentDefaults() Options {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultOptions
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// playState is where the game is between engine cycles.
type playState int

const (
	statePlaying      playState = iota
	stateLevelResult            // complete or failed banner
	stateCampaignDone           // every level completed
	stateFinished               // session ended by the player
)

// Game implements registry.Game for both modes.
type Game struct {
	mode Mode
	opts Options
	rng  *rand.Rand
	tick uint64

	table    *levels.Table
	progress levels.Progress
	level    levels.Definition
	engine   *m3.Engine

	cursor   m3.Pos
	selected *m3.Pos
	hint     *m3.Hint
	anim     animation
	last     m3.SwapOutcome // most recent settled swap, for the HUD
	swaps    int            // accepted swaps in the current run
	startFor int            // explicit start level consumed by Reset

	state        playState
	result       levels.Result
	resultTicks  int
	sessionScore int // sum of completed level scores this session

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
}

// New creates a campaign game from the package defaults.
func New() *Game {
	return NewWithOptions(ModeCampaign, currentDefaults())
}

// NewEndless creates an endless game from the package defaults.
func NewEndless() *Game {
	return NewWithOptions(ModeEndless, currentDefaults())
}

// NewWithOptions creates a game with its own collaborators.
func NewWithOptions(mode Mode, opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		mode:     mode,
		opts:     opts,
		table:    opts.Levels,
		startFor: opts.StartLevel,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset starts a new session. In campaign mode the progress store is read
// and the requested or first uncompleted level is opened.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.state = statePlaying
	g.sessionScore = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.mode == ModeEndless {
		g.startEndless()
	} else {
		g.loadProgress()
		// An explicit start level applies to the first Reset only
		start := g.startFor
		g.startFor = 0
		g.startLevel(g.pickLevel(start))
	}

	g.checkScreenSize()
}

// Resize adapts to a new screen size without restarting the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// loadProgress reads the store. A failing store is logged and play
// continues with empty progress.
func (g *Game) loadProgress() {
	p, err := g.opts.Progress.Load()
	if err != nil {
		g.opts.Logger.Warn("could not load progress", "error", err)
		p = make(levels.Progress)
	}
	if p == nil {
		p = make(levels.Progress)
	}
	g.progress = p
}

// pickLevel resolves the level to open. A locked or unknown request falls
// back to the first uncompleted unlocked level.
func (g *Game) pickLevel(requested int) levels.Definition {
	if requested > 0 && g.progress.Unlocked(requested) {
		if def, err := g.table.ByID(requested); err == nil {
			return def
		}
		g.opts.Logger.Warn("requested level not found", "level", requested)
	}

	defs := g.table.Levels()
	for _, def := range defs {
		if g.progress.Unlocked(def.ID) && !g.progress[def.ID].Completed {
			return def
		}
	}
	return defs[len(defs)-1]
}

// startLevel deals a fresh board for def.
func (g *Game) startLevel(def levels.Definition) {
	g.level = def
	g.newEngine(g.opts.Config.LevelMoves(def.Moves))
}

func (g *Game) startEndless() {
	g.level = levels.Definition{}
	g.newEngine(m3.Unlimited)
}

func (g *Game) newEngine(moves int) {
	engine, err := m3.NewEngine(g.opts.Config.Rules(), moves, g.rng)
	if err != nil {
		// Config is validated on load, so this is a programming error.
		g.opts.Logger.Error("could not create engine", "error", err)
		engine, _ = m3.NewEngine(config.DefaultMatch3Config().Rules(), moves, g.rng)
	}
	g.engine = engine
	g.cursor = m3.P(engine.Board().Rows()/2, engine.Board().Cols()/2)
	g.selected = nil
	g.hint = nil
	g.anim = animation{}
	g.last = m3.SwapOutcome{}
	g.swaps = 0
	g.state = statePlaying
	g.result = levels.Result{Status: levels.StatusInProgress}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.minScreenSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.state == stateFinished {
		return core.StepResult{State: g.State()}
	}

	// Pausing is only allowed between swaps
	if in.Has(core.ActionPause) && !g.anim.active() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case statePlaying:
		if g.anim.active() {
			g.updateAnimation()
		} else {
			g.handleInput(in)
		}
	case stateLevelResult:
		g.stepResult(in)
	case stateCampaignDone:
		// Restart is handled by the platform on game over
	}

	return core.StepResult{State: g.State()}
}

// handleInput processes cursor movement and swap requests while idle.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.abandonLevel()
		return
	}
	if in.Has(core.ActionHint) {
		if h, ok := g.engine.Hint(); ok {
			g.hint = &h
		}
	}
	if in.Has(core.ActionBack) {
		g.selected = nil
	}

	if d, ok := direction(in); ok {
		g.move(d)
	}

	if in.Has(core.ActionSelect) {
		g.selectAtCursor()
	}
}

// direction extracts one cursor direction from the frame.
func direction(in core.InputFrame) (m3.Pos, bool) {
	switch {
	case in.Has(core.ActionUp):
		return m3.P(-1, 0), true
	case in.Has(core.ActionDown):
		return m3.P(1, 0), true
	case in.Has(core.ActionLeft):
		return m3.P(0, -1), true
	case in.Has(core.ActionRight):
		return m3.P(0, 1), true
	}
	return m3.Pos{}, false
}

// move shifts the cursor. With a gem picked up, the move is a swap toward
// the neighbor in that direction.
func (g *Game) move(d m3.Pos) {
	b := g.engine.Board()
	target := m3.P(
		core.Clamp(g.cursor.Row+d.Row, 0, b.Rows()-1),
		core.Clamp(g.cursor.Col+d.Col, 0, b.Cols()-1),
	)
	if target == g.cursor {
		return
	}
	if g.selected != nil && *g.selected == g.cursor {
		g.requestSwap(g.cursor, target)
	}
	g.cursor = target
}

// selectAtCursor picks up the gem under the cursor, drops it, or swaps it
// with an adjacent picked gem.
func (g *Game) selectAtCursor() {
	switch {
	case g.selected == nil:
		p := g.cursor
		g.selected = &p
	case *g.selected == g.cursor:
		g.selected = nil
	case g.selected.Adjacent(g.cursor):
		g.requestSwap(*g.selected, g.cursor)
	default:
		p := g.cursor
		g.selected = &p
	}
}

// requestSwap asks the engine for a swap and starts the matching animation.
func (g *Game) requestSwap(a, b m3.Pos) {
	g.selected = nil
	g.hint = nil

	cycle, err := g.engine.Begin(a, b)
	if err != nil {
		// Input is gated on an idle engine and adjacent in-bounds cells,
		// so only an exhausted budget can get here.
		g.opts.Logger.Debug("swap refused", "a", a, "b", b, "error", err)
		return
	}

	if !cycle.Accepted() {
		g.startReject(a, b)
		return
	}
	g.swaps++
	g.startSwap(cycle, a, b)
}

// onSettled runs after a resolution cycle reaches PhaseSettled.
func (g *Game) onSettled(out m3.SwapOutcome) {
	g.last = out
	if out.Deadlocked {
		g.opts.Logger.Warn("board stayed deadlocked after shuffle", "kinds", g.engine.Rules().Kinds)
	}
	if g.mode == ModeEndless {
		return
	}

	g.result = levels.Evaluate(g.engine.Run(), g.level)
	switch g.result.Status {
	case levels.StatusComplete:
		g.completeLevel()
	case levels.StatusFailed:
		g.failLevel()
	}
}

// completeLevel ratchets progress, saves it, and shows the result banner.
func (g *Game) completeLevel() {
	run := g.engine.Run()
	g.sessionScore += run.Score

	if _, changed := g.progress.Complete(g.level.ID, g.result.Stars, run.Score); changed {
		if err := g.opts.Progress.Save(g.progress); err != nil {
			g.opts.Logger.Warn("could not save progress", "level", g.level.ID, "error", err)
		}
	}
	g.recordAttempt(storage.OutcomeComplete)
	g.showResult()
}

func (g *Game) failLevel() {
	g.recordAttempt(storage.OutcomeFailed)
	g.showResult()
}

func (g *Game) showResult() {
	g.state = stateLevelResult
	g.resultTicks = g.opts.Config.Animation.ResultTicks
}

// abandonLevel restarts the current level, or the endless board.
func (g *Game) abandonLevel() {
	if g.swaps > 0 {
		g.recordAttempt(storage.OutcomeAbandoned)
	}
	if g.mode == ModeEndless {
		g.startEndless()
		return
	}
	g.startLevel(g.level)
}

// stepResult waits out the banner, then continues on Confirm or Restart.
func (g *Game) stepResult(in core.InputFrame) {
	if g.resultTicks > 0 {
		g.resultTicks--
		return
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionSelect) && !in.Has(core.ActionRestart) {
		return
	}

	if g.result.Status == levels.StatusFailed || in.Has(core.ActionRestart) {
		g.startLevel(g.level)
		return
	}

	next, ok := g.table.Next(g.level.ID)
	if !ok {
		g.state = stateCampaignDone
		return
	}
	g.startLevel(next)
}

// Finish ends the session. A level in progress is recorded as abandoned.
// Endless play reports game over so the platform saves its score.
func (g *Game) Finish() core.GameState {
	if g.state == stateFinished || g.engine == nil {
		return g.State()
	}
	// A swap in flight still counts
	if g.anim.active() {
		g.settleAnimation()
	}
	if g.state == statePlaying && g.swaps > 0 {
		g.recordAttempt(storage.OutcomeAbandoned)
	}
	g.state = stateFinished
	return g.State()
}

// recordAttempt appends to the attempt log. Failures are logged only.
func (g *Game) recordAttempt(outcome string) {
	if g.opts.Attempts == nil {
		return
	}
	run := g.engine.Run()
	a := storage.Attempt{
		GameID:  g.ID(),
		LevelID: g.level.ID,
		Score:   run.Score,
		Outcome: outcome,
	}
	a.MovesUsed = g.swaps
	if outcome == storage.OutcomeComplete {
		a.Stars = g.result.Stars
	}
	if _, err := g.opts.Attempts.SaveAttempt(a); err != nil {
		g.opts.Logger.Warn("could not record attempt", "game", a.GameID, "level", a.LevelID, "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil {
		score = g.engine.Run().Score
	}
	if g.state == stateCampaignDone {
		score = g.sessionScore
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == stateCampaignDone || (g.state == stateFinished && g.mode == ModeEndless),
		Paused:   g.paused || g.tooSmall,
		Busy:     g.anim.active(),
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick/Swap | ?: Hint | R: Restart | P: Pause | Q: Quit"
}
