package match3

import m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// animKind is what the board is currently showing instead of taking input.
type animKind int

const (
	animNone    animKind = iota
	animSwap             // accepted swap shown before resolution starts
	animResolve          // engine cycle stepped one phase at a time
	animReject           // rejected swap flashed, board unchanged
)

// animation paces an engine cycle for display. The engine has no timers;
// each phase is held on screen for a configured number of ticks and the
// next phase is only requested once the timer runs out.
type animation struct {
	kind  animKind
	timer int
	cycle *m3.Cycle
	step  m3.Step // last phase reported by the cycle
	a, b  m3.Pos  // swapped pair
}

func (a animation) active() bool {
	return a.kind != animNone
}

// showing reports whether the last step of a running cycle is phase p.
func (a animation) showing(p m3.Phase) bool {
	return a.kind == animResolve && a.step.Phase == p
}

// startSwap holds the swapped pair on screen, then resolves the cycle.
func (g *Game) startSwap(cycle *m3.Cycle, a, b m3.Pos) {
	g.anim = animation{
		kind:  animSwap,
		timer: g.opts.Config.Animation.SwapTicks,
		cycle: cycle,
		a:     a,
		b:     b,
	}
	g.updateAnimation()
}

// startReject flashes a swap that produced no match.
func (g *Game) startReject(a, b m3.Pos) {
	g.anim = animation{
		kind:  animReject,
		timer: g.opts.Config.Animation.InvalidTicks,
		a:     a,
		b:     b,
	}
	g.updateAnimation()
}

// updateAnimation advances the animation by one tick. Phases with a zero
// duration are run back to back within the same tick.
func (g *Game) updateAnimation() {
	for g.anim.active() {
		if g.anim.timer > 0 {
			g.anim.timer--
			return
		}
		g.finishPhase()
	}
}

// finishPhase moves on from the phase whose timer just expired.
func (g *Game) finishPhase() {
	switch g.anim.kind {
	case animSwap:
		g.anim.kind = animResolve
		g.anim.timer = 0

	case animResolve:
		step, ok := g.anim.cycle.Next()
		if !ok || step.Phase == m3.PhaseSettled {
			out := g.anim.cycle.Outcome()
			g.anim = animation{}
			g.onSettled(out)
			return
		}
		g.anim.step = step
		g.anim.timer = g.opts.Config.Animation.PhaseTicks

	case animReject:
		g.anim = animation{}
	}
}

// settleAnimation skips whatever is left of the current animation. An open
// engine cycle is run to the end and settled as if every phase had played.
func (g *Game) settleAnimation() {
	cycle := g.anim.cycle
	g.anim = animation{}
	if cycle == nil || cycle.Done() {
		return
	}
	g.onSettled(cycle.Drain())
}
