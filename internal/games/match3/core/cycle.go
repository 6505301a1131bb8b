package core

// Cycle is one resolution cycle started by an accepted or rejected swap.
// Next advances exactly one phase and returns, which gives the caller a
// chance to present the intermediate board. A cycle cannot be abandoned:
// the engine stays busy until it reaches PhaseSettled.
type Cycle struct {
	e       *Engine
	outcome SwapOutcome
	next    Phase
	matches []Pos
	current CascadeEvent
	done    bool
}

// Begin validates and performs a swap. A swap that produces no match is
// reverted and returns a finished cycle with Accepted false. An accepted swap
// consumes one move and marks the engine busy until the cycle settles.
func (e *Engine) Begin(a, b Pos) (*Cycle, error) {
	if e.busy {
		return nil, ErrBusy
	}
	if !e.board.InBounds(a) || !e.board.InBounds(b) {
		return nil, invalid("Swap", "%v or %v outside %dx%d board", a, b, e.board.rows, e.board.cols)
	}
	if !a.Adjacent(b) {
		return nil, invalid("Swap", "%v and %v are not adjacent", a, b)
	}
	if e.run.MovesLeft == 0 {
		return nil, invalid("Swap", "no moves remaining")
	}

	c := &Cycle{e: e, outcome: SwapOutcome{A: a, B: b}}

	e.board.Swap(a, b)
	matches := FindMatches(e.board)
	if len(matches) == 0 {
		e.board.Swap(a, b)
		c.done = true
		return c, nil
	}

	e.busy = true
	if e.run.MovesLeft > 0 {
		e.run.MovesLeft--
	}
	c.outcome.Accepted = true
	c.matches = matches
	c.next = PhaseMatch
	return c, nil
}

// Accepted reports whether the swap produced a match.
func (c *Cycle) Accepted() bool { return c.outcome.Accepted }

// Done reports whether the cycle has settled.
func (c *Cycle) Done() bool { return c.done }

// Next advances the cycle by one phase. It returns false once the cycle has
// already settled.
func (c *Cycle) Next() (Step, bool) {
	if c.done {
		return Step{}, false
	}
	e := c.e
	phase := c.next

	switch phase {
	case PhaseMatch:
		index := len(c.outcome.Cascades) + 1
		c.current = CascadeEvent{
			Index:      index,
			Matched:    c.matches,
			ScoreDelta: len(c.matches) * e.rules.PointsPerGem * index,
		}
		c.next = PhaseRemove

	case PhaseRemove:
		removed := make([]int, e.rules.Kinds)
		for _, p := range c.current.Matched {
			kind := e.board.Get(p)
			removed[kind]++
			e.run.Collected[kind]++
			e.run.TotalCollected++
			e.board.Set(p, Empty)
		}
		c.current.Removed = removed
		e.run.Score += c.current.ScoreDelta
		c.next = PhaseGravity

	case PhaseGravity:
		c.current.Gravity = applyGravity(e.board)
		c.next = PhaseRefill

	case PhaseRefill:
		c.current.Refilled = refill(e.board, e.rng)
		c.outcome.Cascades = append(c.outcome.Cascades, c.current)
		c.matches = FindMatches(e.board)
		switch {
		case len(c.matches) > 0:
			c.next = PhaseMatch
		case IsDeadlocked(e.board):
			c.next = PhaseShuffle
		default:
			c.next = PhaseSettled
		}

	case PhaseShuffle:
		tries, ok := Shuffle(e.board, e.rng, e.rules.ShuffleAttempts)
		c.outcome.Reshuffled = true
		c.outcome.ShuffleTries = tries
		c.outcome.Deadlocked = !ok
		c.next = PhaseSettled

	case PhaseSettled:
		e.busy = false
		c.done = true
	}

	return Step{Phase: phase, Cascade: c.current}, true
}

// Drain runs the cycle to completion and returns its outcome.
func (c *Cycle) Drain() SwapOutcome {
	for {
		if _, ok := c.Next(); !ok {
			break
		}
	}
	return c.Outcome()
}

// Outcome returns the outcome recorded so far.
func (c *Cycle) Outcome() SwapOutcome {
	return c.outcome
}
