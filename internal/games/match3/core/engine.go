package core

// PointsPerGem is the base score for each removed gem, before the cascade
// multiplier.
const PointsPerGem = 10

// Unlimited is the moves budget of a run with no move limit.
const Unlimited = -1

// Rules are the fixed parameters of an engine.
type Rules struct {
	Rows            int
	Cols            int
	Kinds           int
	PointsPerGem    int
	ShuffleAttempts int
}

// DefaultRules returns an 8x8 board with six gem kinds.
func DefaultRules() Rules {
	return Rules{
		Rows:            8,
		Cols:            8,
		Kinds:           6,
		PointsPerGem:    PointsPerGem,
		ShuffleAttempts: DefaultShuffleAttempts,
	}
}

// RunState is the scoring side of a level attempt.
type RunState struct {
	Score          int
	MovesLeft      int   // Unlimited for endless play
	Collected      []int // removed gems per kind
	TotalCollected int
}

// CollectedOf returns how many gems of kind have been removed.
func (r RunState) CollectedOf(kind int) int {
	if kind < 0 || kind >= len(r.Collected) {
		return 0
	}
	return r.Collected[kind]
}

// Clone returns a copy that shares no memory with r.
func (r RunState) Clone() RunState {
	out := r
	out.Collected = append([]int(nil), r.Collected...)
	return out
}

// Engine owns a board and the run state of one level attempt. It is not
// safe for concurrent use; callers drive it from a single goroutine.
type Engine struct {
	rules Rules
	rng   Rand
	board *Board
	run   RunState
	busy  bool
}

// NewEngine creates an engine with a freshly generated board and a run that
// starts with the given moves budget.
func NewEngine(rules Rules, moves int, rng Rand) (*Engine, error) {
	board, err := NewBoard(rules.Rows, rules.Cols, rules.Kinds, rng)
	if err != nil {
		return nil, err
	}
	return NewEngineFromBoard(board, rules, moves, rng)
}

// NewEngineFromBoard wraps an existing board. Rows, Cols and Kinds in rules
// are taken from the board. A deadlocked starting board is shuffled.
func NewEngineFromBoard(board *Board, rules Rules, moves int, rng Rand) (*Engine, error) {
	if moves == 0 || moves < Unlimited {
		return nil, invalid("NewEngine", "moves budget %d must be positive or Unlimited", moves)
	}
	if rules.PointsPerGem <= 0 {
		rules.PointsPerGem = PointsPerGem
	}
	if rules.ShuffleAttempts <= 0 {
		rules.ShuffleAttempts = DefaultShuffleAttempts
	}
	rules.Rows, rules.Cols, rules.Kinds = board.rows, board.cols, board.kinds

	e := &Engine{rules: rules, rng: rng, board: board}
	e.StartRun(moves)
	if board.EmptyCount() == 0 && IsDeadlocked(board) {
		Shuffle(board, rng, rules.ShuffleAttempts)
	}
	return e, nil
}

// StartRun resets score, counters and the moves budget. The board is kept.
func (e *Engine) StartRun(moves int) {
	e.run = RunState{
		MovesLeft: moves,
		Collected: make([]int, e.rules.Kinds),
	}
}

// Rules returns the engine parameters.
func (e *Engine) Rules() Rules { return e.rules }

// Board returns the live board. Callers must treat it as read-only and may
// only read it between phases.
func (e *Engine) Board() *Board { return e.board }

// Run returns a copy of the current run state.
func (e *Engine) Run() RunState { return e.run.Clone() }

// Busy reports whether a resolution cycle is in flight.
func (e *Engine) Busy() bool { return e.busy }

// AttemptSwap performs a full swap request and resolves every cascade before
// returning. A swap that produces no match is reported with Accepted false
// and leaves board, score and moves untouched.
func (e *Engine) AttemptSwap(a, b Pos) (SwapOutcome, error) {
	c, err := e.Begin(a, b)
	if err != nil {
		return SwapOutcome{}, err
	}
	return c.Drain(), nil
}

// Hint returns the first valid swap on the current board.
func (e *Engine) Hint() (Hint, bool) {
	return SuggestMove(e.board)
}

// Shuffle forces a reshuffle of the board outside a resolution cycle.
func (e *Engine) Shuffle() (int, error) {
	if e.busy {
		return 0, ErrBusy
	}
	tries, _ := Shuffle(e.board, e.rng, e.rules.ShuffleAttempts)
	return tries, nil
}

// applyGravity compacts every column downward, preserving the relative
// order of gems, and returns the moves it made.
func applyGravity(b *Board) []Shift {
	var shifts []Shift
	for c := 0; c < b.cols; c++ {
		write := b.rows - 1
		for r := b.rows - 1; r >= 0; r-- {
			tok := b.cells[r*b.cols+c]
			if tok == Empty {
				continue
			}
			if r != write {
				b.cells[write*b.cols+c] = tok
				b.cells[r*b.cols+c] = Empty
				shifts = append(shifts, Shift{From: P(r, c), To: P(write, c), Token: tok})
			}
			write--
		}
	}
	return shifts
}

// refill draws a uniform kind for every Empty cell in row-major order. No
// no-match constraint applies, so a refill may seed the next cascade.
func refill(b *Board, rng Rand) []Refill {
	var out []Refill
	for i, tok := range b.cells {
		if tok != Empty {
			continue
		}
		tok = Token(rng.Intn(b.kinds))
		b.cells[i] = tok
		out = append(out, Refill{At: Pos{Row: i / b.cols, Col: i % b.cols}, Token: tok})
	}
	return out
}
