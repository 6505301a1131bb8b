package core

// Shift records one gem falling during gravity.
type Shift struct {
	From  Pos
	To    Pos
	Token Token
}

// Refill records a new gem drawn into an emptied cell.
type Refill struct {
	At    Pos
	Token Token
}

// CascadeEvent is the record of one cascade step.
type CascadeEvent struct {
	Index      int     // 1 for the match made by the swap itself
	Matched    []Pos   // cells removed, row-major
	Removed    []int   // removed gems per kind
	ScoreDelta int     // len(Matched) * PointsPerGem * Index
	Gravity    []Shift // column compaction, column by column, bottom up
	Refilled   []Refill
}

// SwapOutcome is the result of a swap request.
type SwapOutcome struct {
	A, B     Pos
	Accepted bool
	Cascades []CascadeEvent

	// Reshuffled is set when the settled board had no valid move and was
	// shuffled before control returned.
	Reshuffled   bool
	ShuffleTries int
	// Deadlocked is set when even the shuffle fallback could not produce a
	// playable board, which only happens with fewer than two kinds.
	Deadlocked bool
}

// ScoreDelta returns the total score gained by the swap.
func (o SwapOutcome) ScoreDelta() int {
	total := 0
	for _, ev := range o.Cascades {
		total += ev.ScoreDelta
	}
	return total
}

// GemsRemoved returns the number of cells cleared across all cascades.
func (o SwapOutcome) GemsRemoved() int {
	total := 0
	for _, ev := range o.Cascades {
		total += len(ev.Matched)
	}
	return total
}

// Phase is a presentation boundary inside a resolution cycle.
type Phase int

const (
	PhaseMatch   Phase = iota // a match set was found; cells still present
	PhaseRemove               // matched cells emptied, score and counters applied
	PhaseGravity              // columns compacted
	PhaseRefill               // empty cells refilled
	PhaseShuffle              // deadlocked board reshuffled
	PhaseSettled              // cycle finished; engine idle again
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMatch:
		return "match"
	case PhaseRemove:
		return "remove"
	case PhaseGravity:
		return "gravity"
	case PhaseRefill:
		return "refill"
	case PhaseShuffle:
		return "shuffle"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Step is what a cycle reports after advancing one phase.
type Step struct {
	Phase   Phase
	Cascade CascadeEvent // the cascade in progress, filled up to Phase
}
