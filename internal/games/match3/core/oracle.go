package core

// DefaultShuffleAttempts bounds how many permutations Shuffle tries before
// falling back to regenerating the board.
const DefaultShuffleAttempts = 100

// FindValidMove scans cells in row-major order and, at each cell, tries the
// right neighbor before the bottom neighbor. It returns the first swap that
// would produce a match. The board is left unchanged.
func FindValidMove(b *Board) (Pos, Pos, bool) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := P(r, c)
			if c+1 < b.cols && swapMatches(b, p, p.Right()) {
				return p, p.Right(), true
			}
			if r+1 < b.rows && swapMatches(b, p, p.Below()) {
				return p, p.Below(), true
			}
		}
	}
	return Pos{}, Pos{}, false
}

// HasValidMove reports whether any adjacent swap would produce a match.
func HasValidMove(b *Board) bool {
	_, _, ok := FindValidMove(b)
	return ok
}

// IsDeadlocked reports whether no single adjacent swap produces a match.
func IsDeadlocked(b *Board) bool {
	return !HasValidMove(b)
}

// Hint is a suggested swap.
type Hint struct {
	A, B Pos
}

// SuggestMove returns the first valid swap in scan order, or false when the
// board is deadlocked. The same board always yields the same hint.
func SuggestMove(b *Board) (Hint, bool) {
	a, c, ok := FindValidMove(b)
	if !ok {
		return Hint{}, false
	}
	return Hint{A: a, B: c}, true
}

func swapMatches(b *Board, a, c Pos) bool {
	i, j := b.index(a), b.index(c)
	if b.cells[i] == b.cells[j] {
		return false
	}
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	ok := HasMatch(b)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	return ok
}

// Shuffle permutes every token on the board with Fisher-Yates until the
// result has at least one valid move and no standing run. After maxAttempts
// permutations it regenerates the board from scratch, again up to
// maxAttempts times. It returns the number of boards tried and whether a
// playable board was reached; with fewer than two kinds it never is.
func Shuffle(b *Board, rng Rand, maxAttempts int) (int, bool) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultShuffleAttempts
	}
	tries := 0
	for range maxAttempts {
		tries++
		for i := len(b.cells) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
		}
		if playable(b) {
			return tries, true
		}
	}
	for range maxAttempts {
		tries++
		GenerateNoMatchBoard(b, rng)
		if playable(b) {
			return tries, true
		}
	}
	return tries, false
}

func playable(b *Board) bool {
	return !HasMatch(b) && HasValidMove(b)
}
