// Package core implements the match-3 board engine: the token grid, match
// detection, cascade resolution, and the move oracle. It has no rendering,
// input, or persistence dependencies so every rule can be tested directly.
package core

// Token is the content of a single cell: a gem kind in [0, Kinds) or Empty.
type Token int8

// Empty marks a cell whose gem has been removed and not yet refilled.
const Empty Token = -1

// maxGenerateAttempts caps rejection sampling per cell during generation.
// Past the cap the last candidate is accepted even if it completes a run.
const maxGenerateAttempts = 100

// Rand is the subset of *math/rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
}

// Board is a fixed-size rectangular grid of tokens stored in row-major order.
type Board struct {
	rows  int
	cols  int
	kinds int
	cells []Token
}

// NewBoard creates a rows x cols board over kinds gem kinds, populated so that
// no run of three exists.
func NewBoard(rows, cols, kinds int, rng Rand) (*Board, error) {
	b, err := newEmptyBoard(rows, cols, kinds)
	if err != nil {
		return nil, err
	}
	GenerateNoMatchBoard(b, rng)
	return b, nil
}

// FromRows builds a board from explicit token rows. All rows must have the
// same non-zero length and every token must be Empty or within [0, kinds).
func FromRows(kinds int, rows [][]Token) (*Board, error) {
	if len(rows) == 0 {
		return nil, invalid("FromRows", "no rows")
	}
	b, err := newEmptyBoard(len(rows), len(rows[0]), kinds)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.cols {
			return nil, invalid("FromRows", "row %d has %d cells, want %d", r, len(row), b.cols)
		}
		for c, tok := range row {
			if tok != Empty && (tok < 0 || int(tok) >= kinds) {
				return nil, invalid("FromRows", "token %d at %v outside [0,%d)", tok, P(r, c), kinds)
			}
			b.cells[b.index(P(r, c))] = tok
		}
	}
	return b, nil
}

func newEmptyBoard(rows, cols, kinds int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalid("NewBoard", "dimensions %dx%d must be positive", rows, cols)
	}
	if kinds <= 0 || kinds > 127 {
		return nil, invalid("NewBoard", "kind count %d out of range", kinds)
	}
	cells := make([]Token, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{rows: rows, cols: cols, kinds: kinds, cells: cells}, nil
}

// GenerateNoMatchBoard fills every cell in row-major order. Each candidate is
// rejected when it would complete a horizontal run with the two cells to its
// left or a vertical run with the two cells above it. Cells to the right and
// below are not yet placed, so checking left and above is enough.
func GenerateNoMatchBoard(b *Board, rng Rand) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var tok Token
			for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
				tok = Token(rng.Intn(b.kinds))
				if !b.completesRun(r, c, tok) {
					break
				}
			}
			b.cells[r*b.cols+c] = tok
		}
	}
}

func (b *Board) completesRun(r, c int, tok Token) bool {
	if c >= 2 && b.cells[r*b.cols+c-1] == tok && b.cells[r*b.cols+c-2] == tok {
		return true
	}
	if r >= 2 && b.cells[(r-1)*b.cols+c] == tok && b.cells[(r-2)*b.cols+c] == tok {
		return true
	}
	return false
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Kinds returns the number of distinct gem kinds.
func (b *Board) Kinds() int { return b.kinds }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

func (b *Board) mustIndex(op string, p Pos) int {
	if !b.InBounds(p) {
		panic(invalid(op, "position %v outside %dx%d board", p, b.rows, b.cols))
	}
	return b.index(p)
}

// Get returns the token at p. It panics if p is out of bounds.
func (b *Board) Get(p Pos) Token {
	return b.cells[b.mustIndex("Get", p)]
}

// Set stores tok at p. It panics if p is out of bounds.
func (b *Board) Set(p Pos, tok Token) {
	b.cells[b.mustIndex("Set", p)] = tok
}

// Swap exchanges the tokens at a and b in place. It panics if either
// position is out of bounds.
func (b *Board) Swap(a, c Pos) {
	i := b.mustIndex("Swap", a)
	j := b.mustIndex("Swap", c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// IsEmpty reports whether the cell at p holds no gem.
func (b *Board) IsEmpty(p Pos) bool {
	return b.Get(p) == Empty
}

// EmptyCount returns the number of Empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, tok := range b.cells {
		if tok == Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Token, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, kinds: b.kinds, cells: cells}
}

// Equal reports whether two boards have the same shape and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols || b.kinds != other.kinds {
		return false
	}
	for i, tok := range b.cells {
		if tok != other.cells[i] {
			return false
		}
	}
	return true
}

// Tokens returns a copy of the board as rows of tokens.
func (b *Board) Tokens() [][]Token {
	out := make([][]Token, b.rows)
	for r := range out {
		out[r] = make([]Token, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// CountByKind returns how many cells hold each gem kind.
func (b *Board) CountByKind() []int {
	counts := make([]int, b.kinds)
	for _, tok := range b.cells {
		if tok != Empty {
			counts[tok]++
		}
	}
	return counts
}
