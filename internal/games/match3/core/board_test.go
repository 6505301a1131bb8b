package core

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedRand returns the scripted values in order, wrapping around.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func mustBoard(t *testing.T, kinds int, rows [][]Token) *Board {
	t.Helper()
	b, err := FromRows(kinds, rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return b
}

func TestGenerateNoMatchBoard(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		b, err := NewBoard(8, 8, 5, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("NewBoard() failed: %v", err)
		}
		if m := FindMatches(b); len(m) != 0 {
			t.Errorf("seed %d: generated board has %d matched cells", seed, len(m))
		}
		if n := b.EmptyCount(); n != 0 {
			t.Errorf("seed %d: generated board has %d empty cells", seed, n)
		}
	}
}

func TestGenerateSingleKindTerminates(t *testing.T) {
	b, err := NewBoard(4, 4, 1, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	for _, row := range b.Tokens() {
		for _, tok := range row {
			if tok != 0 {
				t.Fatalf("single-kind board holds token %d", tok)
			}
		}
	}
}

func TestNewBoardRejectsBadShape(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, kinds int
	}{
		{"zero rows", 0, 8, 5},
		{"negative cols", 8, -1, 5},
		{"zero kinds", 8, 8, 0},
		{"too many kinds", 8, 8, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.rows, tc.cols, tc.kinds, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("NewBoard(%d, %d, %d) error = %v, want ErrInvalidRequest", tc.rows, tc.cols, tc.kinds, err)
			}
		})
	}
}

func TestFromRowsValidation(t *testing.T) {
	if _, err := FromRows(3, [][]Token{{0, 1}, {2}}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ragged rows error = %v, want ErrInvalidRequest", err)
	}
	if _, err := FromRows(3, [][]Token{{0, 5}}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("out-of-range token error = %v, want ErrInvalidRequest", err)
	}
	if _, err := FromRows(3, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("empty rows error = %v, want ErrInvalidRequest", err)
	}
}

func TestBoardPrimitives(t *testing.T) {
	b := mustBoard(t, 3, [][]Token{
		{0, 1, 2},
		{2, 0, 1},
	})

	if got := b.Get(P(1, 2)); got != 1 {
		t.Errorf("Get(1,2) = %d, want 1", got)
	}

	b.Swap(P(0, 0), P(1, 0))
	if b.Get(P(0, 0)) != 2 || b.Get(P(1, 0)) != 0 {
		t.Errorf("Swap did not exchange values: %v", b.Tokens())
	}

	b.Set(P(0, 1), Empty)
	if !b.IsEmpty(P(0, 1)) {
		t.Error("IsEmpty(0,1) should be true after Set(Empty)")
	}
	if b.EmptyCount() != 1 {
		t.Errorf("EmptyCount() = %d, want 1", b.EmptyCount())
	}
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := mustBoard(t, 3, [][]Token{{0, 1, 2}})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Get out of bounds should panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("panic value = %v, want ErrInvalidRequest", r)
		}
	}()
	b.Get(P(1, 0))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, 3, [][]Token{{0, 1, 2}})
	clone := b.Clone()
	if !clone.Equal(b) {
		t.Fatal("clone should equal original")
	}
	clone.Set(P(0, 0), 2)
	if b.Get(P(0, 0)) != 0 {
		t.Error("mutating clone changed original")
	}
	if clone.Equal(b) {
		t.Error("boards should differ after mutation")
	}
}

func TestPosAdjacent(t *testing.T) {
	tests := []struct {
		a, b     Pos
		expected bool
	}{
		{P(0, 0), P(0, 1), true},
		{P(0, 0), P(1, 0), true},
		{P(0, 0), P(1, 1), false},
		{P(2, 2), P(2, 2), false},
		{P(0, 0), P(0, 2), false},
	}

	for _, tc := range tests {
		if got := tc.a.Adjacent(tc.b); got != tc.expected {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tc.a, tc.b, got, tc.expected)
		}
	}
}
