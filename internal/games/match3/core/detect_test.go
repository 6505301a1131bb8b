package core

import (
	"reflect"
	"testing"
)

const E = Empty

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]Token
		expected []Pos
	}{
		{
			name: "no match",
			rows: [][]Token{
				{0, 1, 0},
				{1, 0, 1},
				{0, 1, 0},
			},
			expected: nil,
		},
		{
			name: "horizontal three",
			rows: [][]Token{
				{0, 0, 0, 1},
				{1, 2, 1, 2},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2)},
		},
		{
			name: "vertical three",
			rows: [][]Token{
				{2, 1},
				{2, 0},
				{2, 1},
			},
			expected: []Pos{P(0, 0), P(1, 0), P(2, 0)},
		},
		{
			name: "run of five extends greedily",
			rows: [][]Token{
				{1, 1, 1, 1, 1},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(0, 4)},
		},
		{
			name: "two runs in one row",
			rows: [][]Token{
				{0, 0, 0, 1, 1, 1},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(0, 4), P(0, 5)},
		},
		{
			name: "crossing runs share a cell once",
			rows: [][]Token{
				{1, 0, 1},
				{0, 0, 0},
				{1, 0, 1},
			},
			expected: []Pos{P(0, 1), P(1, 0), P(1, 1), P(1, 2), P(2, 1)},
		},
		{
			name: "empty cells never match",
			rows: [][]Token{
				{E, E, E},
				{0, 1, 0},
			},
			expected: nil,
		},
		{
			name: "pair is not a run",
			rows: [][]Token{
				{0, 0, 1, 1},
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, 3, tc.rows)
			got := FindMatches(b)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("FindMatches() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestFindMatchesIsPure(t *testing.T) {
	b := mustBoard(t, 3, [][]Token{
		{0, 0, 0},
		{1, 2, 1},
		{1, 2, 2},
	})
	before := b.Clone()

	first := FindMatches(b)
	second := FindMatches(b)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("FindMatches not deterministic: %v vs %v", first, second)
	}
	if !b.Equal(before) {
		t.Error("FindMatches mutated the board")
	}
}
