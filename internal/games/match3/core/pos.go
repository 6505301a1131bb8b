package core

import "fmt"

// Pos is a cell position on the board. Row grows downward, Col grows to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether two positions share an edge.
func (p Pos) Adjacent(other Pos) bool {
	return p.Manhattan(other) == 1
}

// Right returns the position one column to the right.
func (p Pos) Right() Pos {
	return Pos{Row: p.Row, Col: p.Col + 1}
}

// Below returns the position one row down.
func (p Pos) Below() Pos {
	return Pos{Row: p.Row + 1, Col: p.Col}
}
