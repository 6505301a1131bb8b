// Package core provides fundamental types and utilities for the terminal
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect returns a w×h rect centered on (cx, cy).
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// GridLayout maps a rows×cols grid of equally sized cells onto the screen.
// Cells are separated by a one-character gutter so borders can be drawn
// around every cell.
type GridLayout struct {
	Origin Rect // outer bounds including the outer border
	Rows   int
	Cols   int
	CellW  int // interior width of one cell
	CellH  int // interior height of one cell
}

// NewGridLayout centers a grid horizontally on a screen of width screenW,
// starting at row top.
func NewGridLayout(rows, cols, cellW, cellH, screenW, top int) GridLayout {
	w := cols*(cellW+1) + 1
	h := rows*(cellH+1) + 1
	return GridLayout{
		Origin: Rect{X: (screenW - w) / 2, Y: top, W: w, H: h},
		Rows:   rows,
		Cols:   cols,
		CellW:  cellW,
		CellH:  cellH,
	}
}

// Cell returns the interior rect of the cell at (row, col).
func (g GridLayout) Cell(row, col int) Rect {
	return Rect{
		X: g.Origin.X + 1 + col*(g.CellW+1),
		Y: g.Origin.Y + 1 + row*(g.CellH+1),
		W: g.CellW,
		H: g.CellH,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
