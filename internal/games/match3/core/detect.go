package core

// MinRun is the shortest run of equal gems that counts as a match.
const MinRun = 3

// FindMatches returns every cell that belongs to a horizontal or vertical run
// of MinRun or more equal gems. Each position appears once, in row-major
// order, even where a horizontal and a vertical run cross. Empty cells never
// match.
func FindMatches(b *Board) []Pos {
	marked := make([]bool, len(b.cells))
	found := 0

	mark := func(i int) {
		if !marked[i] {
			marked[i] = true
			found++
		}
	}

	// Rows, left to right.
	for r := 0; r < b.rows; r++ {
		c := 0
		for c+MinRun <= b.cols {
			base := r * b.cols
			tok := b.cells[base+c]
			if tok == Empty || b.cells[base+c+1] != tok || b.cells[base+c+2] != tok {
				c++
				continue
			}
			end := c + MinRun
			for end < b.cols && b.cells[base+end] == tok {
				end++
			}
			for i := c; i < end; i++ {
				mark(base + i)
			}
			c = end
		}
	}

	// Columns, top to bottom.
	for c := 0; c < b.cols; c++ {
		r := 0
		for r+MinRun <= b.rows {
			tok := b.cells[r*b.cols+c]
			if tok == Empty || b.cells[(r+1)*b.cols+c] != tok || b.cells[(r+2)*b.cols+c] != tok {
				r++
				continue
			}
			end := r + MinRun
			for end < b.rows && b.cells[end*b.cols+c] == tok {
				end++
			}
			for i := r; i < end; i++ {
				mark(i*b.cols + c)
			}
			r = end
		}
	}

	if found == 0 {
		return nil
	}
	out := make([]Pos, 0, found)
	for i, ok := range marked {
		if ok {
			out = append(out, Pos{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return out
}

// HasMatch reports whether any run exists on the board.
func HasMatch(b *Board) bool {
	return len(FindMatches(b)) > 0
}
