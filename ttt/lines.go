package ttt

// A Line is the ordered list of cell indices making up one candidate
// winning run.
type Line []int

// CheckWinner reports whether mark owns toWin consecutive cells in any
// row, column, diagonal or anti-diagonal of b. The game loop and the
// AI's evaluation both go through this function so they agree on what
// counts as a win.
func CheckWinner(b *Board, mark Cell, toWin int) bool {
	n := b.size
	if toWin < 1 || toWin > n {
		return false
	}
	run := func(start, step int) bool {
		for k := 0; k < toWin; k++ {
			if b.cells[start+k*step] != mark {
				return false
			}
		}
		return true
	}
	span := n - toWin + 1
	for r := 0; r < n; r++ {
		for c := 0; c < span; c++ {
			if run(r*n+c, 1) {
				return true
			}
		}
	}
	for c := 0; c < n; c++ {
		for r := 0; r < span; r++ {
			if run(r*n+c, n) {
				return true
			}
		}
	}
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			if run(r*n+c, n+1) {
				return true
			}
		}
	}
	for r := 0; r < span; r++ {
		for c := toWin - 1; c < n; c++ {
			if run(r*n+c, n-1) {
				return true
			}
		}
	}
	return false
}

// Winner returns X or O if that mark has completed a run, and Empty
// otherwise.
func Winner(b *Board, toWin int) Cell {
	if CheckWinner(b, X, toWin) {
		return X
	}
	if CheckWinner(b, O, toWin) {
		return O
	}
	return Empty
}

// LineCount is the number of lines GenerateLines returns for a size x
// size board and run length toWin.
func LineCount(size, toWin int) int {
	span := size - toWin + 1
	return 2*size*span + 2*span*span
}

// GenerateLines materializes every window CheckWinner scans, in the
// order rows, columns, diagonals, anti-diagonals.
func GenerateLines(size, toWin int) []Line {
	if toWin < 1 || toWin > size {
		return nil
	}
	span := size - toWin + 1
	lines := make([]Line, 0, LineCount(size, toWin))
	line := func(r, c, dr, dc int) Line {
		l := make(Line, toWin)
		for k := range l {
			l[k] = (r+k*dr)*size + (c + k*dc)
		}
		return l
	}
	for r := 0; r < size; r++ {
		for c := 0; c < span; c++ {
			lines = append(lines, line(r, c, 0, 1))
		}
	}
	for c := 0; c < size; c++ {
		for r := 0; r < span; r++ {
			lines = append(lines, line(r, c, 1, 0))
		}
	}
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			lines = append(lines, line(r, c, 1, 1))
		}
	}
	for r := 0; r < span; r++ {
		for c := toWin - 1; c < size; c++ {
			lines = append(lines, line(r, c, 1, -1))
		}
	}
	return lines
}
