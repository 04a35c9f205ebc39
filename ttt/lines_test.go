package ttt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/ttttest"
)

func TestGenerateLinesCount(t *testing.T) {
	for n := ttt.MinSize; n <= ttt.MaxSize; n++ {
		for k := 1; k <= n; k++ {
			lines := ttt.GenerateLines(n, k)
			span := n - k + 1
			want := 2*n*span + 2*span*span
			if len(lines) != want {
				t.Errorf("GenerateLines(%d, %d): got %d lines, want %d", n, k, len(lines), want)
			}
			for _, l := range lines {
				if len(l) != k {
					t.Fatalf("GenerateLines(%d, %d): line %v has length %d", n, k, l, len(l))
				}
				for _, i := range l {
					if i < 0 || i >= n*n {
						t.Fatalf("GenerateLines(%d, %d): index %d out of range", n, k, i)
					}
				}
			}
		}
	}
}

func TestGenerateLines3x3(t *testing.T) {
	lines := ttt.GenerateLines(3, 3)
	want := []ttt.Line{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
	assert.Equal(t, want, lines)
}

// Every materialized line, when filled with a mark, must be detected
// by CheckWinner, and nothing shorter must be.
func TestLinesAgreeWithCheckWinner(t *testing.T) {
	for _, tc := range []struct{ n, k int }{{3, 3}, {4, 3}, {5, 4}, {6, 3}, {9, 5}} {
		for _, l := range ttt.GenerateLines(tc.n, tc.k) {
			cells := make([]ttt.Cell, tc.n*tc.n)
			for _, i := range l {
				cells[i] = ttt.O
			}
			b, err := ttt.FromCells(tc.n, cells)
			if err != nil {
				t.Fatal(err)
			}
			if !ttt.CheckWinner(b, ttt.O, tc.k) {
				t.Errorf("n=%d k=%d line %v not detected", tc.n, tc.k, l)
			}
			if ttt.CheckWinner(b, ttt.X, tc.k) {
				t.Errorf("n=%d k=%d line %v detected for wrong mark", tc.n, tc.k, l)
			}
			cells[l[0]] = ttt.Empty
			b, _ = ttt.FromCells(tc.n, cells)
			if ttt.CheckWinner(b, ttt.O, tc.k) {
				t.Errorf("n=%d k=%d broken line %v detected", tc.n, tc.k, l)
			}
		}
	}
}

func TestCheckWinner(t *testing.T) {
	cases := []struct {
		board string
		toWin int
		x, o  bool
	}{
		{"xxx/oo./...", 3, true, false},
		{"xo./xo./x..", 3, true, false},
		{"o.x/.ox/x.o", 3, false, true},
		{"xxo/.o./o..", 3, false, true},
		{"xox/oxo/oxo", 3, false, false},
		{"..../.xx./..../....", 3, false, false},
		{"..../.xxx/..../....", 3, true, false},
		{"...o/..o./.o../....", 3, false, true},
		{"x.../.x../..x./....", 3, true, false},
		{"x.../.x../..../...x", 3, false, false},
		{"x.../.x../..../...x", 2, true, false},
	}
	for _, tc := range cases {
		b := ttttest.Board(tc.board)
		if got := ttt.CheckWinner(b, ttt.X, tc.toWin); got != tc.x {
			t.Errorf("CheckWinner(%q, X, %d)=%v", tc.board, tc.toWin, got)
		}
		if got := ttt.CheckWinner(b, ttt.O, tc.toWin); got != tc.o {
			t.Errorf("CheckWinner(%q, O, %d)=%v", tc.board, tc.toWin, got)
		}
	}
}

func TestAntiDiagonalHumanWin(t *testing.T) {
	b := ttttest.Board("oxx/xx./x.o")
	assert.True(t, ttt.CheckWinner(b, ttt.X, 3))
	assert.Equal(t, ttt.X, ttt.Winner(b, 3))
	assert.Equal(t, ttt.XWins, b.Outcome(3))
}
