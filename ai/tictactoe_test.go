package ai

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/ttttest"
)

func newTicTacToe(t testing.TB, size, toWin int) *TicTacToe {
	a, err := New(Config{Size: size, ToWin: toWin, Human: ttt.X, Computer: ttt.O})
	require.NoError(t, err)
	return a
}

func TestNewValidates(t *testing.T) {
	_, err := New(Config{Size: 2, ToWin: 2})
	assert.Error(t, err)
	_, err = New(Config{Size: 3, ToWin: 4})
	assert.Error(t, err)
	_, err = New(Config{Size: 3, ToWin: 3, Human: ttt.X, Computer: ttt.X})
	assert.Error(t, err)

	a, err := New(Config{Size: 4})
	require.NoError(t, err)
	assert.Equal(t, ttt.DefaultToWin, a.Config().ToWin)
	assert.Equal(t, ttt.X, a.Config().Human)
	assert.Equal(t, ttt.O, a.Config().Computer)
	assert.Len(t, a.Lines(), ttt.LineCount(4, 3))
}

// randomBoards plays random games and collects every position reached.
func randomBoards(size, toWin, games int, seed int64) []*ttt.Board {
	r := rand.New(rand.NewSource(seed))
	var out []*ttt.Board
	for g := 0; g < games; g++ {
		b := ttt.New(size)
		mark := ttt.X
		out = append(out, b)
		for b.Outcome(toWin) == ttt.InProgress {
			free := b.Free()
			b, _ = b.Place(free[r.Intn(len(free))], mark)
			mark = mark.Flip()
			out = append(out, b)
		}
	}
	return out
}

func TestApplyChangesOneCell(t *testing.T) {
	a := newTicTacToe(t, 4, 3)
	for _, b := range randomBoards(4, 3, 20, 1) {
		before := b.Cells()
		for _, maximizing := range []bool{true, false} {
			for _, m := range a.Moves(b, maximizing) {
				require.True(t, b.IsEmpty(m), "move %d onto occupied cell", m)
				child := a.Apply(b, m, maximizing)
				assert.Equal(t, before, b.Cells(), "Apply mutated its input")
				diff := 0
				for i := 0; i < b.Len(); i++ {
					if child.At(i) != b.At(i) {
						diff++
						want := ttt.X
						if maximizing {
							want = ttt.O
						}
						assert.Equal(t, want, child.At(i))
						assert.Equal(t, m, i)
					}
				}
				assert.Equal(t, 1, diff)
			}
		}
	}
}

func TestMovesAscending(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("x.o/.x./o..")
	assert.Equal(t, []int{1, 3, 5, 7, 8}, a.Moves(b, true))
	assert.Equal(t, a.Moves(b, true), a.Moves(b, false))
}

func TestApplyPanicsOnOccupied(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("x../.../...")
	assert.Panics(t, func() { a.Apply(b, 0, true) })
	assert.Panics(t, func() { a.Apply(b, 9, true) })
}

func TestEvaluateWins(t *testing.T) {
	for _, tc := range []struct{ size, toWin int }{{3, 3}, {4, 3}, {5, 4}} {
		a := newTicTacToe(t, tc.size, tc.toWin)
		for _, b := range randomBoards(tc.size, tc.toWin, 30, 7) {
			cw := ttt.CheckWinner(b, ttt.O, tc.toWin)
			hw := ttt.CheckWinner(b, ttt.X, tc.toWin)
			require.False(t, cw && hw, "both sides won on %s", notation.FormatBoard(b))
			v := a.Evaluate(b)
			switch {
			case cw:
				assert.Equal(t, WinScore, v)
			case hw:
				assert.Equal(t, -WinScore, v)
			default:
				assert.Less(t, v, WinScore)
				assert.Greater(t, v, -WinScore)
			}
		}
	}
}

func TestTerminal(t *testing.T) {
	a := newTicTacToe(t, 4, 3)
	for _, b := range randomBoards(4, 3, 30, 3) {
		won := ttt.Winner(b, 3) != ttt.Empty
		noMoves := len(a.Moves(b, true)) == 0
		assert.Equal(t, won || noMoves, a.Terminal(b), notation.FormatBoard(b))
	}
}

func TestEvaluateHeuristic(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	cases := []struct {
		board string
		score int64
	}{
		{".../.../...", 0},
		{".../.o./...", 4},
		{".../.x./...", -4},
		{"o../.../...", 3},
		{".o./.../...", 2},
		{"oo./x../x..", 1},
		{"xox/xoo/oxx", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, a.Evaluate(ttttest.Board(tc.board)), tc.board)
	}
}

func TestExplainScore(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	var buf bytes.Buffer
	ExplainScore(a, &buf, ttttest.Board(".../.o./..."))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, out, "4-5-6")
	assert.Contains(t, out, "2-5-8")
	assert.Contains(t, out, "1-5-9")
	assert.Contains(t, out, "3-5-7")
	assert.Contains(t, lines[5], "+4")
}

func TestLiveTwoInARow(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("oo./x../x..")
	assert.False(t, a.Terminal(b))
	assert.Greater(t, a.Evaluate(b), int64(0))
}

func TestAntiDiagonalIsTerminal(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("o.x/.x./xo.")
	assert.True(t, ttt.CheckWinner(b, ttt.X, 3))
	assert.True(t, a.Terminal(b))
	assert.Equal(t, -WinScore, a.Evaluate(b))
}

func TestFullBoard(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("xox/xoo/oxx")
	assert.True(t, a.Terminal(b))
	assert.Empty(t, a.Moves(b, true))
	_, ok := a.BestMove(b, 9)
	assert.False(t, ok)
}

func TestDepthZero(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board("oo./x../x..")
	r := a.Analyze(b, 0)
	assert.False(t, r.OK)
	assert.Equal(t, a.Evaluate(b), r.Score)
}

func TestTakesWin(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	for depth := 1; depth <= 5; depth++ {
		m, ok := a.BestMove(ttttest.Board("oo./xx./..."), depth)
		assert.True(t, ok)
		assert.Equal(t, 2, m, "depth=%d", depth)
	}
}

func TestBlocksThreat(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	for depth := 2; depth <= 7; depth++ {
		m, ok := a.BestMove(ttttest.Board("xx./o../..."), depth)
		assert.True(t, ok)
		assert.Equal(t, 2, m, "depth=%d", depth)
	}
}

func TestTieBreakFirstMove(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	b := ttttest.Board(".../.o./...")
	for _, corner := range []int{0, 2, 6, 8} {
		assert.Equal(t, int64(7), a.Evaluate(a.Apply(b, corner, true)))
	}
	m, ok := a.BestMove(b, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, m)

	// Every opening move draws under perfect play, so the first
	// one generated is kept.
	m, ok = a.BestMove(ttt.New(3), 9)
	assert.True(t, ok)
	assert.Equal(t, 0, m)
}

func TestScoreMovesAgreesWithBestMove(t *testing.T) {
	a := newTicTacToe(t, 3, 3)
	for _, b := range randomBoards(3, 3, 30, 7) {
		for _, depth := range []int{1, 2, 3} {
			scores := a.ScoreMoves(b, depth)
			mv, ok := a.BestMove(b, depth)
			if !ok {
				assert.Empty(t, scores, notation.FormatBoard(b))
				continue
			}
			require.NotEmpty(t, scores)
			best := scores[0]
			for _, s := range scores[1:] {
				if s.Score > best.Score {
					best = s
				}
			}
			assert.Equal(t, mv, best.Move, "%s depth=%d", notation.FormatBoard(b), depth)
			assert.Equal(t, a.Analyze(b, depth).Score, best.Score)
		}
	}
	assert.Nil(t, a.ScoreMoves(ttt.New(3), 0))
}

func TestLargerBoards(t *testing.T) {
	for _, tc := range []struct{ size, toWin int }{{5, 4}, {7, 3}, {9, 5}} {
		a := newTicTacToe(t, tc.size, tc.toWin)
		depth := DepthCap(tc.size)
		if depth > 2 {
			depth = 2
		}
		b := ttt.New(tc.size)
		m, ok := a.BestMove(b, depth)
		require.True(t, ok)
		assert.True(t, b.IsEmpty(m))
	}
}

// perfectPlayNeverLoses walks every human reply against a full-depth
// computer and fails if the human ever completes a line.
func perfectPlayNeverLoses(t *testing.T, a *TicTacToe, b *ttt.Board, humanToMove bool, seen map[string]bool) {
	key := notation.FormatBoard(b)
	if humanToMove {
		key += " h"
	}
	if seen[key] {
		return
	}
	seen[key] = true

	if ttt.CheckWinner(b, ttt.X, 3) {
		t.Fatalf("human won: %s", notation.FormatBoard(b))
	}
	if a.Terminal(b) {
		return
	}
	if humanToMove {
		for _, m := range b.Free() {
			perfectPlayNeverLoses(t, a, a.Apply(b, m, false), false, seen)
		}
		return
	}
	m, ok := a.BestMove(b, 9)
	if !ok {
		t.Fatalf("no move on %s", notation.FormatBoard(b))
	}
	perfectPlayNeverLoses(t, a, a.Apply(b, m, true), true, seen)
}

func TestPerfectPlayNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 3x3 search")
	}
	a := newTicTacToe(t, 3, 3)
	seen := make(map[string]bool)
	perfectPlayNeverLoses(t, a, ttt.New(3), true, seen)
	perfectPlayNeverLoses(t, a, ttt.New(3), false, seen)
}

func TestSearchIsDeterministic(t *testing.T) {
	a := newTicTacToe(t, 4, 3)
	b := ttttest.Board("x.../.o../..x./....")
	first := a.Analyze(b, 3)
	for i := 0; i < 3; i++ {
		again := a.Analyze(b, 3)
		assert.Equal(t, first.Move, again.Move)
		assert.Equal(t, first.Score, again.Score)
		assert.Equal(t, first.Stats, again.Stats)
	}
}

func BenchmarkMinimax(b *testing.B) {
	a := newTicTacToe(b, 3, 3)
	board := ttt.New(3)
	for i := 0; i < b.N; i++ {
		a.BestMove(board, 9)
	}
}
