package ai

import (
	"errors"
	"fmt"
	"log"

	"github.com/tictactician/tictactician/ai/minimax"
	"github.com/tictactician/tictactician/ttt"
)

type Config struct {
	Size  int
	ToWin int

	Human    ttt.Cell
	Computer ttt.Cell

	Debug int
}

// TicTacToe binds the rules of N x N tic-tac-toe to the generic
// minimax search. The computer is always the maximizing side.
//
// A TicTacToe holds only its construction parameters and the line set
// derived from them, so one value may be shared between goroutines.
type TicTacToe struct {
	cfg   Config
	lines []ttt.Line
}

var _ minimax.Game[*ttt.Board, int] = &TicTacToe{}

func New(cfg Config) (*TicTacToe, error) {
	if cfg.ToWin == 0 {
		cfg.ToWin = ttt.DefaultToWin
	}
	if cfg.Human == ttt.Empty && cfg.Computer == ttt.Empty {
		cfg.Human, cfg.Computer = ttt.X, ttt.O
	}
	if err := (ttt.Config{Size: cfg.Size, ToWin: cfg.ToWin}).Validate(); err != nil {
		return nil, err
	}
	if !cfg.Human.IsMark() || !cfg.Computer.IsMark() {
		return nil, ttt.ErrBadMark
	}
	if cfg.Human == cfg.Computer {
		return nil, errors.New("human and computer must use different marks")
	}
	return &TicTacToe{
		cfg:   cfg,
		lines: ttt.GenerateLines(cfg.Size, cfg.ToWin),
	}, nil
}

func (t *TicTacToe) Config() Config {
	return t.cfg
}

func (t *TicTacToe) Lines() []ttt.Line {
	return t.lines
}

// Moves returns every empty cell in ascending order. Both sides have
// the same moves available, so maximizing is ignored.
func (t *TicTacToe) Moves(b *ttt.Board, maximizing bool) []int {
	return b.Free()
}

// Apply returns a copy of b with the mover's mark at m. Playing outside
// the board or onto an occupied cell is a caller bug and panics.
func (t *TicTacToe) Apply(b *ttt.Board, m int, maximizing bool) *ttt.Board {
	mark := t.cfg.Human
	if maximizing {
		mark = t.cfg.Computer
	}
	next, err := b.Place(m, mark)
	if err != nil {
		panic(fmt.Sprintf("Apply: %v", err))
	}
	return next
}

func (t *TicTacToe) Terminal(b *ttt.Board) bool {
	return ttt.CheckWinner(b, t.cfg.Human, t.cfg.ToWin) ||
		ttt.CheckWinner(b, t.cfg.Computer, t.cfg.ToWin) ||
		b.Full()
}

// BestMove searches depth plies ahead with the computer to move and
// returns the chosen cell. ok is false when the search produced no
// move; callers are expected to fall back to some other choice.
func (t *TicTacToe) BestMove(b *ttt.Board, depth int) (int, bool) {
	r := t.Analyze(b, depth)
	return r.Move, r.OK
}

func (t *TicTacToe) Analyze(b *ttt.Board, depth int) minimax.Result[int] {
	t.checkBoard(b)
	r := minimax.Analyze[*ttt.Board, int](t, b, depth, true)
	if t.cfg.Debug > 0 {
		log.Printf("[minimax] size=%d depth=%d score=%d move=%d ok=%v visited=%d evaluated=%d terminal=%d",
			t.cfg.Size, depth, r.Score, r.Move+1, r.OK,
			r.Stats.Visited, r.Stats.Evaluated, r.Stats.Terminal)
	}
	return r
}

func (t *TicTacToe) checkBoard(b *ttt.Board) {
	if b.Size() != t.cfg.Size {
		panic(fmt.Sprintf("Analyze: wrong size: board=%d ai=%d", b.Size(), t.cfg.Size))
	}
}

type MoveScore struct {
	Move  int
	Score int64
}

// ScoreMoves scores every legal move in b for the computer by searching
// depth-1 plies below it. The first highest-scoring entry is the move
// Analyze picks at the same depth. A terminal board or depth below one
// has no scored moves.
func (t *TicTacToe) ScoreMoves(b *ttt.Board, depth int) []MoveScore {
	t.checkBoard(b)
	if depth < 1 || t.Terminal(b) {
		return nil
	}
	var out []MoveScore
	for _, m := range t.Moves(b, true) {
		v, _, _ := minimax.Search[*ttt.Board, int](t, t.Apply(b, m, true), depth-1, false)
		out = append(out, MoveScore{Move: m, Score: v})
	}
	return out
}
