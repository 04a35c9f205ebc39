package ai

import (
	"context"
	"log"
	"sync"

	"github.com/tictactician/tictactician/ttt"
)

type MinimaxConfig struct {
	Size  int
	ToWin int
	Depth int
	Debug int
	Seed  int64
}

// MinimaxAI plays whichever mark it is asked to move for, searching
// Depth plies with that mark as the maximizing side. A depth of zero,
// or a search that yields no move, falls back to a random legal move.
type MinimaxAI struct {
	cfg      MinimaxConfig
	fallback *RandomAI

	mu       sync.Mutex
	adapters map[ttt.Cell]*TicTacToe
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	if cfg.ToWin == 0 {
		cfg.ToWin = ttt.DefaultToWin
	}
	return &MinimaxAI{
		cfg:      cfg,
		fallback: NewRandom(cfg.Seed),
		adapters: make(map[ttt.Cell]*TicTacToe, 2),
	}
}

func (m *MinimaxAI) Depth() int {
	return m.cfg.Depth
}

func (m *MinimaxAI) adapter(mark ttt.Cell) (*TicTacToe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.adapters[mark]; ok {
		return a, nil
	}
	a, err := New(Config{
		Size:     m.cfg.Size,
		ToWin:    m.cfg.ToWin,
		Human:    mark.Flip(),
		Computer: mark,
		Debug:    m.cfg.Debug,
	})
	if err != nil {
		return nil, err
	}
	m.adapters[mark] = a
	return a, nil
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *ttt.Board, mark ttt.Cell) (int, error) {
	if m.cfg.Depth > 0 {
		a, err := m.adapter(mark)
		if err != nil {
			return 0, err
		}
		if mv, ok := a.BestMove(b, m.cfg.Depth); ok {
			return mv, nil
		}
		if m.cfg.Debug > 0 {
			log.Printf("[minimax] no move found at depth=%d, falling back to random", m.cfg.Depth)
		}
	}
	return m.fallback.pick(b)
}
