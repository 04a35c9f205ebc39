package ai

import (
	"context"
	"errors"
	"math/rand"

	"github.com/tictactician/tictactician/ttt"
)

var ErrNoMoves = errors.New("no legal moves")

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *ttt.Board, mark ttt.Cell) (int, error) {
	return r.pick(b)
}

func (r *RandomAI) pick(b *ttt.Board) (int, error) {
	moves := b.Free()
	if len(moves) == 0 {
		return 0, ErrNoMoves
	}
	return moves[r.r.Intn(len(moves))], nil
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
