package ai

import (
	"context"

	"github.com/tictactician/tictactician/ttt"
)

// Player picks a move for mark on b. The returned index must name an
// empty cell.
type Player interface {
	GetMove(ctx context.Context, b *ttt.Board, mark ttt.Cell) (int, error)
}
