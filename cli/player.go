package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
)

func NewHumanPlayer(out io.Writer, in *bufio.Reader) ai.Player {
	return &humanPlayer{out, in}
}

type humanPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (h *humanPlayer) GetMove(ctx context.Context, b *ttt.Board, mark ttt.Cell) (int, error) {
	max := b.Len()
	for {
		fmt.Fprintf(h.out, "It's your turn, player %s! Select 1 - %d: ", mark, max)
		line, err := h.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, err
		}
		n, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil || n < 1 || n > max {
			fmt.Fprintln(h.out, "Probably typo. Try again.")
			if err != nil {
				return 0, err
			}
			continue
		}
		if !b.IsEmpty(n - 1) {
			fmt.Fprintln(h.out, "Spot already taken. Try again.")
			if err != nil {
				return 0, err
			}
			continue
		}
		return n - 1, nil
	}
}
