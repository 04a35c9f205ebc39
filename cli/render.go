package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/tictactician/tictactician/ttt"
)

// RenderBoard draws b as a grid, with empty cells showing the number a
// player types to claim them:
//
//	+----+----+----+
//	|  1 |  X |  3 |
//	+----+----+----+
func RenderBoard(out io.Writer, b *ttt.Board, color bool) {
	au := aurora.NewAurora(color)
	n := b.Size()
	border := strings.Repeat("+----", n) + "+"
	fmt.Fprintln(out)
	for r := 0; r < n; r++ {
		cells := make([]string, n)
		for c := 0; c < n; c++ {
			i := b.Index(r, c)
			switch b.At(i) {
			case ttt.X:
				cells[c] = au.Bold(au.Red(" X")).String()
			case ttt.O:
				cells[c] = au.Bold(au.Green(" O")).String()
			default:
				cells[c] = fmt.Sprintf("%2s", b.Label(i))
			}
		}
		fmt.Fprintln(out, border)
		fmt.Fprintf(out, "| %s |\n", strings.Join(cells, " | "))
	}
	fmt.Fprintln(out, border)
	fmt.Fprintln(out)
}
