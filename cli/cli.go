package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

type Result struct {
	Board   *ttt.Board
	Outcome ttt.Outcome
	Moves   []int
}

// CLI runs one game between X and O on the terminal. X moves first.
type CLI struct {
	Config ttt.Config
	Out    io.Writer
	X      ai.Player
	O      ai.Player
	Color  bool

	// Names are used in the move and result announcements; they
	// default to "Player X" and "Player O".
	XName, OName string

	b     *ttt.Board
	moves []int
}

func (c *CLI) Play(ctx context.Context) (*Result, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	c.moves = nil
	c.b = ttt.New(c.Config.Size)
	mark := ttt.X
	for {
		c.render()
		if o := c.b.Outcome(c.Config.ToWin); o != ttt.InProgress {
			c.announce(o)
			return &Result{Board: c.b, Outcome: o, Moves: c.moves}, nil
		}
		p := c.player(mark)
		_, human := p.(*humanPlayer)
		if !human {
			fmt.Fprintln(c.Out, "Let me think... please wait.")
		}
		m, err := p.GetMove(ctx, c.b, mark)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name(mark), err)
		}
		next, err := c.b.Place(m, mark)
		if err != nil {
			fmt.Fprintln(c.Out, "illegal move:", err)
			continue
		}
		if !human {
			fmt.Fprintf(c.Out, "%s selected %s\n", c.name(mark), notation.FormatMove(m))
		}
		c.b = next
		c.moves = append(c.moves, m)
		mark = mark.Flip()
	}
}

func (c *CLI) Moves() []int {
	return c.moves
}

func (c *CLI) player(mark ttt.Cell) ai.Player {
	if mark == ttt.X {
		return c.X
	}
	return c.O
}

func (c *CLI) name(mark ttt.Cell) string {
	switch {
	case mark == ttt.X && c.XName != "":
		return c.XName
	case mark == ttt.O && c.OName != "":
		return c.OName
	}
	return "Player " + mark.String()
}

func (c *CLI) announce(o ttt.Outcome) {
	if o == ttt.Draw {
		fmt.Fprintln(c.Out, "It's a draw!")
		return
	}
	name := c.name(o.Winner())
	verb := "wins"
	if name == "You" {
		verb = "win"
	}
	fmt.Fprintf(c.Out, "🎉 %s %s! 🎉\n", name, verb)
}

func (c *CLI) render() {
	RenderBoard(c.Out, c.b, c.Color)
}
