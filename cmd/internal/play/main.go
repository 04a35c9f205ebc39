package play

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/cli"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/ttt"
)

type Command struct {
	x     string
	o     string
	size  int
	toWin int
	debug int
	color bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play tic-tac-toe from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play tic-tac-toe on the command line, against a human or the AI.
Without -x or -o, walks through the interactive menu.

Players: human, rand[:SEED], minimax[:DEPTH], easy, medium, hard, impossible.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.x, "x", "", "X player (moves first)")
	flags.StringVar(&c.o, "o", "", "O player")
	flags.IntVar(&c.size, "size", 3, "board size")
	flags.IntVar(&c.toWin, "to-win", ttt.DefaultToWin, "marks in a row needed to win")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.BoolVar(&c.color, "color", true, "render marks in colour")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	var err error
	if c.x == "" && c.o == "" {
		err = c.menu(ctx, in)
	} else {
		err = c.single(ctx, in)
	}
	if errors.Is(err, io.EOF) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) single(ctx context.Context, in *bufio.Reader) error {
	cfg := ttt.Config{Size: c.size, ToWin: c.toWin}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.x == "" {
		c.x = "human"
	}
	if c.o == "" {
		c.o = "human"
	}
	x, err := c.parsePlayer(in, c.x)
	if err != nil {
		return err
	}
	o, err := c.parsePlayer(in, c.o)
	if err != nil {
		return err
	}
	st := &cli.CLI{
		Config: cfg,
		Out:    os.Stdout,
		X:      x,
		O:      o,
		Color:  c.color,
	}
	_, err = st.Play(ctx)
	return err
}

func (c *Command) menu(ctx context.Context, in *bufio.Reader) error {
	p := &cli.Prompter{Out: os.Stdout, In: in}
	first := true
	for {
		if first {
			p.Introduction(c.toWin)
			first = false
		} else {
			fmt.Fprintf(os.Stdout, "\n%s\n", cli.Divider)
		}
		mode, err := p.Mode()
		if err != nil {
			return err
		}
		var d ai.Difficulty
		if mode == cli.SinglePlayer {
			if d, err = p.Difficulty(); err != nil {
				return err
			}
		}
		size, err := p.Size()
		if err != nil {
			return err
		}
		cfg := ttt.Config{Size: size, ToWin: c.toWin}
		if cfg.ToWin > size {
			cfg.ToWin = size
		}
		st := &cli.CLI{
			Config: cfg,
			Out:    os.Stdout,
			X:      cli.NewHumanPlayer(os.Stdout, in),
			O:      cli.NewHumanPlayer(os.Stdout, in),
			Color:  c.color,
		}
		if mode == cli.SinglePlayer {
			st.XName, st.OName = "You", "AI"
			st.O = ai.NewMinimax(ai.MinimaxConfig{
				Size:  size,
				ToWin: cfg.ToWin,
				Depth: d.Depth(size),
				Debug: c.debug,
			})
		}
		if _, err := st.Play(ctx); err != nil {
			return err
		}
		again, err := p.Continue()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) (ai.Player, error) {
	if s == "human" {
		return cli.NewHumanPlayer(os.Stdout, in), nil
	}
	return opt.ParseAI(s, c.size, c.toWin, c.debug)
}
