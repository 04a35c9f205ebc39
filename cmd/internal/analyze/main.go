package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ai/minimax"
	"github.com/tictactician/tictactician/cli"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/tei"
	"github.com/tictactician/tictactician/ttt"
)

type Command struct {
	/* Output options */
	quiet      bool
	color      bool
	cpuProfile string

	/* Position selection */
	computer  string
	variation string

	/* Engine options */
	eval    bool
	explain bool
	all     bool
	mmopt   opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a tic-tac-toe position" }
func (*Command) Usage() string {
	return `analyze [options] BOARD

Evaluate a position given in board notation: rows separated by '/',
with x, o and '.' for the cells, e.g. "xo./.x./..o".

By default the search plays for the side to move; use -computer to
pick a side, and -variation to play additional moves (cell labels,
1-based) before analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.color, "color", true, "render marks in colour")
	flags.StringVar(&c.cpuProfile, "cpuprofile", "", "write CPU profile")

	flags.StringVar(&c.computer, "computer", "", "side to search for (x or o; default: side to move)")
	flags.StringVar(&c.variation, "variation", "", "space-separated moves to apply before analyzing")

	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain the static evaluation")
	flags.BoolVar(&c.all, "all", false, "score every legal move")
	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	b, err := notation.ParseBoard(flag.Arg(0))
	if err != nil {
		log.Printf("parse board: %v", err)
		return subcommands.ExitFailure
	}
	if c.variation != "" {
		if b, err = applyVariation(b, c.variation); err != nil {
			log.Printf("-variation: %v", err)
			return subcommands.ExitFailure
		}
	}
	mark := tei.ToMove(b)
	if c.computer != "" {
		if mark, err = notation.ParseMark(c.computer); err != nil {
			log.Printf("-computer: %v", err)
			return subcommands.ExitFailure
		}
	}

	if c.cpuProfile != "" {
		f, err := os.OpenFile(c.cpuProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalf("open cpu-profile: %s: %v", c.cpuProfile, err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := c.mmopt.BuildConfig(b.Size(), c.mmopt.ToWin)
	t, err := ai.New(ai.Config{
		Size:     b.Size(),
		ToWin:    cfg.ToWin,
		Human:    mark.Flip(),
		Computer: mark,
		Debug:    cfg.Debug,
	})
	if err != nil {
		log.Printf("analyze: %v", err)
		return subcommands.ExitFailure
	}
	analyze(os.Stdout, t, b, cfg.Depth, c)
	return subcommands.ExitSuccess
}

// applyVariation plays the labelled moves in order, starting with the
// side to move.
func applyVariation(b *ttt.Board, variation string) (*ttt.Board, error) {
	mark := tei.ToMove(b)
	for _, s := range strings.Fields(variation) {
		m, err := notation.ParseMove(s, b.Size())
		if err != nil {
			return nil, err
		}
		if b, err = b.Place(m, mark); err != nil {
			return nil, fmt.Errorf("move %s: %w", s, err)
		}
		mark = mark.Flip()
	}
	return b, nil
}

func analyze(out io.Writer, t *ai.TicTacToe, b *ttt.Board, depth int, c *Command) {
	p := message.NewPrinter(language.English)
	cfg := t.Config()
	if !c.quiet {
		cli.RenderBoard(out, b, c.color)
	}
	p.Fprintf(out, "board=%s computer=%s to-win=%d\n", notation.FormatBoard(b), cfg.Computer, cfg.ToWin)
	if c.explain {
		ai.ExplainScore(t, out, b)
	}
	if c.eval {
		p.Fprintf(out, " Val=%d\n", t.Evaluate(b))
		return
	}
	if o := b.Outcome(cfg.ToWin); o != ttt.InProgress {
		p.Fprintf(out, "game over: %s\n", o)
		return
	}

	r := t.Analyze(b, depth)
	p.Fprintf(out, "depth=%d bound=%d\n", depth, minimax.WorstCaseNodes(len(b.Free()), depth))
	if r.OK {
		p.Fprintf(out, "best=%s score=%d\n", notation.FormatMove(r.Move), r.Score)
	} else {
		p.Fprintf(out, "best=none score=%d\n", r.Score)
	}
	p.Fprintf(out, "visited=%d generated=%d evaluated=%d terminal=%d\n",
		r.Stats.Visited, r.Stats.Generated, r.Stats.Evaluated, r.Stats.Terminal)

	if c.all {
		for _, ms := range t.ScoreMoves(b, depth) {
			p.Fprintf(out, "  %3s %+d\n", notation.FormatMove(ms.Move), ms.Score)
		}
	}
}
