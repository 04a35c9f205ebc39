package selfplay

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/symmetry"
	"github.com/tictactician/tictactician/ttt"
)

type Command struct {
	size  int
	toWin int
	p1    string
	p2    string
	seed  int64

	games int
	plies int
	swap  bool

	openings string

	debug   int
	threads int

	summary string
	chart   string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players: rand[:SEED], minimax[:DEPTH], easy, medium, hard, impossible.
Games start from every opening of -plies moves, up to symmetry, unless
-openings names a file of boards, one per line.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 3, "board size")
	flags.IntVar(&c.toWin, "to-win", ttt.DefaultToWin, "marks in a row needed to win")
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per opening/color")
	flags.IntVar(&c.plies, "plies", 1, "length of the generated openings")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.StringVar(&c.openings, "openings", "", "file of openings, 1/line in board notation")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.chart, "chart", "", "write an HTML chart of the results")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func readOpenings(path string) ([]*ttt.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []*ttt.Board
	r := bufio.NewScanner(f)
	for r.Scan() {
		line := r.Text()
		if line == "" {
			continue
		}
		b, err := notation.ParseBoard(line)
		if err != nil {
			return nil, fmt.Errorf("parse board: %q: %w", line, err)
		}
		out = append(out, b)
	}
	return out, r.Err()
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	var openings []*ttt.Board
	if c.openings != "" {
		var err error
		if openings, err = readOpenings(c.openings); err != nil {
			log.Printf("-openings: %v", err)
			return subcommands.ExitFailure
		}
	} else if c.toWin <= c.size {
		openings = symmetry.Openings(c.size, c.toWin, c.plies)
	}

	cfg := &Config{
		Size:    c.size,
		ToWin:   c.toWin,
		Debug:   c.debug,
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Initial: openings,
		Verbose: c.verbose,
		P1:      c.p1,
		P2:      c.p2,
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("selfplay: %v", err)
		return subcommands.ExitFailure
	}

	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}
	if c.chart != "" {
		if err := c.writeChart(c.chart, &st); err != nil {
			log.Println("writing chart: ", err.Error())
		}
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("[selfplay] done games=%d openings=%d seed=%d ties=%d x=%d o=%d",
		st.Count(), len(openings), c.seed, st.Ties, st.X, st.O))
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tx\to\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].XWins, st.Players[0].OWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].XWins, st.Players[1].OWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n", st.X, st.O, st.X+st.O)
	tw.Flush()

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	if a+b > 0 {
		log.Printf("[selfplay] p[one-sided]=%f", binomTest(a, b, 0.5))
	}
	return subcommands.ExitSuccess
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Size    int
	ToWin   int
	Seed    int64
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Size:    c.size,
		ToWin:   c.toWin,
		Seed:    c.seed,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}

func (c *Command) writeChart(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteChart(f, stats, c.p1, c.p2); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
