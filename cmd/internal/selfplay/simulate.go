package selfplay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/tei"
	"github.com/tictactician/tictactician/ttt"
)

type Config struct {
	Games int

	Verbose bool

	// Initial positions to start games from. Empty means the empty
	// board.
	Initial []*ttt.Board

	P1, P2 string

	Size  int
	ToWin int
	Debug int

	Swap    bool
	Threads int
	Seed    int64
}

func (c *Config) validate() error {
	if err := (ttt.Config{Size: c.Size, ToWin: c.ToWin}).Validate(); err != nil {
		return err
	}
	if c.Games < 1 {
		return errors.New("games must be positive")
	}
	if c.Threads < 1 {
		return errors.New("threads must be positive")
	}
	for _, b := range c.Initial {
		if b.Size() != c.Size {
			return fmt.Errorf("opening %s: wrong size", notation.FormatBoard(b))
		}
	}
	return nil
}

type PlayerStats struct {
	Wins  int
	XWins int
	OWins int
}

type Stats struct {
	Players [2]PlayerStats
	X, O    int
	Ties    int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.X + s.O + s.Ties
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	for i := range out.Players {
		out.Players[i].Wins += other.Players[i].Wins
		out.Players[i].XWins += other.Players[i].XWins
		out.Players[i].OWins += other.Players[i].OWins
	}
	out.X += other.X
	out.O += other.O
	out.Ties += other.Ties
	out.Games = nil
	return out
}

func (s *Stats) record(r Result) {
	switch r.Outcome {
	case ttt.XWins:
		s.X++
	case ttt.OWins:
		s.O++
	default:
		s.Ties++
	}
	if w := r.Outcome.Winner(); w != ttt.Empty {
		pst := &s.Players[0]
		if w != r.P1 {
			pst = &s.Players[1]
		}
		pst.Wins++
		if w == ttt.X {
			pst.XWins++
		} else {
			pst.OWins++
		}
	}
	s.Games = append(s.Games, r)
}

type gameSpec struct {
	opening *ttt.Board
	oi      int
	i       int
	seed    int64
	p1      ttt.Cell
}

type Result struct {
	Opening int
	Game    int
	P1      ttt.Cell
	Initial *ttt.Board
	Board   *ttt.Board
	Moves   []int
	Outcome ttt.Outcome
}

// Simulate plays every configured game and returns the tallies. Games
// are listed in opening order regardless of which worker finished
// first.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	if err := c.validate(); err != nil {
		return Stats{}, err
	}
	initial := c.Initial
	if len(initial) == 0 {
		initial = []*ttt.Board{ttt.New(c.Size)}
	}

	grp, ctx := errgroup.WithContext(ctx)
	specs := make(chan gameSpec)
	results := make(chan Result)
	grp.Go(func() error {
		defer close(specs)
		r := rand.New(rand.NewSource(c.Seed))
		for oi, b := range initial {
			n := c.Games
			if c.Swap {
				n *= 2
			}
			for g := 0; g < n; g++ {
				p1 := ttt.X
				if c.Swap && g%2 == 1 {
					p1 = ttt.O
				}
				spec := gameSpec{opening: b, oi: oi, i: g, seed: r.Int63(), p1: p1}
				select {
				case specs <- spec:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})

	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < c.Threads; i++ {
		workers.Go(func() error {
			for g := range specs {
				r, err := playGame(wctx, c, g)
				if err != nil {
					return err
				}
				select {
				case results <- r:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	grp.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	var st Stats
	for r := range results {
		if c.Verbose {
			log.Printf("[selfplay] game n=%d/%d plies=%d p1=%s outcome=%s",
				r.Opening, r.Game, r.Board.MoveNumber(), r.P1, r.Outcome)
		}
		st.record(r)
	}
	if err := grp.Wait(); err != nil {
		return st, err
	}
	sort.Slice(st.Games, func(i, j int) bool {
		a, b := st.Games[i], st.Games[j]
		if a.Opening != b.Opening {
			return a.Opening < b.Opening
		}
		return a.Game < b.Game
	})
	return st, nil
}

func playGame(ctx context.Context, c *Config, g gameSpec) (Result, error) {
	p1, err := buildPlayer(c, c.P1, g.seed)
	if err != nil {
		return Result{}, fmt.Errorf("p1: %w", err)
	}
	p2, err := buildPlayer(c, c.P2, g.seed+1)
	if err != nil {
		return Result{}, fmt.Errorf("p2: %w", err)
	}
	players := map[ttt.Cell]ai.Player{g.p1: p1, g.p1.Flip(): p2}

	b := g.opening
	var moves []int
	mark := tei.ToMove(b)
	for b.Outcome(c.ToWin) == ttt.InProgress {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		m, err := players[mark].GetMove(ctx, b, mark)
		if err != nil {
			return Result{}, fmt.Errorf("get move: %w", err)
		}
		next, err := b.Place(m, mark)
		if err != nil {
			panic(fmt.Sprintf("illegal move: %s: %v", notation.FormatMove(m), err))
		}
		b = next
		moves = append(moves, m)
		mark = mark.Flip()
	}
	return Result{
		Opening: g.oi,
		Game:    g.i,
		P1:      g.p1,
		Initial: g.opening,
		Board:   b,
		Moves:   moves,
		Outcome: b.Outcome(c.ToWin),
	}, nil
}

// buildPlayer makes a fresh player for one game. An unseeded random
// player takes the game's seed so reruns with the same -seed replay
// the same games.
func buildPlayer(c *Config, s string, seed int64) (ai.Player, error) {
	if s == "rand" {
		return ai.NewRandom(seed), nil
	}
	if s == "minimax" {
		return ai.NewMinimax(ai.MinimaxConfig{
			Size:  c.Size,
			ToWin: c.ToWin,
			Depth: ai.DepthCap(c.Size),
			Debug: c.Debug,
			Seed:  seed,
		}), nil
	}
	return opt.ParseAI(s, c.Size, c.ToWin, c.Debug)
}
