// Package tei implements a small line protocol for driving the engine
// from another program:
//
//	tei                             -> id lines, then "teiok"
//	teinewgame [SIZE [TOWIN]]       start a new game
//	position startpos [moves N...]  moves are 1-based cells, X first
//	position board B [moves N...]   B in notation.ParseBoard format
//	go [depth D]                    search for the side to move
//	isready                         -> "readyok"
//	quit
//
// "go" answers with an info line and "bestmove N", or "bestmove none"
// when the search has nothing to offer.
package tei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

const DefaultSize = 3

type Engine struct {
	// ConfigFactory picks the search settings for a new game. When
	// nil, games search to DepthCap(size).
	ConfigFactory func(size, toWin int) ai.MinimaxConfig

	in  *bufio.Reader
	out io.Writer

	cfg   ai.MinimaxConfig
	board *ttt.Board
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	e.newGame(DefaultSize, ttt.DefaultToWin)
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "tei":
			fmt.Fprintln(e.out, "id name Tictactician")
			fmt.Fprintln(e.out, "teiok")
		case "quit":
			return nil
		case "teinewgame":
			size, toWin := DefaultSize, ttt.DefaultToWin
			if len(words) > 1 {
				size, err = strconv.Atoi(words[1])
				if err != nil {
					return fmt.Errorf("bad size: %s", words[1])
				}
			}
			if len(words) > 2 {
				toWin, err = strconv.Atoi(words[2])
				if err != nil {
					return fmt.Errorf("bad run length: %s", words[2])
				}
			}
			if err := (ttt.Config{Size: size, ToWin: toWin}).Validate(); err != nil {
				return err
			}
			e.newGame(size, toWin)
		case "position":
			e.board, err = parsePosition(e.cfg.Size, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				return fmt.Errorf("go: %w", err)
			}
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", strings.TrimSpace(line))
		}
	}
}

func (e *Engine) newGame(size, toWin int) {
	if e.ConfigFactory != nil {
		e.cfg = e.ConfigFactory(size, toWin)
	} else {
		e.cfg = ai.MinimaxConfig{Depth: ai.DepthCap(size)}
	}
	e.cfg.Size = size
	e.cfg.ToWin = toWin
	e.board = ttt.New(size)
}

func parsePosition(size int, words []string) (*ttt.Board, error) {
	var b *ttt.Board
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		b = ttt.New(size)
	case "board":
		if len(words) < 2 {
			return nil, errors.New("position board: not enough arguments")
		}
		var err error
		b, err = notation.ParseBoard(words[1])
		if err != nil {
			return nil, err
		}
		if b.Size() != size {
			return nil, fmt.Errorf("board has wrong size: got %d, configured for %d", b.Size(), size)
		}
		words = words[2:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return b, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		m, err := notation.ParseMove(w, size)
		if err != nil {
			return nil, err
		}
		b, err = b.Place(m, ToMove(b))
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return b, nil
}

// ToMove returns the mark whose turn it is, assuming X moved first.
func ToMove(b *ttt.Board) ttt.Cell {
	if b.Count(ttt.X) > b.Count(ttt.O) {
		return ttt.O
	}
	return ttt.X
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	depth := e.cfg.Depth
	words = words[1:]
	if len(words) > 0 {
		if len(words) != 2 || words[0] != "depth" {
			return errors.New("expected depth N")
		}
		var err error
		depth, err = strconv.Atoi(words[1])
		if err != nil || depth < 0 {
			return fmt.Errorf("bad depth: %v", words[1])
		}
	}
	mark := ToMove(e.board)
	t, err := ai.New(ai.Config{
		Size:     e.cfg.Size,
		ToWin:    e.cfg.ToWin,
		Human:    mark.Flip(),
		Computer: mark,
		Debug:    e.cfg.Debug,
	})
	if err != nil {
		return err
	}
	r := t.Analyze(e.board, depth)
	fmt.Fprintf(e.out, "info depth %d nodes %d score %d\n",
		depth, r.Stats.Visited+r.Stats.Evaluated, r.Score)
	if !r.OK {
		fmt.Fprintln(e.out, "bestmove none")
		return nil
	}
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(r.Move))
	return nil
}
