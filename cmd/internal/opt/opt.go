package opt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
)

// Minimax is the flag group shared by every command that runs a search.
type Minimax struct {
	Seed  int64
	Debug int
	Depth int
	ToWin int
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.Int64Var(&o.Seed, "seed", 0, "seed for the random fallback player")
	flags.IntVar(&o.Depth, "depth", 0, "minimax depth (0 picks the deepest tractable depth for the board size)")
	flags.IntVar(&o.ToWin, "to-win", ttt.DefaultToWin, "marks in a row needed to win")
}

func (o *Minimax) BuildConfig(size, toWin int) ai.MinimaxConfig {
	depth := o.Depth
	if depth == 0 {
		depth = ai.DepthCap(size)
	}
	return ai.MinimaxConfig{
		Size:  size,
		ToWin: toWin,
		Depth: depth,
		Debug: o.Debug,
		Seed:  o.Seed,
	}
}

// ParseAI builds a computer player from its name: rand[:SEED],
// minimax[:DEPTH], or a difficulty name.
func ParseAI(s string, size, toWin, debug int) (ai.Player, error) {
	if d, err := ai.ParseDifficulty(s); err == nil && len(s) > 1 {
		return ai.NewMinimax(ai.MinimaxConfig{
			Size:  size,
			ToWin: toWin,
			Depth: d.Depth(size),
			Debug: debug,
		}), nil
	}
	if strings.HasPrefix(s, "rand") {
		var seed int64
		if len(s) > len("rand") {
			i, err := strconv.ParseInt(strings.TrimPrefix(s, "rand:"), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad seed %q: %w", s, err)
			}
			seed = i
		}
		return ai.NewRandom(seed), nil
	}
	if strings.HasPrefix(s, "minimax") {
		depth := ai.DepthCap(size)
		if len(s) > len("minimax") {
			i, err := strconv.Atoi(strings.TrimPrefix(s, "minimax:"))
			if err != nil {
				return nil, fmt.Errorf("bad depth %q: %w", s, err)
			}
			depth = i
		}
		return ai.NewMinimax(ai.MinimaxConfig{
			Size:  size,
			ToWin: toWin,
			Depth: depth,
			Debug: debug,
		}), nil
	}
	return nil, fmt.Errorf("unparseable player: %s", s)
}
