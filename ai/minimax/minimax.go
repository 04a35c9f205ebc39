// Package minimax implements plain, exhaustive depth-limited minimax
// over any two-player, zero-sum, perfect-information game.
//
// The search visits every node down to the depth cutoff. With b legal
// moves at the root, a search of depth d visits on the order of b^d
// nodes (see WorstCaseNodes); the depth parameter is the only bound on
// the work performed.
package minimax

import (
	"math"
	"math/bits"
)

// Game supplies the rules the search runs over. Implementations must
// treat states as values: Apply returns a new state and never mutates
// its argument.
type Game[S, M any] interface {
	// Moves lists the legal moves in s for the side to move. It
	// returns an empty slice only when no legal move exists.
	Moves(s S, maximizing bool) []M
	// Apply returns the state reached by playing m in s.
	Apply(s S, m M, maximizing bool) S
	// Evaluate scores s from the maximizing side's point of view.
	Evaluate(s S) int64
	// Terminal reports whether the game is over in s.
	Terminal(s S) bool
}

type Stats struct {
	Depth     int
	Generated uint64
	Evaluated uint64
	Terminal  uint64
	Visited   uint64
}

type Result[M any] struct {
	Score int64
	Move  M
	// OK is false when no move was searched: the depth was zero, the
	// root was terminal, or no legal moves were generated.
	OK    bool
	Stats Stats
}

// Search returns the minimax value of s searched to depth plies, and
// the move achieving it. Among moves of equal value the first one
// generated wins. ok is false if no move was searched, in which case
// score is g.Evaluate(s).
func Search[S, M any](g Game[S, M], s S, depth int, maximizing bool) (score int64, move M, ok bool) {
	r := Analyze(g, s, depth, maximizing)
	return r.Score, r.Move, r.OK
}

// Analyze is Search that also reports node statistics.
func Analyze[S, M any](g Game[S, M], s S, depth int, maximizing bool) Result[M] {
	sr := searcher[S, M]{g: g}
	sr.st.Depth = depth
	score, move, ok := sr.minimax(s, depth, maximizing)
	return Result[M]{
		Score: score,
		Move:  move,
		OK:    ok,
		Stats: sr.st,
	}
}

type searcher[S, M any] struct {
	g  Game[S, M]
	st Stats
}

func (sr *searcher[S, M]) minimax(s S, depth int, maximizing bool) (int64, M, bool) {
	var best M
	if depth <= 0 || sr.g.Terminal(s) {
		sr.st.Evaluated++
		if depth > 0 {
			sr.st.Terminal++
		}
		return sr.g.Evaluate(s), best, false
	}
	sr.st.Visited++

	moves := sr.g.Moves(s, maximizing)
	sr.st.Generated += uint64(len(moves))
	if len(moves) == 0 {
		sr.st.Evaluated++
		return sr.g.Evaluate(s), best, false
	}

	var bestScore int64
	found := false
	for _, m := range moves {
		child := sr.g.Apply(s, m, maximizing)
		v, _, _ := sr.minimax(child, depth-1, !maximizing)
		if !found ||
			(maximizing && v > bestScore) ||
			(!maximizing && v < bestScore) {
			bestScore = v
			best = m
			found = true
		}
	}
	return bestScore, best, true
}

// WorstCaseNodes bounds the number of nodes a search of the given depth
// visits when the root has branching legal moves and every move
// removes one option, as in games that fill cells. The result saturates
// at math.MaxUint64.
func WorstCaseNodes(branching, depth int) uint64 {
	if branching < 0 {
		branching = 0
	}
	total := uint64(1)
	level := uint64(1)
	for k := 0; k < depth && branching-k > 0; k++ {
		hi, lo := bits.Mul64(level, uint64(branching-k))
		if hi != 0 {
			return math.MaxUint64
		}
		level = lo
		sum, carry := bits.Add64(total, level, 0)
		if carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}
