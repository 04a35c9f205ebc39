// Package symmetry maps boards through the eight symmetries of the
// square, which leave every tic-tac-toe line set unchanged.
package symmetry

import (
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

type Symmetry func(r, c int) (int, int)

func compose(ss ...Symmetry) Symmetry {
	return func(r, c int) (int, int) {
		for i := range ss {
			s := ss[len(ss)-i-1]
			r, c = s(r, c)
		}
		return r, c
	}
}

// Symmetries returns the symmetries of a size x size board, identity
// first.
func Symmetries(size int) []Symmetry {
	flip := func(i int) int {
		return size - 1 - i
	}

	identity := func(r, c int) (int, int) {
		return r, c
	}
	flipH := func(r, c int) (int, int) {
		return r, flip(c)
	}
	flipV := func(r, c int) (int, int) {
		return flip(r), c
	}
	transpose := func(r, c int) (int, int) {
		return c, r
	}
	rotCW := func(r, c int) (int, int) {
		return c, flip(r)
	}

	return []Symmetry{
		identity,
		flipH,
		flipV,
		transpose,
		compose(flipH, flipV, transpose),
		compose(flipH, flipV),
		rotCW,
		compose(flipH, flipV, rotCW),
	}
}

// TransformIndex maps cell index i of a size x size board through s.
func TransformIndex(s Symmetry, size, i int) int {
	r, c := s(i/size, i%size)
	return r*size + c
}

func Transform(b *ttt.Board, s Symmetry) *ttt.Board {
	n := b.Size()
	cells := make([]ttt.Cell, b.Len())
	for i := range cells {
		cells[TransformIndex(s, n, i)] = b.At(i)
	}
	out, err := ttt.FromCells(n, cells)
	if err != nil {
		panic(err)
	}
	return out
}

// Canonical returns the image of b whose notation sorts last, so two
// boards are equivalent under symmetry iff their canonical forms are
// equal.
func Canonical(b *ttt.Board) *ttt.Board {
	best := b
	key := notation.FormatBoard(b)
	for _, s := range Symmetries(b.Size())[1:] {
		t := Transform(b, s)
		if k := notation.FormatBoard(t); k > key {
			best, key = t, k
		}
	}
	return best
}

// Openings enumerates the positions reachable after plies moves (X
// first, alternating), keeping one representative per symmetry class
// and skipping finished games. The order is deterministic.
func Openings(size, toWin, plies int) []*ttt.Board {
	level := []*ttt.Board{ttt.New(size)}
	mark := ttt.X
	for p := 0; p < plies; p++ {
		seen := make(map[string]bool)
		var next []*ttt.Board
		for _, b := range level {
			for _, m := range b.Free() {
				child, err := b.Place(m, mark)
				if err != nil {
					panic(err)
				}
				if child.Outcome(toWin) != ttt.InProgress {
					continue
				}
				key := notation.FormatBoard(Canonical(child))
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, child)
			}
		}
		level = next
		mark = mark.Flip()
	}
	return level
}
