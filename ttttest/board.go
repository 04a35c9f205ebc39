// Package ttttest holds helpers shared by tests across packages.
package ttttest

import (
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

// Board parses s with notation.ParseBoard and panics on error.
func Board(s string) *ttt.Board {
	b, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return b
}

// Play places marks alternately starting with first at the given
// indices, panicking on an illegal move.
func Play(b *ttt.Board, first ttt.Cell, moves ...int) *ttt.Board {
	mark := first
	for _, m := range moves {
		var e error
		b, e = b.Place(m, mark)
		if e != nil {
			panic(e)
		}
		mark = mark.Flip()
	}
	return b
}
