package ttt

import "fmt"

type Cell byte

const (
	Empty Cell = 0
	X     Cell = 'X'
	O     Cell = 'O'
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	case Empty:
		return "empty"
	default:
		panic(fmt.Sprintf("bad cell: %x", byte(c)))
	}
}

func (c Cell) Flip() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	case Empty:
		return Empty
	default:
		panic(fmt.Sprintf("bad cell: %x", byte(c)))
	}
}

// IsMark reports whether c is one of the two player marks.
func (c Cell) IsMark() bool {
	return c == X || c == O
}

type Outcome byte

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		panic(fmt.Sprintf("bad outcome: %d", int(o)))
	}
}

// Winner returns the mark that won, or Empty for draws and unfinished games.
func (o Outcome) Winner() Cell {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	}
	return Empty
}
