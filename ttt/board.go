package ttt

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinSize      = 3
	MaxSize      = 9
	DefaultToWin = 3
)

var (
	ErrOutOfRange = errors.New("cell index out of range")
	ErrOccupied   = errors.New("cell already occupied")
	ErrBadMark    = errors.New("not a player mark")
)

type Config struct {
	Size  int
	ToWin int
}

func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("board size %d: must be between %d and %d", c.Size, MinSize, MaxSize)
	}
	if c.ToWin < 1 || c.ToWin > c.Size {
		return fmt.Errorf("run length %d: must be between 1 and %d", c.ToWin, c.Size)
	}
	return nil
}

// Board is a square grid stored row-major: index = row*size + col.
// Boards are treated as values; every mutating operation returns a
// fresh copy.
type Board struct {
	size  int
	cells []Cell
}

func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// FromCells builds a board from a row-major slice of size*size cells.
func FromCells(size int, cells []Cell) (*Board, error) {
	if len(cells) != size*size {
		return nil, fmt.Errorf("got %d cells for a %dx%d board", len(cells), size, size)
	}
	b := New(size)
	for i, c := range cells {
		if c != Empty && !c.IsMark() {
			return nil, fmt.Errorf("cell %d: %w", i, ErrBadMark)
		}
		b.cells[i] = c
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) At(i int) Cell {
	return b.cells[i]
}

func (b *Board) Index(row, col int) int {
	return row*b.size + col
}

func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) IsEmpty(i int) bool {
	return b.cells[i] == Empty
}

// Label is the 1-based number shown for cell i when rendering.
func (b *Board) Label(i int) string {
	return strconv.Itoa(i + 1)
}

func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// MoveNumber is the number of marks on the board.
func (b *Board) MoveNumber() int {
	return len(b.cells) - b.Count(Empty)
}

func (b *Board) Full() bool {
	for _, v := range b.cells {
		if v == Empty {
			return false
		}
	}
	return true
}

// Free returns the empty cells in ascending index order.
func (b *Board) Free() []int {
	out := make([]int, 0, len(b.cells))
	for i, v := range b.cells {
		if v == Empty {
			out = append(out, i)
		}
	}
	return out
}

func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: b.Cells()}
}

// Place returns a copy of b with mark c written at index i.
func (b *Board) Place(i int, c Cell) (*Board, error) {
	if !c.IsMark() {
		return nil, ErrBadMark
	}
	if i < 0 || i >= len(b.cells) {
		return nil, fmt.Errorf("%d: %w", i+1, ErrOutOfRange)
	}
	if b.cells[i] != Empty {
		return nil, fmt.Errorf("%d: %w", i+1, ErrOccupied)
	}
	out := b.Clone()
	out.set(i, c)
	return out, nil
}

func (b *Board) set(i int, c Cell) {
	b.cells[i] = c
}

func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Outcome reports whether the game on b has finished and how.
func (b *Board) Outcome(toWin int) Outcome {
	switch {
	case CheckWinner(b, X, toWin):
		return XWins
	case CheckWinner(b, O, toWin):
		return OWins
	case b.Full():
		return Draw
	}
	return InProgress
}
