// Package notation reads and writes the one-line board format used by
// the command-line tools: rows top to bottom separated by '/', with
// 'x', 'o' and '.' for the cells, e.g. "xo./.x./..o".
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tictactician/tictactician/ttt"
)

var ErrEmpty = errors.New("empty board string")

func ParseBoard(s string) (*ttt.Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	rows := strings.Split(s, "/")
	size := len(rows)
	if size < ttt.MinSize || size > ttt.MaxSize {
		return nil, fmt.Errorf("bad size board: %d", size)
	}
	cells := make([]ttt.Cell, 0, size*size)
	for i, r := range rows {
		if len(r) != size {
			return nil, fmt.Errorf("row %d bad length: %d", i+1, len(r))
		}
		for j := 0; j < len(r); j++ {
			c, err := parseCell(r[j])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			cells = append(cells, c)
		}
	}
	return ttt.FromCells(size, cells)
}

func parseCell(ch byte) (ttt.Cell, error) {
	switch ch {
	case 'x', 'X':
		return ttt.X, nil
	case 'o', 'O':
		return ttt.O, nil
	case '.', '_', '-':
		return ttt.Empty, nil
	}
	return ttt.Empty, fmt.Errorf("bad cell %q", ch)
}

func FormatBoard(b *ttt.Board) string {
	var out strings.Builder
	n := b.Size()
	for r := 0; r < n; r++ {
		if r != 0 {
			out.WriteByte('/')
		}
		for c := 0; c < n; c++ {
			out.WriteByte(formatCell(b.At(b.Index(r, c))))
		}
	}
	return out.String()
}

func formatCell(c ttt.Cell) byte {
	switch c {
	case ttt.X:
		return 'x'
	case ttt.O:
		return 'o'
	}
	return '.'
}

// ParseMark parses "x" or "o" in either case.
func ParseMark(s string) (ttt.Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return ttt.X, nil
	case "o":
		return ttt.O, nil
	}
	return ttt.Empty, fmt.Errorf("bad mark: %q", s)
}

// ParseMove parses a 1-based cell label into a board index.
func ParseMove(s string, size int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad move %q", s)
	}
	if n < 1 || n > size*size {
		return 0, fmt.Errorf("move %d: %w", n, ttt.ErrOutOfRange)
	}
	return n - 1, nil
}

// FormatMove renders a board index as its 1-based label.
func FormatMove(i int) string {
	return strconv.Itoa(i + 1)
}
