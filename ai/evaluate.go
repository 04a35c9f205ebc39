package ai

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

const (
	// WinScore is the value of a position where the computer has
	// completed a line; -WinScore is a human win.
	WinScore int64 = 100

	// Each mark in a line the opponent has not touched is worth one
	// point to its owner.
	liveMarkWeight int64 = 1
)

// Evaluate scores b from the computer's point of view. Completed lines
// score ±WinScore. Otherwise every line held by only one side counts
// that side's marks in it, positive for the computer and negative for
// the human.
func (t *TicTacToe) Evaluate(b *ttt.Board) int64 {
	if ttt.CheckWinner(b, t.cfg.Computer, t.cfg.ToWin) {
		return WinScore
	}
	if ttt.CheckWinner(b, t.cfg.Human, t.cfg.ToWin) {
		return -WinScore
	}
	var score int64
	for _, l := range t.lines {
		score += t.scoreLine(b, l)
	}
	return score
}

func (t *TicTacToe) scoreLine(b *ttt.Board, l ttt.Line) int64 {
	mine, theirs := t.lineCounts(b, l)
	switch {
	case theirs == 0 && mine > 0:
		return mine * liveMarkWeight
	case mine == 0 && theirs > 0:
		return -theirs * liveMarkWeight
	}
	return 0
}

func (t *TicTacToe) lineCounts(b *ttt.Board, l ttt.Line) (mine, theirs int64) {
	for _, i := range l {
		switch b.At(i) {
		case t.cfg.Computer:
			mine++
		case t.cfg.Human:
			theirs++
		}
	}
	return mine, theirs
}

// ExplainScore writes the lines that contribute to Evaluate(b), one per
// row, followed by the total.
func ExplainScore(t *TicTacToe, out io.Writer, b *ttt.Board) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "line\t%s\t%s\tscore\n", t.cfg.Computer, t.cfg.Human)
	for _, l := range t.lines {
		v := t.scoreLine(b, l)
		if v == 0 {
			continue
		}
		mine, theirs := t.lineCounts(b, l)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\n", formatLine(l), mine, theirs, v)
	}
	fmt.Fprintf(tw, "total\t\t\t%+d\n", t.Evaluate(b))
	tw.Flush()
}

func formatLine(l ttt.Line) string {
	labels := make([]string, len(l))
	for i, c := range l {
		labels[i] = notation.FormatMove(c)
	}
	return strings.Join(labels, "-")
}
