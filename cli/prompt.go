package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
)

const CenterWidth = 60

var Divider = strings.Repeat("=", CenterWidth)

type Mode int

const (
	SinglePlayer Mode = 1
	TwoPlayer    Mode = 2
)

// Prompter asks the menu questions that set up a game. Every question
// repeats until it gets a valid answer or the input ends.
type Prompter struct {
	Out io.Writer
	In  *bufio.Reader
}

func Center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func (p *Prompter) Introduction(toWin int) {
	fmt.Fprintf(p.Out, "%s\n\n%s\n\n%s\n\n", Divider, Center("TIC-TAC-TOE", CenterWidth), Divider)
	fmt.Fprintf(p.Out, "%s\n\n", Center(fmt.Sprintf("You win by lining up %d of your marks.", toWin), CenterWidth))
	fmt.Fprintf(p.Out, "%s\n1. Play against computer\n2. Two players\n", Center("Select mode:", CenterWidth))
}

func (p *Prompter) ask(prompt, retry string, valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(p.Out, prompt)
		line, err := p.In.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer != "" && valid(answer) {
			return answer, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.Out, retry)
	}
}

func (p *Prompter) Mode() (Mode, error) {
	a, err := p.ask("\nSelect 1 or 2: ", "Probably typo. Try again.", func(s string) bool {
		return s == "1" || s == "2"
	})
	if err != nil {
		return 0, err
	}
	if a == "1" {
		return SinglePlayer, nil
	}
	return TwoPlayer, nil
}

func (p *Prompter) Difficulty() (ai.Difficulty, error) {
	fmt.Fprintf(p.Out, "\n%s\n1. Easy\n2. Medium\n3. Hard\n4. Impossible\n", Center("Select difficulty:", CenterWidth))
	a, err := p.ask("\nSelect 1 - 4: ", "Probably typo. Try again.", func(s string) bool {
		_, err := ai.ParseDifficulty(s)
		return err == nil && len(s) == 1
	})
	if err != nil {
		return 0, err
	}
	return ai.ParseDifficulty(a)
}

func (p *Prompter) Size() (int, error) {
	prompt := fmt.Sprintf("\nSelect board size (min. %d, max. %d for %dx%d board): ",
		ttt.MinSize, ttt.MaxSize, ttt.MaxSize, ttt.MaxSize)
	retry := fmt.Sprintf("Size must be between %d and %d.", ttt.MinSize, ttt.MaxSize)
	a, err := p.ask(prompt, retry, func(s string) bool {
		n, err := strconv.Atoi(s)
		return err == nil && n >= ttt.MinSize && n <= ttt.MaxSize
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(a)
}

func (p *Prompter) Continue() (bool, error) {
	a, err := p.ask(fmt.Sprintf("\n%s\n%29s", Center("Play again? (y/n):", CenterWidth), ""),
		"\nPlease enter y or n: ",
		func(s string) bool {
			s = strings.ToLower(s)
			return s == "y" || s == "n"
		})
	if err != nil {
		return false, err
	}
	return strings.ToLower(a) == "y", nil
}
