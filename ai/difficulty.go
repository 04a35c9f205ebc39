package ai

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
	Impossible
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Impossible:
		return "impossible"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts the difficulty names or their menu numbers
// 1 through 4.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return Easy, nil
	case "2", "medium":
		return Medium, nil
	case "3", "hard":
		return Hard, nil
	case "4", "impossible":
		return Impossible, nil
	}
	return 0, fmt.Errorf("unknown difficulty: %q", s)
}

// Depth is the search depth used at difficulty d on a size x size
// board. Easy plays randomly; everything else is capped by DepthCap.
func (d Difficulty) Depth(size int) int {
	cells := size * size
	var depth int
	switch d {
	case Easy:
		return 0
	case Medium:
		depth = cells * 4 / 10
	case Hard:
		depth = cells * 8 / 10
	default:
		depth = cells
	}
	if c := DepthCap(size); depth > c {
		depth = c
	}
	return depth
}

// DepthCap is the deepest search that still answers promptly on a
// size x size board.
func DepthCap(size int) int {
	switch {
	case size <= 3:
		return size * size
	case size <= 5:
		return 4
	case size <= 7:
		return 3
	}
	return 2
}
