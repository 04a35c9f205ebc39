package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/ttttest"
)

func TestDifficultyDepth(t *testing.T) {
	cases := []struct {
		d     Difficulty
		size  int
		depth int
	}{
		{Easy, 3, 0},
		{Medium, 3, 3},
		{Hard, 3, 7},
		{Impossible, 3, 9},
		{Easy, 5, 0},
		{Medium, 4, 4},
		{Impossible, 5, 4},
		{Medium, 6, 3},
		{Hard, 7, 3},
		{Hard, 8, 2},
		{Impossible, 9, 2},
	}
	for _, tc := range cases {
		if got := tc.d.Depth(tc.size); got != tc.depth {
			t.Errorf("%s.Depth(%d)=%d want %d", tc.d, tc.size, got, tc.depth)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"1": Easy, "easy": Easy, " Medium ": Medium, "3": Hard, "impossible": Impossible,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDifficulty("5")
	assert.Error(t, err)
}

func TestRandomPlaysLegalMoves(t *testing.T) {
	r := NewRandom(1)
	b := ttttest.Board("xo./.x./o..")
	for i := 0; i < 50; i++ {
		m, err := r.GetMove(context.Background(), b, ttt.O)
		require.NoError(t, err)
		assert.True(t, b.IsEmpty(m))
	}
	_, err := r.GetMove(context.Background(), ttttest.Board("xox/xoo/oxx"), ttt.X)
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestMinimaxPlaysEitherMark(t *testing.T) {
	p := NewMinimax(MinimaxConfig{Size: 3, ToWin: 3, Depth: 2})
	ctx := context.Background()

	m, err := p.GetMove(ctx, ttttest.Board("xx./oo./..."), ttt.X)
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	m, err = p.GetMove(ctx, ttttest.Board("xx./oo./x.."), ttt.O)
	require.NoError(t, err)
	assert.Equal(t, 5, m)
}

func TestMinimaxDepthZeroFallsBack(t *testing.T) {
	p := NewMinimax(MinimaxConfig{Size: 3, Depth: 0, Seed: 3})
	b := ttttest.Board("x.o/.x./o.x")
	m, err := p.GetMove(context.Background(), b, ttt.O)
	require.NoError(t, err)
	assert.True(t, b.IsEmpty(m))
}
