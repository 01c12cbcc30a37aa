package agent

import (
	"testing"

	"gamesearch/game"
	"gamesearch/game/tictactoe"
	"gamesearch/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearchAgent(t *testing.T) {
	g := tictactoe.New()
	state, err := tictactoe.Parse("X X _ / O O _ / X _ _", tictactoe.PlayerO)
	require.NoError(t, err)

	a := NewSearchAgent[tictactoe.Board, tictactoe.Move]("alphabeta", g, searcher.NewAlphaBeta[tictactoe.Board, tictactoe.Move]())
	move, m, err := a.FindMove(state)

	require.NoError(t, err)
	require.Equal(t, "alphabeta", a.Name())
	require.Equal(t, tictactoe.Move{Row: 1, Col: 2}, move)
	require.Equal(t, "alphabeta", m.Algorithm)
}

func TestRandomAgent(t *testing.T) {
	g := tictactoe.New()

	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent[tictactoe.Board, tictactoe.Move]("random", g, 3)
		state := tictactoe.NewBoard()
		for !g.TerminalTest(state) {
			move, m, err := a.FindMove(state)
			require.NoError(t, err)
			require.True(t, game.IsLegal[tictactoe.Board, tictactoe.Move](g, state, move), "move %v on %s", move, state)
			require.Equal(t, "random", m.Algorithm)
			state = g.Result(state, move)
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		a := NewRandomAgent[tictactoe.Board, tictactoe.Move]("a", g, 11)
		b := NewRandomAgent[tictactoe.Board, tictactoe.Move]("b", g, 11)
		for i := 0; i < 10; i++ {
			ma, _, err := a.FindMove(tictactoe.NewBoard())
			require.NoError(t, err)
			mb, _, err := b.FindMove(tictactoe.NewBoard())
			require.NoError(t, err)
			require.Equal(t, ma, mb)
		}
	})

	t.Run("terminal state", func(t *testing.T) {
		won, err := tictactoe.Parse("O O O / X X _ / X _ _", tictactoe.PlayerX)
		require.NoError(t, err)

		_, _, err = NewRandomAgent[tictactoe.Board, tictactoe.Move]("random", g, 1).FindMove(won)
		require.ErrorIs(t, err, game.ErrInvalidState)
	})
}
