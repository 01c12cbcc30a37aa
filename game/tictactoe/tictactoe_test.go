package tictactoe

import (
	"testing"

	"gamesearch/game"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("parsing a board with separators", func(t *testing.T) {
		b, err := Parse("X _ X / O O _ / _ _ _", PlayerO)

		require.NoError(t, err)
		require.Equal(t, [9]Cell{X, Empty, X, O, O, Empty, Empty, Empty, Empty}, b.Cells)
		require.Equal(t, PlayerO, New().ToMove(b), "Turn should follow the argument")
		require.Equal(t, "X _ X / O O _ / _ _ _", b.String(), "String should round trip")
	})

	t.Run("rejecting short boards", func(t *testing.T) {
		_, err := Parse("X _ X", PlayerX)
		require.Error(t, err)
	})

	t.Run("rejecting unknown players", func(t *testing.T) {
		_, err := Parse("_________", "Z")
		require.Error(t, err)
	})
}

func TestActions(t *testing.T) {
	g := New()

	t.Run("empty board offers every square in row-major order", func(t *testing.T) {
		moves := g.Actions(NewBoard())

		require.Len(t, moves, 9)
		require.Equal(t, Move{Row: 0, Col: 0}, moves[0])
		require.Equal(t, Move{Row: 2, Col: 2}, moves[8])
	})

	t.Run("won board offers no moves", func(t *testing.T) {
		b, err := Parse("XXX OO_ ___", PlayerO)
		require.NoError(t, err)

		require.Empty(t, g.Actions(b))
		require.True(t, g.TerminalTest(b))
	})

	t.Run("played square is never offered again", func(t *testing.T) {
		state := NewBoard()
		for !g.TerminalTest(state) {
			move := g.Actions(state)[0]
			state = g.Result(state, move)
			require.False(t, game.IsLegal(g, state, move), "Move %v should not be legal after it was played", move)
		}
	})
}

func TestResult(t *testing.T) {
	g := New()

	t.Run("does not modify the input board", func(t *testing.T) {
		before := NewBoard()
		after := g.Result(before, Move{Row: 1, Col: 1})

		require.Equal(t, NewBoard(), before, "Input board should not change")
		require.Equal(t, X, after.Cells[4])
		require.Equal(t, PlayerO, g.ToMove(after))
	})

	t.Run("panics on occupied squares", func(t *testing.T) {
		b := g.Result(NewBoard(), Move{Row: 0, Col: 0})
		require.Panics(t, func() { g.Result(b, Move{Row: 0, Col: 0}) })
	})
}

func TestUtility(t *testing.T) {
	g := New()

	t.Run("scores wins, losses and draws", func(t *testing.T) {
		won, _ := Parse("XXX OO_ ___", PlayerO)
		drawn, _ := Parse("XOX XOO OXX", PlayerO)

		require.Equal(t, 1.0, g.Utility(won, PlayerX))
		require.Equal(t, -1.0, g.Utility(won, PlayerO))
		require.Equal(t, 0.0, g.Utility(drawn, PlayerX))
		require.True(t, g.TerminalTest(drawn))
	})

	t.Run("every reachable terminal state is zero-sum", func(t *testing.T) {
		terminals := 0
		var walk func(b Board)
		walk = func(b Board) {
			if g.TerminalTest(b) {
				terminals++
				require.True(t, game.IsZeroSum(g, b, PlayerX, Opponent(PlayerX)), "Board %v should be zero-sum", b)
				require.True(t, game.IsZeroSum(g, b, PlayerO, Opponent(PlayerO)), "Board %v should be zero-sum", b)
				return
			}
			for _, m := range g.Actions(b) {
				walk(g.Result(b, m))
			}
		}
		walk(NewBoard())

		require.Equal(t, 255168, terminals, "Number of complete tic-tac-toe games")
	})
}
