package reversi

import (
	"testing"

	"gamesearch/game"

	"github.com/stretchr/testify/require"
)

func TestOpening(t *testing.T) {
	g := New()
	b := NewBoard()

	require.Equal(t, PlayerBlack, g.ToMove(b))
	require.Equal(t, []Move{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, g.Actions(b),
		"Black should have the four standard opening moves in row-major order")
	require.False(t, g.TerminalTest(b))
}

func TestResult(t *testing.T) {
	g := New()

	t.Run("placing a disc flips the bracketed line", func(t *testing.T) {
		before := NewBoard()
		after := g.Result(before, Move{Row: 2, Col: 3})

		require.Equal(t, Black, after.At(2, 3))
		require.Equal(t, Black, after.At(3, 3), "Bracketed white disc should flip")
		require.Equal(t, PlayerWhite, g.ToMove(after))
		black, white := after.Count()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
		require.Equal(t, NewBoard(), before, "Input board should not change")
	})

	t.Run("illegal placements panic", func(t *testing.T) {
		require.Panics(t, func() { g.Result(NewBoard(), Move{Row: 0, Col: 0}) })
	})

	t.Run("played square is never offered again", func(t *testing.T) {
		state := NewBoard()
		for i := 0; i < 20 && !g.TerminalTest(state); i++ {
			move := g.Actions(state)[0]
			state = g.Result(state, move)
			if move != Pass {
				require.False(t, game.IsLegal(g, state, move), "Move %v should not be legal after it was played", move)
			}
		}
	})
}

func TestPass(t *testing.T) {
	g := New()
	// White cannot move, black can capture along the top row.
	var b Board
	b.set(0, 0, Black)
	b.set(0, 1, White)
	b.Turn = White

	require.Equal(t, []Move{Pass}, g.Actions(b), "White should be forced to pass")
	require.False(t, g.TerminalTest(b))

	next := g.Result(b, Pass)
	require.Equal(t, PlayerBlack, g.ToMove(next))
	require.Equal(t, []Move{{Row: 0, Col: 2}}, g.Actions(next))
}

func TestUtility(t *testing.T) {
	g := New()
	var b Board
	b.set(0, 0, Black)
	b.set(0, 1, Black)
	b.set(7, 7, White)
	b.Turn = White

	require.True(t, g.TerminalTest(b), "Neither side can capture")
	require.Equal(t, 1.0, g.Utility(b, PlayerBlack))
	require.Equal(t, -1.0, g.Utility(b, PlayerWhite))
	require.True(t, game.IsZeroSum(g, b, PlayerBlack, g.Opponent(PlayerBlack)))
	require.Equal(t, PlayerBlack, g.Opponent(PlayerWhite))
}

func TestHeuristic(t *testing.T) {
	g := New()

	t.Run("symmetric opening scores zero", func(t *testing.T) {
		require.InDelta(t, 0.0, g.EvaluateHeuristicFor(NewBoard(), PlayerBlack), 1e-9)
	})

	t.Run("scores are opposite for the two players", func(t *testing.T) {
		b := g.Result(NewBoard(), Move{Row: 2, Col: 3})
		forBlack := g.EvaluateHeuristicFor(b, PlayerBlack)
		forWhite := g.EvaluateHeuristicFor(b, PlayerWhite)

		require.InDelta(t, -forBlack, forWhite, 1e-9)
		require.Less(t, forBlack, 1.0)
		require.Greater(t, forBlack, -1.0)
	})

	t.Run("corner ownership is rewarded", func(t *testing.T) {
		var b Board
		b.set(0, 0, Black)
		b.set(3, 3, White)
		b.set(3, 4, Black)
		b.Turn = White

		require.Greater(t, game.Evaluate[Board, Move](g, b, PlayerBlack), 0.0)
	})
}
