package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB1(t *testing.T) {
	t.Run("unvisited parent has no exploration term", func(t *testing.T) {
		policy := newUCB1(1.4, 0)
		require.Equal(t, 0.5, policy.evaluate(2.0, 4), "Should reduce to the win rate")
	})

	t.Run("zero exploration constant", func(t *testing.T) {
		policy := newUCB1(0, 100)
		require.Equal(t, 0.25, policy.evaluate(1.0, 4))
	})
}

func TestUCB1Evaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB1(1.4, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + 1.4*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + c*sqrt(ln(N)/n)")
	})

	t.Run("unvisited child is explored first", func(t *testing.T) {
		policy := newUCB1(1.4, 100)
		require.True(t, math.IsInf(policy.evaluate(0, 0), 1))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCB1(1.4, 100).evaluate(5.0, 10)
		score2 := newUCB1(1.4, 1000).evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCB1(1.4, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(10.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("negative rewards", func(t *testing.T) {
		policy := newUCB1(0, 10)
		require.Equal(t, -1.0, policy.evaluate(-3.0, 3))
	})
}

func TestWinRate(t *testing.T) {
	require.Equal(t, 0.75, winRate(3.0, 4))
	require.Equal(t, -0.5, winRate(-1.0, 2))
	require.True(t, math.IsInf(winRate(0, 0), -1), "Unvisited children should rank last")
}

func TestReward(t *testing.T) {
	require.Equal(t, DRAW, reward(0))
	require.Equal(t, 1.0, reward(1))
	require.Equal(t, -1.0, reward(-1))
	require.Equal(t, 0.3, reward(0.3))
}
