package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting from concurrent goroutines", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 4)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddEvaluation()
					c.AddNode()
				}
			}()
		}
		wg.Wait()
		c.AddEpisode()
		c.AddFullPlayout()

		got := c.Complete()
		require.Equal(t, "minimax", got.Algorithm)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 400, got.Evaluations, "Every evaluation should be counted")
		require.Equal(t, 400, got.Nodes, "Every node should be counted")
		require.Equal(t, 1, got.Episodes)
		require.Equal(t, 1, got.FullPlayouts)
		require.GreaterOrEqual(t, int64(got.Duration), int64(0))
	})

	t.Run("dummy collector ignores counters", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("mcts", 2)
		c.AddEvaluation()
		c.AddEpisode()

		got := c.Complete()
		require.Equal(t, "mcts", got.Algorithm, "Algorithm should still be reported")
		require.Zero(t, got.Evaluations)
		require.Zero(t, got.Episodes)
	})
}
