package searcher

import (
	"fmt"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MCTS is Monte Carlo Tree Search with UCB1 selection and uniformly random
// rollouts. Every legal root move is expanded before the first iteration and
// the move with the best win rate (not the most visits) is returned.
//
// Rewards are taken from the root player's point of view at every depth:
// utility for wins and losses, DRAW for drawn rollouts.
type MCTS[S any, A comparable] struct {
	opts options
}

var _ Searcher[int, int] = (*MCTS[int, int])(nil)

func NewMCTS[S any, A comparable](opts ...Option) *MCTS[S, A] {
	return &MCTS[S, A]{opts: newOptions(opts)}
}

func (m *MCTS[S, A]) Iterations() int {
	return m.opts.iterations
}

func (m *MCTS[S, A]) FindMove(g game.Game[S, A], state S) (A, metrics.SearchMetric, error) {
	var none A
	if _, err := rootActions(g, state); err != nil {
		return none, metrics.SearchMetric{}, err
	}

	workers := max(1, min(m.opts.goroutines, m.opts.iterations))
	c := m.opts.collector()
	c.Start("mcts", workers)
	player := g.ToMove(state)
	r := m.opts.random()

	var stats []rootStat[A]
	if workers == 1 {
		stats = m.runTree(g, state, player, m.opts.iterations, r, c)
	} else {
		stats = m.runTrees(g, state, player, workers, r, c)
	}

	best := bestChild(stats)
	log.Debug().
		Str("player", player).
		Interface("move", best.move).
		Int("visits", best.visits).
		Float64("winRate", winRate(best.wins, best.visits)).
		Msg("mcts search complete")
	return best.move, c.Complete(), nil
}

// runTrees builds one independent tree per worker, each with its own
// generator seeded from r, and sums their root statistics.
func (m *MCTS[S, A]) runTrees(g game.Game[S, A], state S, player string, workers int, r *rand.Rand, c metrics.Collector) []rootStat[A] {
	seeds := make([]uint64, workers)
	for i := range seeds {
		seeds[i] = r.Uint64()
	}
	results := make([][]rootStat[A], workers)

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		iterations := m.opts.iterations / workers
		if i < m.opts.iterations%workers {
			iterations++
		}
		eg.Go(func() error {
			results[i] = m.runTree(g, state, player, iterations, rand.New(rand.NewSource(seeds[i])), c)
			return nil
		})
	}
	_ = eg.Wait() // search never fails

	merged := results[0]
	for _, result := range results[1:] {
		for j := range merged {
			merged[j].visits += result[j].visits
			merged[j].wins += result[j].wins
		}
	}
	return merged
}

func (m *MCTS[S, A]) runTree(g game.Game[S, A], state S, player string, iterations int, r *rand.Rand, c metrics.Collector) []rootStat[A] {
	s := &search[S, A]{
		tree:        newTree(g, state),
		player:      player,
		exploration: m.opts.exploration,
		rand:        r,
		metrics:     c,
	}
	c.AddNode()
	s.added(s.tree.expand(0))

	for i := 0; i < iterations; i++ {
		s.iterate()
		c.AddEpisode()
	}
	return s.rootStats()
}

type rootStat[A comparable] struct {
	move   A
	visits int
	wins   float64
}

// bestChild returns the first child with the greatest win rate.
func bestChild[A comparable](stats []rootStat[A]) rootStat[A] {
	best := stats[0]
	bestRate := winRate(best.wins, best.visits)
	for _, s := range stats[1:] {
		if rate := winRate(s.wins, s.visits); rate > bestRate {
			best, bestRate = s, rate
		}
	}
	return best
}

type search[S any, A comparable] struct {
	tree        *tree[S, A]
	player      string // root player, rewards are always from this side
	exploration float64
	rand        *rand.Rand
	metrics     metrics.Collector
}

// iterate runs one selection, expansion, rollout and backpropagation cycle.
func (s *search[S, A]) iterate() {
	t := s.tree

	// Selection
	current := 0
	for len(t.nodes[current].children) > 0 {
		current = t.selectChild(current, s.exploration)
	}

	// Expansion and rollout
	var value float64
	if t.nodes[current].terminal {
		s.metrics.AddEvaluation()
		value = t.game.Utility(t.nodes[current].state, s.player)
	} else {
		// A leaf is only expanded once it has been evaluated itself.
		if t.nodes[current].visits > 0 && s.added(t.expand(current)) > 0 {
			current = t.nodes[current].children[0]
		}
		value = s.rollout(t.nodes[current].state)
	}

	// Backpropagation
	t.backpropagate(current, value)
}

// rollout plays uniformly random moves until the game ends.
func (s *search[S, A]) rollout(state S) float64 {
	g := s.tree.game
	for !g.TerminalTest(state) {
		actions := g.Actions(state)
		if len(actions) == 0 {
			panic(fmt.Sprintf("%v: non-terminal state without actions during rollout", game.ErrInvalidState))
		}
		state = g.Result(state, actions[s.rand.Intn(len(actions))])
	}
	s.metrics.AddEvaluation()
	s.metrics.AddFullPlayout()
	return reward(g.Utility(state, s.player))
}

func (s *search[S, A]) added(n int) int {
	for i := 0; i < n; i++ {
		s.metrics.AddNode()
	}
	return n
}

func (s *search[S, A]) rootStats() []rootStat[A] {
	root := s.tree.nodes[0]
	stats := make([]rootStat[A], len(root.children))
	for i, child := range root.children {
		n := s.tree.nodes[child]
		stats[i] = rootStat[A]{move: n.move, visits: n.visits, wins: n.wins}
	}
	return stats
}
