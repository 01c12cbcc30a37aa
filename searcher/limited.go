package searcher

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

// DepthLimited is AlphaBeta that stops after a fixed number of plies and
// scores the frontier with the game's heuristic. Games without a heuristic
// score every frontier state as 0. Heuristic values are compared against
// utilities during pruning, so they should share the utility scale.
type DepthLimited[S any, A comparable] struct {
	opts options
}

var _ Searcher[int, int] = (*DepthLimited[int, int])(nil)

func NewDepthLimited[S any, A comparable](opts ...Option) *DepthLimited[S, A] {
	return &DepthLimited[S, A]{opts: newOptions(opts)}
}

func (m *DepthLimited[S, A]) Depth() int {
	return m.opts.depth
}

func (m *DepthLimited[S, A]) FindMove(g game.Game[S, A], state S) (A, metrics.SearchMetric, error) {
	return prune(g, state, m.opts, "limited", m.opts.depth)
}

// cutoff ends the recursion at terminal states, whatever the depth, and at the
// depth limit when there is one.
func (p *pruning[S, A]) cutoff(state S, depth int) (float64, bool) {
	if p.game.TerminalTest(state) {
		p.metrics.AddEvaluation()
		return p.game.Utility(state, p.player), true
	}
	if p.maxDepth > 0 && depth >= p.maxDepth {
		p.metrics.AddEvaluation()
		return game.Evaluate(p.game, state, p.player), true
	}
	return 0, false
}
