package searcher

import (
	"math"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is Minimax with alpha-beta pruning. It chooses the same move as
// Minimax for every input while visiting at most as many states.
type AlphaBeta[S any, A comparable] struct {
	opts options
}

var _ Searcher[int, int] = (*AlphaBeta[int, int])(nil)

func NewAlphaBeta[S any, A comparable](opts ...Option) *AlphaBeta[S, A] {
	return &AlphaBeta[S, A]{opts: newOptions(opts)}
}

func (m *AlphaBeta[S, A]) FindMove(g game.Game[S, A], state S) (A, metrics.SearchMetric, error) {
	return prune(g, state, m.opts, "alphabeta", 0)
}

// prune runs alpha-beta from state. maxDepth 0 searches to terminal states.
func prune[S any, A comparable](g game.Game[S, A], state S, o options, algorithm string, maxDepth int) (A, metrics.SearchMetric, error) {
	var none A
	actions, err := rootActions(g, state)
	if err != nil {
		return none, metrics.SearchMetric{}, err
	}

	c := o.collector()
	c.Start(algorithm, o.goroutines)
	p := &pruning[S, A]{game: g, player: g.ToMove(state), maxDepth: maxDepth, metrics: c}

	move, value := searchRoot(actions, o.goroutines, func(action A, alpha float64) float64 {
		return p.minValue(g.Result(state, action), alpha, math.Inf(1), 1)
	})
	log.Debug().Str("algorithm", algorithm).Str("player", p.player).Interface("move", move).Float64("value", value).Msg("search complete")
	return move, c.Complete(), nil
}

// pruning holds what stays fixed during one search. The window (alpha, beta)
// and the depth are passed by value so no call sees another's bounds.
type pruning[S any, A comparable] struct {
	game     game.Game[S, A]
	player   string
	maxDepth int
	metrics  metrics.Collector
}

func (p *pruning[S, A]) maxValue(state S, alpha, beta float64, depth int) float64 {
	p.metrics.AddNode()
	if v, ok := p.cutoff(state, depth); ok {
		return v
	}
	v := math.Inf(-1)
	for _, action := range p.game.Actions(state) {
		v = max(v, p.minValue(p.game.Result(state, action), alpha, beta, depth+1))
		if v >= beta {
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (p *pruning[S, A]) minValue(state S, alpha, beta float64, depth int) float64 {
	p.metrics.AddNode()
	if v, ok := p.cutoff(state, depth); ok {
		return v
	}
	v := math.Inf(1)
	for _, action := range p.game.Actions(state) {
		v = min(v, p.maxValue(p.game.Result(state, action), alpha, beta, depth+1))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}
