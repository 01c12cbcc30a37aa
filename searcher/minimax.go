package searcher

import (
	"math"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches every line to a terminal state without pruning. It is the
// reference the pruning searchers must agree with.
type Minimax[S any, A comparable] struct {
	opts options
}

var _ Searcher[int, int] = (*Minimax[int, int])(nil)

func NewMinimax[S any, A comparable](opts ...Option) *Minimax[S, A] {
	return &Minimax[S, A]{opts: newOptions(opts)}
}

func (m *Minimax[S, A]) FindMove(g game.Game[S, A], state S) (A, metrics.SearchMetric, error) {
	var none A
	actions, err := rootActions(g, state)
	if err != nil {
		return none, metrics.SearchMetric{}, err
	}

	c := m.opts.collector()
	c.Start("minimax", m.opts.goroutines)
	s := &minimax[S, A]{game: g, player: g.ToMove(state), metrics: c}

	move, value := searchRoot(actions, m.opts.goroutines, func(action A, _ float64) float64 {
		return s.minValue(g.Result(state, action))
	})
	log.Debug().Str("player", s.player).Interface("move", move).Float64("value", value).Msg("minimax search complete")
	return move, c.Complete(), nil
}

// minimax scores states for a fixed player: the player to move at the root.
type minimax[S any, A comparable] struct {
	game    game.Game[S, A]
	player  string
	metrics metrics.Collector
}

func (s *minimax[S, A]) maxValue(state S) float64 {
	s.metrics.AddNode()
	if s.game.TerminalTest(state) {
		s.metrics.AddEvaluation()
		return s.game.Utility(state, s.player)
	}
	v := math.Inf(-1)
	for _, action := range s.game.Actions(state) {
		v = max(v, s.minValue(s.game.Result(state, action)))
	}
	return v
}

func (s *minimax[S, A]) minValue(state S) float64 {
	s.metrics.AddNode()
	if s.game.TerminalTest(state) {
		s.metrics.AddEvaluation()
		return s.game.Utility(state, s.player)
	}
	v := math.Inf(1)
	for _, action := range s.game.Actions(state) {
		v = min(v, s.maxValue(s.game.Result(state, action)))
	}
	return v
}
