package agent

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
)

type searchAgent[S any, A comparable] struct {
	name     string
	game     game.Game[S, A]
	searcher searcher.Searcher[S, A]
}

// NewSearchAgent returns an agent that plays whatever s chooses.
func NewSearchAgent[S any, A comparable](name string, g game.Game[S, A], s searcher.Searcher[S, A]) Agent[S, A] {
	return searchAgent[S, A]{name: name, game: g, searcher: s}
}

func (a searchAgent[S, A]) Name() string {
	return a.name
}

func (a searchAgent[S, A]) FindMove(state S) (A, metrics.SearchMetric, error) {
	return a.searcher.FindMove(a.game, state)
}
