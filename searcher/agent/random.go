package agent

import (
	"fmt"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"golang.org/x/exp/rand"
)

// randomAgent plays a uniformly random legal move. It is the weakest baseline
// in match-ups and is not safe for concurrent use.
type randomAgent[S any, A comparable] struct {
	name string
	game game.Game[S, A]
	rand *rand.Rand
}

func NewRandomAgent[S any, A comparable](name string, g game.Game[S, A], seed uint64) Agent[S, A] {
	return &randomAgent[S, A]{name: name, game: g, rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, A]) Name() string {
	return a.name
}

func (a *randomAgent[S, A]) FindMove(state S) (A, metrics.SearchMetric, error) {
	var none A
	start := time.Now()
	if a.game.TerminalTest(state) {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: cannot choose a move in a terminal state", game.ErrInvalidState)
	}
	actions := a.game.Actions(state)
	if len(actions) == 0 {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: no legal actions", game.ErrInvalidState)
	}
	move := actions[a.rand.Intn(len(actions))]
	return move, metrics.SearchMetric{Algorithm: "random", Goroutines: 1, Duration: time.Since(start)}, nil
}
