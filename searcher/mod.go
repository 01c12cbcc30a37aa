package searcher

import (
	"fmt"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"golang.org/x/exp/rand"
)

// Hyperparameters

const DefaultDepth = 3

const DefaultIterations = 2000

const DefaultExploration = 1.4 // UCB1 exploration constant c

const DefaultSeed = 1

// Searcher picks a move for the player to move in state. Implementations keep
// no state between calls.
type Searcher[S any, A comparable] interface {
	FindMove(g game.Game[S, A], state S) (A, metrics.SearchMetric, error)
}

// ChooseMove runs s and drops the search metrics.
func ChooseMove[S any, A comparable](s Searcher[S, A], g game.Game[S, A], state S) (A, error) {
	move, _, err := s.FindMove(g, state)
	return move, err
}

type Option func(o *options)

type options struct {
	depth       int
	iterations  int
	exploration float64
	goroutines  int
	seed        uint64
	rand        *rand.Rand
	metrics     bool
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		depth:       DefaultDepth,
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		goroutines:  1,
		seed:        DefaultSeed,
	}
	for _, option := range opts {
		option(&o)
	}
	return o
}

// WithDepth sets the cutoff depth of depth-limited search.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = depth
		}
	}
}

// WithIterations sets the number of MCTS iterations. Zero is allowed: the
// move is then picked from the pre-expanded root alone.
func WithIterations(iterations int) Option {
	return func(o *options) {
		if iterations >= 0 {
			o.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(o *options) {
		if c >= 0 {
			o.exploration = c
		}
	}
}

// WithGoroutines evaluates root actions (minimax family) or independent
// trees (MCTS) in parallel.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithSeed seeds a fresh rollout generator on every call, so repeated calls
// on the same input return the same move.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRand draws rollout randomness from r, which the caller owns. It takes
// precedence over WithSeed. r must not be shared with concurrent searches.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithMetrics collects detailed search counters.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

func (o options) collector() metrics.Collector {
	if o.metrics {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}

func (o options) random() *rand.Rand {
	if o.rand != nil {
		return o.rand
	}
	return rand.New(rand.NewSource(o.seed))
}

// rootActions validates that a move can be chosen from state.
func rootActions[S any, A comparable](g game.Game[S, A], state S) ([]A, error) {
	if g.TerminalTest(state) {
		return nil, fmt.Errorf("%w: cannot choose a move in a terminal state", game.ErrInvalidState)
	}
	actions := g.Actions(state)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: no legal actions", game.ErrInvalidState)
	}
	return actions, nil
}
