package game

import "errors"

var (
	// ErrInvalidState is returned when a move is requested on a terminal state or
	// on a state without legal actions.
	ErrInvalidState = errors.New("invalid state")
	// ErrIllegalMove is returned when an action outside Actions(state) is played.
	ErrIllegalMove = errors.New("illegal move")
)

// Game is the contract every searcher depends on. States are immutable values
// owned by the game: Result must return a new state and never modify its input.
type Game[S any, A comparable] interface {
	// ToMove returns the player whose turn it is.
	ToMove(state S) string
	// Actions returns the legal moves in a fixed order. It must be non-empty
	// unless the state is terminal.
	Actions(state S) []A
	Result(state S, action A) S
	TerminalTest(state S) bool
	// Utility is only defined on terminal states and must be zero-sum:
	// Utility(s, p) == -Utility(s, opponent of p).
	Utility(state S, player string) float64
}

// Heuristic is an optional capability used by depth-limited search to score
// non-terminal states. Values should be on the same scale as Utility.
type Heuristic[S any] interface {
	EvaluateHeuristic(state S) float64
}

// PerspectiveHeuristic is like Heuristic but scores the state for the given
// player. Searchers prefer it over Heuristic when a game offers both.
type PerspectiveHeuristic[S any] interface {
	EvaluateHeuristicFor(state S, player string) float64
}

// TwoPlayer is an optional capability naming the other side of a player.
type TwoPlayer interface {
	Opponent(player string) string
}

// Opponent returns the other side of player, or false when the game does not
// name it.
func Opponent[S any, A comparable](g Game[S, A], player string) (string, bool) {
	if t, ok := g.(TwoPlayer); ok {
		return t.Opponent(player), true
	}
	return "", false
}

// Evaluate returns the static evaluation of state for player, or 0 when the
// game has no heuristic capability.
func Evaluate[S any, A comparable](g Game[S, A], state S, player string) float64 {
	switch h := g.(type) {
	case PerspectiveHeuristic[S]:
		return h.EvaluateHeuristicFor(state, player)
	case Heuristic[S]:
		return h.EvaluateHeuristic(state)
	default:
		return 0
	}
}

// IsZeroSum reports whether the terminal state's utilities for p and q cancel out.
func IsZeroSum[S any, A comparable](g Game[S, A], state S, p, q string) bool {
	return g.Utility(state, p) == -g.Utility(state, q)
}

// IsLegal reports whether action is among the legal actions of state.
func IsLegal[S any, A comparable](g Game[S, A], state S, action A) bool {
	for _, a := range g.Actions(state) {
		if a == action {
			return true
		}
	}
	return false
}
