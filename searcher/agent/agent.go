package agent

import "gamesearch/experiments/metrics"

type Agent[S any, A comparable] interface {
	// Name identifies the agent in logs and records
	Name() string
	// FindMove returns the move to play in state and performance metrics (if collected) from the search
	FindMove(state S) (A, metrics.SearchMetric, error)
}
