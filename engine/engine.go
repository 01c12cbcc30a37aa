package engine

import (
	"context"

	"gamesearch/experiments/metrics"
)

const MaxTurns = 500

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached. The
	// utility is from the point of view of the player who moved first.
	Run(ctx context.Context) (utility float64, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

type Option func(o *options)

type options struct {
	maxTurns int
}

// WithMaxTurns stops unfinished games after n plies. The game then counts as
// a draw.
func WithMaxTurns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTurns = n
		}
	}
}
