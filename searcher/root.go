package searcher

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// rootValue scores one root action. alpha is the best value already
// guaranteed at the root; searches without pruning ignore it.
type rootValue[A comparable] func(action A, alpha float64) float64

// searchRoot returns the first action with the strictly greatest value. A
// single goroutine threads the running alpha through the siblings so later
// ones can be pruned. In parallel every action is searched with a full window
// and the values are compared in action order afterwards, which yields the
// same move.
func searchRoot[A comparable](actions []A, goroutines int, value rootValue[A]) (A, float64) {
	if goroutines <= 1 || len(actions) == 1 {
		best := actions[0]
		bestValue := math.Inf(-1)
		alpha := math.Inf(-1)
		for _, action := range actions {
			v := value(action, alpha)
			if v > bestValue {
				bestValue = v
				best = action
			}
			alpha = max(alpha, bestValue)
		}
		return best, bestValue
	}

	values := make([]float64, len(actions))
	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, action := range actions {
		g.Go(func() error {
			values[i] = value(action, math.Inf(-1))
			return nil
		})
	}
	_ = g.Wait() // value never fails

	best := actions[0]
	bestValue := math.Inf(-1)
	for i, v := range values {
		if v > bestValue {
			bestValue = v
			best = actions[i]
		}
	}
	return best, bestValue
}
