package searcher

import "math"

// Rewards backed up through the tree. Non-draw utilities are used as-is.
const DRAW = 0.5

var infinity = math.Inf(1)

type ucb1 struct {
	numerator float64
}

// newUCB1 precomputes c^2*ln(N) for a parent visited N times. An unvisited
// parent contributes no exploration term.
func newUCB1(c float64, N int) ucb1 {
	if N <= 0 {
		return ucb1{}
	}
	return ucb1{numerator: c * c * math.Log(float64(N))}
}

// evaluate returns w/n + c*sqrt(ln(N)/n), or +Inf for an unvisited child.
func (u ucb1) evaluate(w float64, n int) float64 {
	if n == 0 {
		return infinity
	}
	return w/float64(n) + math.Sqrt(u.numerator/float64(n))
}

// winRate is the final move-selection value. Unvisited children rank last.
func winRate(w float64, n int) float64 {
	if n == 0 {
		return math.Inf(-1)
	}
	return w / float64(n)
}

// reward maps a rollout utility to the backed-up reward: draws count as half
// a win.
func reward(utility float64) float64 {
	if utility == 0 {
		return DRAW
	}
	return utility
}
