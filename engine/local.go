package engine

import (
	"context"
	"fmt"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local runs both agents in this process. Agents[0] plays the side to move in
// the initial state.
type Local[S any, A comparable] struct {
	Game   game.Game[S, A]
	State  S
	Agents [2]agent.Agent[S, A]
	opts   options
}

var _ Engine = (*Local[int, int])(nil)

func New[S any, A comparable](g game.Game[S, A], initial S, agents [2]agent.Agent[S, A], opts ...Option) *Local[S, A] {
	o := options{maxTurns: MaxTurns}
	for _, option := range opts {
		option(&o)
	}
	return &Local[S, A]{
		Game:   g,
		State:  initial,
		Agents: agents,
		opts:   o,
	}
}

// Run executes the entire game loop. Searches are not interrupted: ctx is
// only checked between turns.
func (e *Local[S, A]) Run(ctx context.Context) (float64, metrics.GameMetric, []metrics.MoveMetric, error) {
	first := e.Game.ToMove(e.State)
	// Games that do not name the other side reveal it on its first move.
	second, _ := game.Opponent(e.Game, first)
	gameMetric := metrics.GameMetric{StartingPlayer: first, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s (%s) is starting", e.Agents[0].Name(), first)

	// Loop until the game is over
	turn := 1
	for !e.Game.TerminalTest(e.State) {
		if turn > e.opts.maxTurns {
			log.Warn().Msgf("stopped after %d turns without a result", e.opts.maxTurns)
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, gameMetric, moveMetrics, err
		}

		player := e.Game.ToMove(e.State)
		a := e.Agents[0]
		if player != first {
			a = e.Agents[1]
			second = player
		}

		move, searchMetric, err := a.FindMove(e.State)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("agent %s at turn %d: %w", a.Name(), turn, err)
		}
		if !game.IsLegal(e.Game, e.State, move) {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%w: agent %s played %v at turn %d", game.ErrIllegalMove, a.Name(), move, turn)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})

		e.State = e.Game.Result(e.State, move)
		turn++
	}

	var utility float64
	if e.Game.TerminalTest(e.State) {
		utility = e.Game.Utility(e.State, first)
	}
	switch {
	case utility > 0:
		gameMetric.Winner = first
	case utility < 0:
		gameMetric.Winner = second
	}

	gameMetric.Utility = utility
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Debug().Str("winner", gameMetric.Winner).Float64("utility", utility).Int("moves", gameMetric.TotalMoves).Msg("game over")
	return utility, gameMetric, moveMetrics, nil
}
