package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamesearch/engine"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const Confidence = 95 // percent, for the score interval

var ErrNoGames = errors.New("match-up needs at least one game")

// Matchup describes a series of games between the same two agents.
type Matchup[S any, A comparable] struct {
	Name    string
	Game    game.Game[S, A]
	Initial S
	// NewAgents returns the agents for game i. Agents are never shared
	// between games, so stateful agents may run in parallel games.
	NewAgents func(i int) [2]agent.Agent[S, A]
	Games     int
	Parallel  int // games played at once
	MaxTurns  int // 0 uses engine.MaxTurns
}

// Results counts outcomes from player 1's side: the agent moving first.
type Results struct {
	Player1            string
	Player2            string
	Player1Wins        int
	Player2Wins        int
	Draws              int
	AvgPlayer1MoveTime time.Duration // mean over games of the per-game average
	AvgPlayer2MoveTime time.Duration
	Player1MoveTime    Summary // over all of player 1's moves
	Player2MoveTime    Summary
	Player1Score       Interval // wins count 1, draws 0.5
	GameRecords        []metrics.GameRecord
	MoveRecords        []metrics.MoveRecord
}

type playedGame struct {
	utility float64
	metric  metrics.GameMetric
	moves   []metrics.MoveMetric
	names   [2]string
}

// RunMatchup plays m.Games games and aggregates them in game order, whatever
// order they finish in.
func RunMatchup[S any, A comparable](ctx context.Context, m Matchup[S, A]) (Results, error) {
	if m.Games <= 0 {
		return Results{}, ErrNoGames
	}
	log.Info().Msgf("starting %s match-up of %d games...", m.Name, m.Games)

	played := make([]playedGame, m.Games)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, m.Parallel))
	for i := 0; i < m.Games; i++ {
		eg.Go(func() error {
			agents := m.NewAgents(i)
			var opts []engine.Option
			if m.MaxTurns > 0 {
				opts = append(opts, engine.WithMaxTurns(m.MaxTurns))
			}
			e := engine.New(m.Game, m.Initial, agents, opts...)

			utility, gameMetric, moveMetrics, err := e.Run(ctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			played[i] = playedGame{
				utility: utility,
				metric:  gameMetric,
				moves:   moveMetrics,
				names:   [2]string{agents[0].Name(), agents[1].Name()},
			}
			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, m.Games, winnerOf(gameMetric))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Results{}, err
	}

	results := aggregate(played)
	log.Info().Msgf("completed %s match-up: %d-%d with %d draws", m.Name, results.Player1Wins, results.Player2Wins, results.Draws)
	return results, nil
}

func winnerOf(gm metrics.GameMetric) string {
	if gm.Winner == "" {
		return "draw"
	}
	return gm.Winner
}

func aggregate(played []playedGame) Results {
	r := Results{Player1: played[0].names[0], Player2: played[0].names[1]}

	var totalPlayer1, totalPlayer2 time.Duration
	var player1Times, player2Times []float64
	scores := make([]float64, 0, len(played))
	for i, p := range played {
		id := i + 1
		switch {
		case p.utility > 0:
			r.Player1Wins++
			scores = append(scores, 1)
		case p.utility < 0:
			r.Player2Wins++
			scores = append(scores, 0)
		default:
			r.Draws++
			scores = append(scores, 0.5)
		}

		first, second := lo.FilterReject(p.moves, func(mm metrics.MoveMetric, _ int) bool {
			return mm.Player == p.metric.StartingPlayer
		})
		totalPlayer1 += averageDuration(first)
		totalPlayer2 += averageDuration(second)
		player1Times = append(player1Times, seconds(first)...)
		player2Times = append(player2Times, seconds(second)...)

		r.GameRecords = append(r.GameRecords, metrics.GameRecord{
			ID:         id,
			Player1:    p.names[0],
			Player2:    p.names[1],
			GameMetric: p.metric,
		})
		for _, mm := range p.moves {
			r.MoveRecords = append(r.MoveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}
	}

	n := time.Duration(len(played))
	r.AvgPlayer1MoveTime = totalPlayer1 / n
	r.AvgPlayer2MoveTime = totalPlayer2 / n
	r.Player1MoveTime = summarize(player1Times)
	r.Player2MoveTime = summarize(player2Times)
	r.Player1Score = meanInterval(scores, Confidence)
	return r
}

// averageDuration is 0 for a player who never moved.
func averageDuration(moves []metrics.MoveMetric) time.Duration {
	if len(moves) == 0 {
		return 0
	}
	total := lo.SumBy(moves, func(mm metrics.MoveMetric) time.Duration { return mm.Duration })
	return total / time.Duration(len(moves))
}

func seconds(moves []metrics.MoveMetric) []float64 {
	return lo.Map(moves, func(mm metrics.MoveMetric, _ int) float64 { return mm.Duration.Seconds() })
}

// Outcomes returns both agents' lines for the results chart.
func (r Results) Outcomes() []metrics.Outcome {
	return []metrics.Outcome{
		{Agent: r.Player1, Wins: r.Player1Wins, Losses: r.Player2Wins, Draws: r.Draws, AvgMoveTime: r.AvgPlayer1MoveTime},
		{Agent: r.Player2, Wins: r.Player2Wins, Losses: r.Player1Wins, Draws: r.Draws, AvgMoveTime: r.AvgPlayer2MoveTime},
	}
}

// Store writes the setup, all records and the results chart.
func Store(w *metrics.Writer, title string, setup any, r Results) error {
	err := w.WriteSetup(setup)
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = w.WriteGameRecords(r.GameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = w.WriteMoveRecords(r.MoveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = w.WriteChart(title, r.Outcomes())
	if err != nil {
		return fmt.Errorf("failed to write results chart: %w", err)
	}
	log.Info().Msgf("stored results in %s", w.Dir())
	return nil
}
