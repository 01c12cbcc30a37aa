package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gamesearch/config"
	"gamesearch/experiments"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/game/reversi"
	"gamesearch/game/tictactoe"
	"gamesearch/searcher"
	"gamesearch/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Game {
	case "reversi":
		err = run(ctx, cfg, reversi.New(), reversi.NewBoard())
	default:
		err = run(ctx, cfg, tictactoe.New(), tictactoe.NewBoard())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("match-up failed")
	}
}

// run plays the configured match-up, prints the summary and stores the records.
func run[S any, A comparable](ctx context.Context, cfg *config.Config, g game.Game[S, A], initial S) error {
	name := fmt.Sprintf("%s_%s_vs_%s", cfg.Game, cfg.Player1, cfg.Player2)
	log.Info().Uint64("seed", cfg.Seed).Msgf("running %s...", name)

	results, err := experiments.RunMatchup(ctx, experiments.Matchup[S, A]{
		Name:    name,
		Game:    g,
		Initial: initial,
		NewAgents: func(i int) [2]agent.Agent[S, A] {
			// Every agent of every game gets its own seed
			seed := cfg.Seed + 2*uint64(i)
			return [2]agent.Agent[S, A]{
				createAgent(cfg, g, cfg.Player1, seed),
				createAgent(cfg, g, cfg.Player2, seed+1),
			}
		},
		Games:    cfg.Games,
		Parallel: cfg.Parallel,
		MaxTurns: cfg.MaxTurns,
	})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, cfg, results)

	if cfg.Out == "" {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.Out, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	return experiments.Store(writer, name, cfg, results)
}

func createAgent[S any, A comparable](cfg *config.Config, g game.Game[S, A], player string, seed uint64) agent.Agent[S, A] {
	options := []searcher.Option{
		searcher.WithDepth(cfg.Depth),
		searcher.WithIterations(cfg.Iterations),
		searcher.WithExploration(cfg.Exploration),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}

	switch player {
	case "minimax":
		return agent.NewSearchAgent[S, A](player, g, searcher.NewMinimax[S, A](options...))
	case "alphabeta":
		return agent.NewSearchAgent[S, A](player, g, searcher.NewAlphaBeta[S, A](options...))
	case "limited":
		return agent.NewSearchAgent[S, A](player, g, searcher.NewDepthLimited[S, A](options...))
	case "mcts":
		return agent.NewSearchAgent[S, A](player, g, searcher.NewMCTS[S, A](options...))
	default:
		return agent.NewRandomAgent(player, g, seed)
	}
}
