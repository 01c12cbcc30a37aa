package main

import (
	"fmt"
	"io"

	"gamesearch/config"
	"gamesearch/experiments"

	"github.com/muesli/termenv"
)

// printSummary prints the match-up results, coloured when w is a terminal.
func printSummary(w io.Writer, cfg *config.Config, r experiments.Results) {
	out := termenv.NewOutput(w)
	bold := func(s string) termenv.Style { return out.String(s).Bold() }
	green := func(s string) termenv.Style { return out.String(s).Foreground(out.Color("2")) }
	red := func(s string) termenv.Style { return out.String(s).Foreground(out.Color("1")) }

	fmt.Fprintf(w, "%s %s vs %s, %d games\n", bold(cfg.Game), r.Player1, r.Player2, cfg.Games)
	fmt.Fprintf(w, "Player 1 Wins: %s\n", green(fmt.Sprint(r.Player1Wins)))
	fmt.Fprintf(w, "Player 2 Wins: %s\n", red(fmt.Sprint(r.Player2Wins)))
	fmt.Fprintf(w, "Draws: %d\n", r.Draws)
	fmt.Fprintf(w, "Average Player 1 Move Time: %.4f seconds\n", r.AvgPlayer1MoveTime.Seconds())
	fmt.Fprintf(w, "Average Player 2 Move Time: %.4f seconds\n", r.AvgPlayer2MoveTime.Seconds())
	fmt.Fprintf(w, "Player 1 Score: %.3f (%d%% interval %.3f to %.3f)\n",
		r.Player1Score.Mean, experiments.Confidence, r.Player1Score.Low(), r.Player1Score.High())
}
