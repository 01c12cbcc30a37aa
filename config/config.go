package config

import (
	"errors"
	"fmt"
	"strings"

	"gamesearch/searcher"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"lukechampine.com/frand"
)

const EnvPrefix = "GAMESEARCH"

var (
	Games   = []string{"tictactoe", "reversi"}
	Players = []string{"random", "minimax", "alphabeta", "limited", "mcts"}
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one match-up run. Search parameters apply to
// both players.
type Config struct {
	Game        string  `mapstructure:"game" yaml:"game"`
	Player1     string  `mapstructure:"player1" yaml:"player1"`
	Player2     string  `mapstructure:"player2" yaml:"player2"`
	Games       int     `mapstructure:"games" yaml:"games"`
	Parallel    int     `mapstructure:"parallel" yaml:"parallel"`
	MaxTurns    int     `mapstructure:"max-turns" yaml:"max_turns"`
	Depth       int     `mapstructure:"depth" yaml:"depth"`
	Iterations  int     `mapstructure:"iterations" yaml:"iterations"`
	Exploration float64 `mapstructure:"exploration" yaml:"exploration"`
	Goroutines  int     `mapstructure:"goroutines" yaml:"goroutines"`
	Seed        uint64  `mapstructure:"seed" yaml:"seed"`
	Out         string  `mapstructure:"out" yaml:"-"`
	LogLevel    string  `mapstructure:"log-level" yaml:"-"`
}

// Load parses args. Flags set explicitly win over GAMESEARCH_* environment
// variables, which win over the optional --config YAML file; anything unset
// keeps its flag default. A zero seed is replaced by a random one.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("gamesearch", pflag.ContinueOnError)
	fs.String("config", "", "YAML file with any of the settings below")
	fs.String("game", "tictactoe", "game to play: "+strings.Join(Games, ", "))
	fs.String("player1", "alphabeta", "agent moving first: "+strings.Join(Players, ", "))
	fs.String("player2", "mcts", "agent moving second: "+strings.Join(Players, ", "))
	fs.Int("games", 10, "number of games to play")
	fs.Int("parallel", 1, "number of games played at once")
	fs.Int("max-turns", 0, "stop unfinished games after this many plies (0 for the engine default)")
	fs.Int("depth", searcher.DefaultDepth, "cutoff depth of the depth-limited searcher")
	fs.Int("iterations", searcher.DefaultIterations, "MCTS iterations per move")
	fs.Float64("exploration", searcher.DefaultExploration, "MCTS exploration constant")
	fs.Int("goroutines", 1, "goroutines per search")
	fs.Uint64("seed", searcher.DefaultSeed, "random seed (0 for a random one)")
	fs.String("out", "experiments", "directory for experiment records (empty to skip)")
	fs.String("log-level", "info", "zerolog level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if c.Seed == 0 {
		c.Seed = frand.Uint64n(1<<63) + 1
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if !lo.Contains(Games, c.Game) {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, c.Game)
	}
	for _, p := range []string{c.Player1, c.Player2} {
		if !lo.Contains(Players, p) {
			return fmt.Errorf("%w: unknown player %q", ErrInvalidConfig, p)
		}
	}
	switch {
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	case c.Parallel <= 0:
		return fmt.Errorf("%w: parallel must be positive", ErrInvalidConfig)
	case c.Depth <= 0:
		return fmt.Errorf("%w: depth must be positive", ErrInvalidConfig)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative", ErrInvalidConfig)
	case c.Exploration < 0:
		return fmt.Errorf("%w: exploration must not be negative", ErrInvalidConfig)
	case c.Goroutines <= 0:
		return fmt.Errorf("%w: goroutines must be positive", ErrInvalidConfig)
	case c.MaxTurns < 0:
		return fmt.Errorf("%w: max-turns must not be negative", ErrInvalidConfig)
	}
	return nil
}
