package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
)

// Globals are the flags shared by every command. Pointer flags override the
// configuration file only when given.
type Globals struct {
	Config  string `short:"c" type:"path" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" help:"HCL configuration file, ignored when missing"`
	Debug   bool   `env:"BLACKJACK_DEBUG" help:"Enable debug logging"`
	LogFile string `type:"path" env:"BLACKJACK_LOG_FILE" help:"Write logs to this file instead of stderr"`
	NoColor bool   `env:"NO_COLOR" help:"Disable coloured output"`

	Decks       *int     `env:"BLACKJACK_DECKS" help:"Number of 52-card decks in the shoe"`
	Seed        *int64   `env:"BLACKJACK_SEED" help:"Deterministic RNG seed (optional)"`
	Surrender   string   `env:"BLACKJACK_SURRENDER" help:"When surrender is offered: first or any"`
	TrainRounds *int     `env:"BLACKJACK_TRAIN_ROUNDS" help:"Training rounds for learning agents before play"`
	Alpha       *float64 `help:"Q-learning rate"`
	Epsilon     *float64 `help:"Q-learning exploration probability"`
	Gamma       *float64 `help:"Q-learning discount"`
	QTable      string   `name:"q-table" type:"path" env:"BLACKJACK_Q_TABLE" help:"Load and save the learned Q-table here"`
}

// loadConfig reads the configuration file and applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", g.Config, err)
	}

	if g.Decks != nil {
		cfg.Game.Decks = *g.Decks
	}
	if g.Seed != nil {
		cfg.Game.Seed = *g.Seed
	}
	if g.Surrender != "" {
		cfg.Game.Surrender = g.Surrender
	}
	if g.TrainRounds != nil {
		cfg.Game.TrainRounds = *g.TrainRounds
	}
	if g.Alpha != nil {
		cfg.Learning.Alpha = *g.Alpha
	}
	if g.Epsilon != nil {
		cfg.Learning.Epsilon = *g.Epsilon
	}
	if g.Gamma != nil {
		cfg.Learning.Gamma = *g.Gamma
	}
	if g.QTable != "" {
		cfg.Learning.Table = g.QTable
	}
	return cfg, nil
}

// setupLogger returns a logger writing to stderr, or to LogFile when set.
// Only warnings reach the terminal unless debugging, so log lines do not
// interleave with the game.
func (g *Globals) setupLogger() (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closer := func() {}
	level := log.WarnLevel

	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		level = log.InfoLevel
		closer = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}
	if g.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, closer, nil
}

// renderer styles output for stdout.
func (g *Globals) renderer() *display.Renderer {
	return display.NewRenderer(os.Stdout, !g.NoColor)
}
