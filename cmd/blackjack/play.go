package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
)

// PlayCmd plays a single game on the terminal
type PlayCmd struct {
	Player  string `short:"p" env:"BLACKJACK_PLAYER" help:"Player agent (see 'agents')"`
	Dealer  string `short:"d" env:"BLACKJACK_DEALER" help:"Dealer agent (see 'agents')"`
	Rounds  *int   `short:"n" env:"BLACKJACK_ROUNDS" help:"Rounds to play; 0 plays until interrupted"`
	Endless bool   `short:"e" help:"Play until interrupted"`
	Quiet   bool   `short:"q" help:"Do not print the table after each round"`
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Player != "" {
		cfg.Game.Player = c.Player
	}
	if c.Dealer != "" {
		cfg.Game.Dealer = c.Dealer
	}
	if c.Rounds != nil {
		cfg.Game.Rounds = *c.Rounds
	}
	if c.Quiet {
		cfg.Game.Verbose = false
	}
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	c.apply(cfg)

	logger, closeLog, err := g.setupLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	renderer := g.renderer()
	sim, err := simulator.New(cfg, logger, simulator.WithRenderer(renderer))
	if err != nil {
		return err
	}

	ctx, stop := setupSignalHandler(logger)
	defer stop()

	fmt.Println(renderer.Header("♠ ♥ Blackjack ♦ ♣"))
	fmt.Println(renderer.Info(fmt.Sprintf("%s vs %s, seed %d", cfg.Game.Player, cfg.Game.Dealer, sim.Seed())))
	fmt.Println()

	unbounded := c.Endless || cfg.Game.Rounds == 0
	score, err := sim.Play(ctx, cfg.Game.Rounds, unbounded)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr)
		err = nil
	}
	fmt.Printf("Final score: %s\n", game.FormatScore(score))
	return err
}
