package main

import (
	"os"

	"github.com/lox/blackjack/internal/simulator"
)

// SampleCmd measures a player's win rate
type SampleCmd struct {
	Player   string `short:"p" env:"BLACKJACK_SAMPLE_PLAYER" help:"Player agent (default from config: random)"`
	Dealer   string `short:"d" env:"BLACKJACK_SAMPLE_DEALER" help:"Dealer agent (default from config: random)"`
	Samples  *int   `short:"s" help:"Games per batch"`
	Rounds   *int   `short:"n" help:"Rounds per game"`
	Batches  *int   `short:"b" help:"Number of batches"`
	Workers  *int   `short:"w" help:"Batches to run concurrently"`
	Progress bool   `default:"true" negatable:"" help:"Show a progress bar"`
}

func (c *SampleCmd) apply(opts simulator.SampleOptions) simulator.SampleOptions {
	if c.Player != "" {
		opts.Player = c.Player
	}
	if c.Dealer != "" {
		opts.Dealer = c.Dealer
	}
	if c.Samples != nil {
		opts.Samples = *c.Samples
	}
	if c.Rounds != nil {
		opts.Rounds = *c.Rounds
	}
	if c.Batches != nil {
		opts.Batches = *c.Batches
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	return opts
}

func (c *SampleCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	cfg.Game.Verbose = false

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
	opts := c.apply(sim.SampleOptions())

	ctx, stop := setupSignalHandler(logger)
	defer stop()

	var (
		reporter simulator.Reporter
		bar      *progressBar
	)
	if c.Progress {
		bar = newProgressBar(opts.Player+" vs "+opts.Dealer, os.Stderr, stop)
		bar.Start()
		reporter = bar
	}

	stats, summary, err := sim.Sample(ctx, opts, reporter)
	if bar != nil {
		bar.Stop()
	}
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, renderer, stats, summary)
	return nil
}
