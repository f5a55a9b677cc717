package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/display"
)

// AgentsCmd lists the registered agents
type AgentsCmd struct{}

func (c *AgentsCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	registry := bot.NewRegistry(bot.Deps{Decks: cfg.Game.Decks})
	printAgents(os.Stdout, g.renderer(), registry)
	return nil
}

func printAgents(w io.Writer, r *display.Renderer, registry *bot.Registry) {
	fmt.Fprintln(w, r.Header("Agents"))
	for _, info := range registry.Describe() {
		line := fmt.Sprintf("  %-8s %s", info.Name, info.Description)
		switch info.Name {
		case bot.DefaultPlayer:
			line += r.Info(" (default player)")
		case bot.DefaultDealer:
			line += r.Info(" (default dealer)")
		}
		fmt.Fprintln(w, line)
	}
}
