// Package bot provides the agents that can sit in either seat of a blackjack
// table, and the registry that maps selector names to them.
package bot

import (
	"github.com/lox/blackjack/internal/game"
)

// findAction returns preferred when it is legal and falls back to Stand,
// which is always legal.
func findAction(preferred game.Action, validActions []game.Action, reasoning string) game.Decision {
	if game.ContainsAction(validActions, preferred) {
		return game.Decision{Action: preferred, Reasoning: reasoning}
	}
	return game.Decision{Action: game.Stand, Reasoning: reasoning + " (standing instead)"}
}
