package bot

import (
	"github.com/lox/blackjack/internal/game"
)

// FixedBot always plays the same action, standing when it is not legal.
type FixedBot struct {
	action game.Action
}

// NewFixedBot creates a bot that always chooses action.
func NewFixedBot(action game.Action) *FixedBot {
	return &FixedBot{action: action}
}

func (f *FixedBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	return findAction(f.action, validActions, "fixed-bot always "+f.action.String())
}
