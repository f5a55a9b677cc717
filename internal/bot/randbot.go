package bot

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	if len(validActions) == 0 {
		return game.Decision{Action: game.Stand, Reasoning: "rand-bot no valid actions"}
	}
	action := validActions[r.rng.IntN(len(validActions))]
	r.logger.Debug("Random action", "action", action, "from", validActions)
	return game.Decision{Action: action, Reasoning: "rand-bot random action"}
}
