package bot

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
)

// DealerStandsAt is the total at which casino rules stop drawing.
const DealerStandsAt = 17

// DealerBot plays casino house rules: hit on 16 or less, stand on 17 or
// more. Soft 17 stands.
type DealerBot struct {
	side game.Side
}

// NewDealerBot creates a casino-rules bot for side.
func NewDealerBot(side game.Side) *DealerBot {
	return &DealerBot{side: side}
}

func (d *DealerBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	total := state.AgentHand(d.side).Value()
	if total >= DealerStandsAt {
		return findAction(game.Stand, validActions, fmt.Sprintf("house rules: stand on %d", total))
	}
	return findAction(game.Hit, validActions, fmt.Sprintf("house rules: hit on %d", total))
}
