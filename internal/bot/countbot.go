package bot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// CountBot counts every card it gets to see and hits while the chance that
// one more card busts its hand is under one half.
//
// It only sees what a seated agent sees: the cards on the table at each of
// its decisions. Cards dealt in rounds where it never acts go uncounted, so
// the count is an estimate. It starts over once a full shoe has been seen.
type CountBot struct {
	side      game.Side
	decks     int
	remaining map[int]int // by worth, 2 to 11
	seen      int
	round     []deck.Card // cards already counted this round
	logger    *log.Logger
}

// BustThreshold is the bust probability at or above which CountBot stands.
const BustThreshold = 0.5

// NewCountBot creates a counting bot for a shoe of decks decks.
func NewCountBot(side game.Side, decks int, logger *log.Logger) *CountBot {
	if decks < 1 {
		decks = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &CountBot{side: side, decks: decks, logger: logger}
	c.Reset()
	return c
}

// Reset forgets every counted card.
func (c *CountBot) Reset() {
	c.remaining = make(map[int]int, 10)
	for worth := 2; worth <= 11; worth++ {
		c.remaining[worth] = 4 * c.decks
	}
	c.remaining[10] = 16 * c.decks
	c.seen = 0
	c.round = c.round[:0]
}

// Remaining returns how many cards of the given worth are still unseen.
func (c *CountBot) Remaining(worth int) int { return c.remaining[worth] }

// Seen returns how many cards have been counted since the last reset.
func (c *CountBot) Seen() int { return c.seen }

func (c *CountBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	c.observe(state)

	p := c.BustProbability(state.AgentHand(c.side))
	if p < BustThreshold {
		return findAction(game.Hit, validActions, fmt.Sprintf("count-bot p(bust)=%.2f", p))
	}
	return findAction(game.Stand, validActions, fmt.Sprintf("count-bot p(bust)=%.2f", p))
}

// BustProbability is the chance, given the unseen cards, that drawing one
// more card takes hand over 21.
func (c *CountBot) BustProbability(hand game.Hand) float64 {
	total, busts := 0, 0
	for worth, n := range c.remaining {
		if n <= 0 {
			continue
		}
		total += n
		next := append(hand.Clone(), cardOfWorth(worth))
		if next.IsBust() {
			busts += n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(busts) / float64(total)
}

// observe counts the visible cards that have not been counted this round.
func (c *CountBot) observe(state game.GameState) {
	if c.newRound(state) {
		c.round = c.round[:0]
	}

	visible := state.Dealer()
	for _, h := range state.PlayerHands() {
		visible = append(visible, h...)
	}

	pending := append([]deck.Card(nil), c.round...)
	for _, card := range visible {
		if card.IsHidden() {
			continue
		}
		if i := indexOf(pending, card); i >= 0 {
			pending = append(pending[:i], pending[i+1:]...)
			continue
		}
		c.count(card)
		c.round = append(c.round, card)
	}
}

func (c *CountBot) newRound(state game.GameState) bool {
	if c.side == game.PlayerSide {
		return state.IsFirstDecision()
	}
	return len(state.Dealer()) == 2
}

func (c *CountBot) count(card deck.Card) {
	if c.seen >= deck.CardsPerDeck*c.decks {
		c.logger.Debug("Shoe exhausted, resetting count")
		c.Reset()
	}
	if c.remaining[card.Worth()] > 0 {
		c.remaining[card.Worth()]--
	}
	c.seen++
}

func cardOfWorth(worth int) deck.Card {
	switch {
	case worth == 11:
		return deck.NewCard(deck.Spades, deck.Ace)
	case worth == 10:
		return deck.NewCard(deck.Spades, deck.Ten)
	default:
		return deck.NewCard(deck.Spades, deck.Rank(worth))
	}
}

func indexOf(cards []deck.Card, card deck.Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}
