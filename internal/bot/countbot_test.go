package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func TestCountBotBustProbabilityFreshShoe(t *testing.T) {
	t.Parallel()
	c := NewCountBot(game.PlayerSide, 1, quietLogger())

	assert.InDelta(t, 48.0/52.0, c.BustProbability(cards("TsQh")), 1e-9, "only an Ace saves twenty")
	assert.InDelta(t, 16.0/52.0, c.BustProbability(cards("Ts2h")), 1e-9, "tens bust twelve")
	assert.Equal(t, 0.0, c.BustProbability(cards("5s6h")))
	assert.Equal(t, 0.0, c.BustProbability(cards("As5h")), "soft hands cannot bust on one card")
}

func TestCountBotDecisions(t *testing.T) {
	t.Parallel()

	c := NewCountBot(game.PlayerSide, 1, quietLogger())
	d := c.MakeDecision(playerState("9s", "Ts2h"), playerActions)
	assert.Equal(t, game.Hit, d.Action)
	assert.Contains(t, d.Reasoning, "p(bust)=0.31")

	c = NewCountBot(game.PlayerSide, 1, quietLogger())
	d = c.MakeDecision(playerState("9s", "Ts6h"), playerActions)
	assert.Equal(t, game.Stand, d.Action)
}

func TestCountBotCountsEachCardOncePerRound(t *testing.T) {
	t.Parallel()
	c := NewCountBot(game.PlayerSide, 1, quietLogger())

	c.MakeDecision(playerState("9s", "Ts2h"), playerActions)
	assert.Equal(t, 3, c.Seen(), "the hole card is not counted")
	assert.Equal(t, 15, c.Remaining(10))
	assert.Equal(t, 3, c.Remaining(9))

	c.MakeDecision(playerState("9s", "Ts2h5d"), []game.Action{game.Hit, game.Stand})
	assert.Equal(t, 4, c.Seen())
	assert.Equal(t, 3, c.Remaining(5))

	// A new round deals fresh cards even if they look the same.
	c.MakeDecision(playerState("9s", "Ts2h"), playerActions)
	assert.Equal(t, 7, c.Seen())
	assert.Equal(t, 14, c.Remaining(10))
}

func TestCountBotResetsAfterFullShoe(t *testing.T) {
	t.Parallel()
	c := NewCountBot(game.PlayerSide, 1, quietLogger())
	for i := 0; i < 40; i++ {
		c.MakeDecision(playerState("9s", "Ts2h"), playerActions)
		assert.LessOrEqual(t, c.Seen(), deck.CardsPerDeck)
		for worth := 2; worth <= 11; worth++ {
			assert.GreaterOrEqual(t, c.Remaining(worth), 0)
		}
	}
	assert.Less(t, c.Seen(), deck.CardsPerDeck)
}

func TestCountBotMultipleDecks(t *testing.T) {
	t.Parallel()
	c := NewCountBot(game.PlayerSide, 6, quietLogger())
	assert.Equal(t, 96, c.Remaining(10))
	assert.Equal(t, 24, c.Remaining(11))
}
