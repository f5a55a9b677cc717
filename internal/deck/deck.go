package deck

import (
	"math/rand/v2"
)

// CardsPerDeck is the size of a single standard deck.
const CardsPerDeck = 52

// Deck is a continuously reshuffling shoe built from one or more 52-card
// decks. Draws advance a cursor; once every card has been dealt the shoe is
// reshuffled in place and the cursor wraps, so Draw never runs out.
type Deck struct {
	cards  []Card
	cursor int
	rng    *rand.Rand
}

// New creates a shuffled shoe of 52*decks cards. decks < 1 is treated as 1.
func New(rng *rand.Rand, decks int) *Deck {
	if decks < 1 {
		decks = 1
	}
	d := &Deck{
		cards: make([]Card, 0, CardsPerDeck*decks),
		rng:   rng,
	}
	for i := 0; i < decks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.cards = append(d.cards, NewCard(suit, rank))
			}
		}
	}
	d.Shuffle()
	return d
}

// NewStacked creates a shoe whose first pass deals cards in the given order.
// It reshuffles like any other shoe once the stack is exhausted.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	stack := make([]Card, len(cards))
	copy(stack, cards)
	return &Deck{cards: stack, rng: rng}
}

// Shuffle randomizes the order of cards in the shoe (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw returns the card under the cursor and advances it, reshuffling and
// wrapping when the shoe is exhausted.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		return Hidden
	}
	if d.cursor >= len(d.cards) {
		d.cursor = 0
		d.Shuffle()
	}
	card := d.cards[d.cursor]
	d.cursor++
	return card
}

// Len returns the number of cards in the shoe.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining returns the number of cards left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}
