package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no value in blackjack.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank identifies a card face. Identity and blackjack worth are kept apart:
// Jack and King are different ranks with the same Worth.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Suits lists every suit in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + int(r)))
	}
	return "?"
}

// Name returns the long form of the rank, e.g. "Queen".
func (r Rank) Name() string {
	switch r {
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r >= Two && r <= Nine {
		return r.String()
	}
	return "Unknown"
}

// Worth returns the blackjack value of the rank. Aces are worth 11 here;
// demoting them to 1 is the hand evaluator's job.
func (r Rank) Worth() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten && r <= King:
		return 10
	case r >= Two && r <= Nine:
		return int(r)
	default:
		return 0
	}
}

// Card represents a playing card. The zero value is the Hidden card.
type Card struct {
	Suit Suit
	Rank Rank
}

// Hidden stands in for the dealer's face-down card.
var Hidden = Card{}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	if c.IsHidden() {
		return "<HIDDEN>"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsHidden reports whether the card is the face-down placeholder.
func (c Card) IsHidden() bool {
	return c.Rank == 0
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Worth returns the blackjack value of the card (Ace = 11).
func (c Card) Worth() int {
	return c.Rank.Worth()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// Equal compares cards by worth only; suit and face are ignored.
func (c Card) Equal(other Card) bool {
	return c.Worth() == other.Worth()
}

// Less orders cards by worth.
func (c Card) Less(other Card) bool {
	return c.Worth() < other.Worth()
}

// ParseCards parses a compact card string such as "AsKhTd".
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, NewCard(suit, rank))
	}
	return cards, nil
}

// MustParseCards is ParseCards for tests and fixtures; it panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	idx := strings.IndexByte("23456789TJQKA", upper(b))
	if idx < 0 {
		return 0, fmt.Errorf("invalid rank %q", b)
	}
	return Two + Rank(idx), nil
}

func parseSuit(b byte) (Suit, error) {
	switch upper(b) {
	case 'S':
		return Spades, nil
	case 'H':
		return Hearts, nil
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	}
	return 0, fmt.Errorf("invalid suit %q", b)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
