package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack is the target total.
const Blackjack = 21

// Hand is the ordered cards held by one side during a round.
type Hand []deck.Card

// Value returns the best total for the hand. Aces start at 11 and are
// demoted to 1 one at a time while the total is over 21, so the result is
// the highest total not over 21 when one exists and otherwise the lowest
// (every Ace demoted) bust total. Hidden cards count for nothing.
func (h Hand) Value() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether at least one Ace is still being counted as 11.
func (h Hand) IsSoft() bool {
	_, soft := h.evaluate()
	return soft
}

func (h Hand) evaluate() (int, bool) {
	total, aces := 0, 0
	for _, c := range h {
		total += c.Worth()
		if c.IsAce() {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBust reports whether the hand totals more than 21.
func (h Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsNatural reports a two-card 21: one Ace plus any card worth ten
// (Ten, Jack, Queen or King).
func (h Hand) IsNatural() bool {
	if len(h) != 2 {
		return false
	}
	a, b := h[0], h[1]
	return (a.IsAce() && b.Worth() == 10) || (b.IsAce() && a.Worth() == 10)
}

// IsPair reports a two-card hand whose cards share a worth.
func (h Hand) IsPair() bool {
	return len(h) == 2 && h[0].Equal(h[1])
}

// Clone returns a copy that does not alias h.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
