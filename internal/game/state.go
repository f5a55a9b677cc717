package game

import (
	"fmt"
	"strconv"
	"strings"
)

// GameState is a read-only snapshot built for a single decision point.
// Hands are copied in and copied out, so agents cannot reach engine state
// through it.
type GameState struct {
	dealer        Hand // first card masked while concealed
	player        Hand // the hand currently being decided
	playerHands   []Hand
	handIndex     int
	score         float64
	dealerHidden  bool
	firstDecision bool
	split         bool
	rules         Rules
}

// NewGameState builds a snapshot of one unsplit player hand, for driving
// agents outside an engine. The dealer counts as concealed when any of its
// cards is deck.Hidden, and a two-card player hand is a first decision.
func NewGameState(dealer, player Hand, score float64) GameState {
	hidden := false
	for _, c := range dealer {
		if c.IsHidden() {
			hidden = true
		}
	}
	return GameState{
		dealer:        dealer.Clone(),
		player:        player.Clone(),
		playerHands:   []Hand{player.Clone()},
		score:         score,
		dealerHidden:  hidden,
		firstDecision: len(player) == 2,
	}
}

// Dealer returns the dealer's visible cards.
func (s GameState) Dealer() Hand { return s.dealer.Clone() }

// Hand returns the player's active hand.
func (s GameState) Hand() Hand { return s.player.Clone() }

// AgentHand returns the hand belonging to side.
func (s GameState) AgentHand(side Side) Hand {
	if side == DealerSide {
		return s.Dealer()
	}
	return s.Hand()
}

// PlayerHands returns every player hand; more than one after a split.
func (s GameState) PlayerHands() []Hand {
	out := make([]Hand, len(s.playerHands))
	for i, h := range s.playerHands {
		out[i] = h.Clone()
	}
	return out
}

// HandIndex is the position of the active hand within PlayerHands.
func (s GameState) HandIndex() int { return s.handIndex }

// Score is the player's running session score.
func (s GameState) Score() float64 { return s.score }

// DealerHidden reports whether the dealer's first card is face down.
func (s GameState) DealerHidden() bool { return s.dealerHidden }

// IsSplit reports whether the player has split this round.
func (s GameState) IsSplit() bool { return s.split }

// IsFirstDecision reports whether no action has been taken on the round yet.
func (s GameState) IsFirstDecision() bool { return s.firstDecision }

// LegalActions lists the actions side may take, in presentation order.
// Hit and Stand are always allowed. Double down needs a two-card hand, split
// needs a two-card pair and no earlier split, and surrender is player-only
// and limited to the first decision unless the rules allow it at any time.
func (s GameState) LegalActions(side Side) []Action {
	hand := s.AgentHand(side)
	actions := []Action{Hit, Stand}
	if len(hand) == 2 {
		actions = append(actions, DoubleDown)
	}
	if side == PlayerSide && (s.firstDecision || (s.rules.SurrenderAnyTime && !s.split)) {
		actions = append(actions, Surrender)
	}
	if hand.IsPair() && !s.split {
		actions = append(actions, Split)
	}
	return actions
}

// String renders the state the way the CLI prints it between rounds.
func (s GameState) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 20))
	b.WriteString("\n")

	b.WriteString("Dealer Hand: ")
	b.WriteString(s.dealer.String())
	if !s.dealerHidden {
		fmt.Fprintf(&b, " -- %d", s.dealer.Value())
	}
	b.WriteString("\n")

	hands := s.playerHands
	if len(hands) == 0 {
		hands = []Hand{s.player}
	}
	parts := make([]string, len(hands))
	for i, h := range hands {
		parts[i] = fmt.Sprintf("%s -- %d", h, h.Value())
	}
	fmt.Fprintf(&b, "Your Hand: %s\n", strings.Join(parts, " | "))
	fmt.Fprintf(&b, "Score: %s\n", FormatScore(s.score))
	return b.String()
}

// FormatScore prints scores without trailing zeros ("1.5", "-2", "0").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
