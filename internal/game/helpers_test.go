package game

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// scriptedAgent plays a fixed list of actions and then stands.
type scriptedAgent struct {
	actions []Action
	states  []GameState
	offered [][]Action
}

func script(actions ...Action) *scriptedAgent {
	return &scriptedAgent{actions: actions}
}

func (a *scriptedAgent) MakeDecision(state GameState, validActions []Action) Decision {
	a.states = append(a.states, state)
	a.offered = append(a.offered, validActions)
	if len(a.actions) == 0 {
		return Decision{Action: Stand, Reasoning: "script exhausted"}
	}
	next := a.actions[0]
	a.actions = a.actions[1:]
	return Decision{Action: next, Reasoning: "scripted"}
}

func (a *scriptedAgent) calls() int { return len(a.states) }

// learningAgent records transitions as well as playing a script.
type learningAgent struct {
	scriptedAgent
	seen []Transition
}

func (a *learningAgent) ObserveTransition(t Transition) {
	a.seen = append(a.seen, t)
}

// stacked returns a shoe dealing cards in order: dealer, player, dealer,
// player, then every later draw.
func stacked(cards string) *deck.Deck {
	return deck.NewStacked(randutil.New(1), deck.MustParseCards(cards)...)
}

func hand(cards string) Hand {
	return Hand(deck.MustParseCards(cards))
}
