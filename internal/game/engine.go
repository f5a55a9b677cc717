package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// Shoe is the card source for a round. *deck.Deck satisfies it.
type Shoe interface {
	Draw() deck.Card
}

// Rules are the table variations the engine supports.
type Rules struct {
	// SurrenderAnyTime allows surrender at every player decision of an
	// unsplit round instead of only the first.
	SurrenderAnyTime bool
}

// Phase is where the engine is within a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDealing
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseScored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Outcome classifies how a single player hand finished.
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomePush
	OutcomeWin
	OutcomeBlackjack
	OutcomeSurrender
	OutcomeBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeSurrender:
		return "surrender"
	case OutcomeBust:
		return "bust"
	default:
		return "unknown"
	}
}

// HandResult is the settlement of one player hand.
type HandResult struct {
	Cards      Hand
	Multiplier float64
	Score      float64
	Outcome    Outcome
}

// RoundResult contains the results of a completed round.
type RoundResult struct {
	Score       float64 // sum of every hand's score
	Hands       []HandResult
	Dealer      Hand
	Surrendered bool
	Split       bool
}

// Outcome returns the outcome of the first hand, which is the only hand
// unless the player split.
func (r RoundResult) Outcome() Outcome {
	if len(r.Hands) == 0 {
		return OutcomePush
	}
	return r.Hands[0].Outcome
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithRules sets the table rules.
func WithRules(rules Rules) EngineOption {
	return func(e *Engine) { e.rules = rules }
}

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithEventBus publishes round events to bus instead of a private one.
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) { e.eventBus = bus }
}

type seatHand struct {
	cards      Hand
	multiplier float64
	done       bool
}

// Engine plays single rounds between a player agent and a dealer agent.
// It owns every mutation of round state; agents only ever see snapshots.
type Engine struct {
	shoe     Shoe
	player   Agent
	dealer   Agent
	rules    Rules
	logger   *log.Logger
	eventBus EventBus

	phase       Phase
	dealerHand  Hand
	hands       []*seatHand
	active      int
	hideDealer  bool
	surrendered bool
	split       bool
	acted       bool
	score       float64 // running session score shown in snapshots
}

// NewEngine creates an engine that deals from shoe.
func NewEngine(shoe Shoe, player, dealer Agent, opts ...EngineOption) *Engine {
	if shoe == nil {
		panic("shoe is required")
	}
	if player == nil || dealer == nil {
		panic("both agents are required")
	}
	e := &Engine{
		shoe:   shoe,
		player: player,
		dealer: dealer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.eventBus == nil {
		e.eventBus = NewEventBus()
	}
	return e
}

// EventBus returns the bus round events are published on.
func (e *Engine) EventBus() EventBus { return e.eventBus }

// Rules returns the table rules.
func (e *Engine) Rules() Rules { return e.rules }

// Phase returns the current round phase.
func (e *Engine) Phase() Phase { return e.phase }

// Player returns the player agent.
func (e *Engine) Player() Agent { return e.player }

// State returns a snapshot of the current round from the player's seat.
func (e *Engine) State() GameState {
	dealer := e.dealerHand.Clone()
	if e.hideDealer && len(dealer) > 0 {
		dealer[0] = deck.Hidden
	}
	hands := make([]Hand, len(e.hands))
	for i, h := range e.hands {
		hands[i] = h.cards.Clone()
	}
	var current Hand
	if e.active < len(hands) {
		current = hands[e.active]
	} else if len(hands) > 0 {
		current = hands[len(hands)-1]
	}
	return GameState{
		dealer:        dealer,
		player:        current,
		playerHands:   hands,
		handIndex:     e.active,
		score:         e.score,
		dealerHidden:  e.hideDealer,
		firstDecision: !e.acted,
		split:         e.split,
		rules:         e.rules,
	}
}

// PlayRound deals and plays one complete round and returns its settlement.
// An agent answering with an action outside the legal set it was offered
// aborts the round with an *InvalidActionError.
func (e *Engine) PlayRound(ctx context.Context) (RoundResult, error) {
	return e.playRound(ctx, nil)
}

// Train runs n unscored rounds, feeding every player transition to the
// player agent. It is a no-op for agents that do not learn.
func (e *Engine) Train(ctx context.Context, n int) error {
	learner, ok := e.player.(Trainable)
	if !ok || n <= 0 {
		return nil
	}
	e.logger.Info("Training player agent", "rounds", n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := e.playRound(ctx, learner); err != nil {
			return fmt.Errorf("training round %d: %w", i+1, err)
		}
	}
	e.eventBus.Publish(NewTrainingDoneEvent(n))
	e.logger.Info("Training complete", "rounds", n)
	return nil
}

func (e *Engine) playRound(ctx context.Context, learner Trainable) (RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return RoundResult{}, err
	}

	e.reset()
	e.deal()
	e.logger.Debug("Dealt round", "dealer", e.dealerHand, "player", e.hands[0].cards)
	if learner == nil {
		e.eventBus.Publish(NewRoundStartEvent(e.State()))
	}

	var history [][]Transition
	if learner != nil {
		history = make([][]Transition, 1, 2)
	}

	e.phase = PhasePlayerTurn
	if err := e.playerTurn(learner, &history); err != nil {
		return RoundResult{}, err
	}

	e.hideDealer = false
	if !e.surrendered && !e.allBust() {
		e.phase = PhaseDealerTurn
		if err := e.dealerTurn(learner == nil); err != nil {
			return RoundResult{}, err
		}
	}

	result := e.settle()
	e.phase = PhaseScored
	e.logger.Debug("Round scored",
		"score", result.Score,
		"outcome", result.Outcome(),
		"dealer", result.Dealer)

	if learner != nil {
		e.replay(learner, history, result)
	}
	return result, nil
}

func (e *Engine) reset() {
	e.phase = PhaseDealing
	e.dealerHand = e.dealerHand[:0]
	e.hands = []*seatHand{{multiplier: 1}}
	e.active = 0
	e.hideDealer = true
	e.surrendered = false
	e.split = false
	e.acted = false
}

// deal hands out dealer, player, dealer, player.
func (e *Engine) deal() {
	for i := 0; i < 4; i++ {
		if i%2 == 0 {
			e.dealerHand = append(e.dealerHand, e.shoe.Draw())
		} else {
			e.hands[0].cards = append(e.hands[0].cards, e.shoe.Draw())
		}
	}
}

func (e *Engine) playerTurn(learner Trainable, history *[][]Transition) error {
	for e.active = 0; e.active < len(e.hands); e.active++ {
		h := e.hands[e.active]
		for !h.done && h.cards.Value() < Blackjack {
			state := e.State()
			valid := state.LegalActions(PlayerSide)
			decision := e.player.MakeDecision(state, valid)
			if err := e.validate(PlayerSide, decision.Action, valid); err != nil {
				return err
			}
			e.acted = true
			hand := e.active
			e.applyPlayer(decision.Action)

			e.logger.Debug("Player action",
				"action", decision.Action,
				"hand", h.cards,
				"reasoning", decision.Reasoning)
			if learner == nil {
				e.eventBus.Publish(NewActionEvent(PlayerSide, decision, h.cards))
			} else {
				for len(*history) < len(e.hands) {
					*history = append(*history, nil)
				}
				(*history)[hand] = append((*history)[hand], Transition{
					State:  state,
					Action: decision.Action,
					Next:   e.State(),
				})
			}
		}
	}
	if e.active >= len(e.hands) {
		e.active = len(e.hands) - 1
	}
	return nil
}

func (e *Engine) applyPlayer(action Action) {
	h := e.hands[e.active]
	switch action {
	case Hit:
		h.cards = append(h.cards, e.shoe.Draw())
	case Stand:
		h.done = true
	case DoubleDown:
		h.multiplier = 2
		h.cards = append(h.cards, e.shoe.Draw())
		h.done = true
	case Surrender:
		e.surrendered = true
		h.done = true
	case Split:
		e.split = true
		second := &seatHand{cards: Hand{h.cards[1]}, multiplier: h.multiplier}
		h.cards = Hand{h.cards[0], e.shoe.Draw()}
		second.cards = append(second.cards, e.shoe.Draw())
		e.hands = append(e.hands, nil)
		copy(e.hands[e.active+2:], e.hands[e.active+1:])
		e.hands[e.active+1] = second
	}
}

// dealerTurn plays the dealer's hand. The dealer may only hit or stand.
func (e *Engine) dealerTurn(publish bool) error {
	valid := []Action{Hit, Stand}
	for e.dealerHand.Value() < Blackjack {
		state := e.State()
		decision := e.dealer.MakeDecision(state, valid)
		if err := e.validate(DealerSide, decision.Action, valid); err != nil {
			return err
		}
		if decision.Action == Hit {
			e.dealerHand = append(e.dealerHand, e.shoe.Draw())
		}
		e.logger.Debug("Dealer action",
			"action", decision.Action,
			"hand", e.dealerHand,
			"reasoning", decision.Reasoning)
		if publish {
			e.eventBus.Publish(NewActionEvent(DealerSide, decision, e.dealerHand))
		}
		if decision.Action == Stand {
			break
		}
	}
	return nil
}

func (e *Engine) validate(side Side, action Action, valid []Action) error {
	if ContainsAction(valid, action) {
		return nil
	}
	err := &InvalidActionError{Side: side, Action: action, Legal: valid}
	e.logger.Error("Agent chose an illegal action", "side", side, "action", action, "legal", valid)
	return err
}

func (e *Engine) allBust() bool {
	for _, h := range e.hands {
		if !h.cards.IsBust() {
			return false
		}
	}
	return true
}

func (e *Engine) settle() RoundResult {
	result := RoundResult{
		Dealer:      e.dealerHand.Clone(),
		Surrendered: e.surrendered,
		Split:       e.split,
		Hands:       make([]HandResult, len(e.hands)),
	}
	for i, h := range e.hands {
		score, outcome := e.settleHand(h)
		result.Hands[i] = HandResult{
			Cards:      h.cards.Clone(),
			Multiplier: h.multiplier,
			Score:      score,
			Outcome:    outcome,
		}
		result.Score += score
	}
	return result
}

// settleHand scores one hand against the dealer. Surrender forfeits half
// and a player bust loses whatever the dealer later draws, so a split hand
// that busted is not rescued by a dealer bust. Otherwise a dealer bust
// wins and the total closer to 21 wins. A natural pays 3:2 unless the
// round was split.
func (e *Engine) settleHand(h *seatHand) (float64, Outcome) {
	if e.surrendered {
		return -0.5 * h.multiplier, OutcomeSurrender
	}

	switch {
	case h.cards.IsBust():
		return -1 * h.multiplier, OutcomeBust
	case e.dealerHand.IsBust():
		return 1 * h.multiplier, OutcomeWin
	}

	playerGap := Blackjack - h.cards.Value()
	dealerGap := Blackjack - e.dealerHand.Value()
	switch {
	case playerGap == dealerGap:
		return 0, OutcomePush
	case playerGap < dealerGap:
		if h.cards.IsNatural() && !e.split {
			return 1.5 * h.multiplier, OutcomeBlackjack
		}
		return 1 * h.multiplier, OutcomeWin
	default:
		return -1 * h.multiplier, OutcomeLose
	}
}

// replay hands recorded transitions to the learner. The last transition of
// each hand carries that hand's settled score; earlier ones carry zero.
func (e *Engine) replay(learner Trainable, history [][]Transition, result RoundResult) {
	for i, steps := range history {
		for j, t := range steps {
			if j == len(steps)-1 && i < len(result.Hands) {
				t.Reward = result.Hands[i].Score
				t.Terminal = true
			}
			learner.ObserveTransition(t)
		}
	}
}
