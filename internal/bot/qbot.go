package bot

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// LearningParams are the Q-learning hyperparameters.
type LearningParams struct {
	Alpha   float64 // learning rate
	Epsilon float64 // exploration probability
	Gamma   float64 // discount
}

// DefaultLearningParams returns the stock hyperparameters.
func DefaultLearningParams() LearningParams {
	return LearningParams{Alpha: 1.0, Epsilon: 0.05, Gamma: 0.8}
}

// QKey indexes the value table: the acting hand's total and an action.
type QKey struct {
	Total  int
	Action game.Action
}

// QBot is a tabular Q-learning agent keyed on hand total. Unseen entries
// are worth zero. It is not safe for concurrent use.
type QBot struct {
	side   game.Side
	rng    *rand.Rand
	params LearningParams
	values map[QKey]float64
	logger *log.Logger
}

// NewQBot creates an untrained Q-learning bot for side.
func NewQBot(side game.Side, params LearningParams, rng *rand.Rand, logger *log.Logger) *QBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &QBot{
		side:   side,
		rng:    rng,
		params: params,
		values: make(map[QKey]float64),
		logger: logger,
	}
}

// MakeDecision explores with probability epsilon and otherwise picks the
// legal action with the highest learned value, earliest first on ties.
func (q *QBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	if len(validActions) == 0 {
		return game.Decision{Action: game.Stand, Reasoning: "q-bot no valid actions"}
	}
	if q.rng.Float64() < q.params.Epsilon {
		action := validActions[q.rng.IntN(len(validActions))]
		return game.Decision{Action: action, Reasoning: "q-bot exploring"}
	}

	total := state.AgentHand(q.side).Value()
	best, bestValue := q.best(total, validActions)
	return game.Decision{
		Action:    best,
		Reasoning: fmt.Sprintf("q-bot Q(%d, %s) = %.3f", total, best, bestValue),
	}
}

// ObserveTransition applies one temporal-difference update. Terminal
// transitions use the reward alone as the target.
func (q *QBot) ObserveTransition(t game.Transition) {
	key := QKey{Total: t.State.AgentHand(q.side).Value(), Action: t.Action}
	target := t.Reward
	if !t.Terminal {
		_, next := q.best(t.Next.AgentHand(q.side).Value(), t.Next.LegalActions(q.side))
		target += q.params.Gamma * next
	}
	current := q.values[key]
	q.values[key] = current + q.params.Alpha*(target-current)
}

func (q *QBot) best(total int, actions []game.Action) (game.Action, float64) {
	best := game.Stand
	bestValue := 0.0
	for i, a := range actions {
		v := q.values[QKey{Total: total, Action: a}]
		if i == 0 || v > bestValue {
			best, bestValue = a, v
		}
	}
	return best, bestValue
}

// Values returns a copy of the learned table.
func (q *QBot) Values() map[QKey]float64 {
	out := make(map[QKey]float64, len(q.values))
	for k, v := range q.values {
		out[k] = v
	}
	return out
}

// Value returns the learned value for total and action.
func (q *QBot) Value(total int, action game.Action) float64 {
	return q.values[QKey{Total: total, Action: action}]
}
