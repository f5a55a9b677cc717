package game

// Decision is an agent's chosen action with a human-readable reason.
type Decision struct {
	Action    Action
	Reasoning string
}

// Agent is anything (human or bot) that can decide on a move for one side.
// Agents receive an immutable snapshot and the legal actions for the seat
// they play; the engine owns every mutation.
type Agent interface {
	MakeDecision(state GameState, validActions []Action) Decision
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(state GameState, validActions []Action) Decision

// MakeDecision calls f.
func (f AgentFunc) MakeDecision(state GameState, validActions []Action) Decision {
	return f(state, validActions)
}

// Transition is one observed step of the player's decision process.
type Transition struct {
	State    GameState
	Action   Action
	Next     GameState
	Reward   float64
	Terminal bool // Next is the end of the round; there is no follow-up decision
}

// Trainable agents learn from transitions during unscored training rounds
// run before normal play.
type Trainable interface {
	Agent
	ObserveTransition(t Transition)
}
