package game

import (
	"errors"
	"fmt"
)

// ErrInvalidAction marks an agent or engine bug: an action outside the
// legal set reached the engine. It is never a recoverable game event.
var ErrInvalidAction = errors.New("invalid action")

// InvalidActionError carries the details of a rejected action.
type InvalidActionError struct {
	Side   Side
	Action Action
	Legal  []Action
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("%s chose %s, legal actions are %v", e.Side, e.Action, e.Legal)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidAction).
func (e *InvalidActionError) Unwrap() error {
	return ErrInvalidAction
}
