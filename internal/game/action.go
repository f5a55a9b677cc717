package game

import (
	"fmt"
	"strings"
)

// Action is a move an agent can make on its turn.
type Action int

const (
	Hit Action = iota
	Stand
	DoubleDown
	Surrender
	Split
)

// AllActions lists every action in presentation order.
var AllActions = []Action{Hit, Stand, DoubleDown, Surrender, Split}

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case DoubleDown:
		return "double-down"
	case Surrender:
		return "surrender"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction accepts an action name case-insensitively. Underscores and
// spaces are treated like dashes so "double_down" and "DOUBLE DOWN" parse.
func ParseAction(s string) (Action, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	switch norm {
	case "hit", "h":
		return Hit, nil
	case "stand", "s":
		return Stand, nil
	case "double-down", "double", "d":
		return DoubleDown, nil
	case "surrender":
		return Surrender, nil
	case "split":
		return Split, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// ContainsAction reports whether a is in actions.
func ContainsAction(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate == a {
			return true
		}
	}
	return false
}

// Side identifies which seat an agent is playing.
type Side int

const (
	PlayerSide Side = iota
	DealerSide
)

func (s Side) String() string {
	if s == DealerSide {
		return "dealer"
	}
	return "player"
}
