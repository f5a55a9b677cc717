package bot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	retryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// HumanBot asks a person for every decision. It prints the state, lists the
// legal actions and reads a line, accepting either an action name or its
// 1-based position in the list. Anything else is re-prompted. When input
// ends it stands.
type HumanBot struct {
	side   game.Side
	in     *bufio.Reader
	out    io.Writer
	render func(game.GameState) string
	logger *log.Logger
}

// NewHumanBot creates a prompt-driven bot reading from in and writing to out.
func NewHumanBot(side game.Side, in io.Reader, out io.Writer, logger *log.Logger) *HumanBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HumanBot{
		side:   side,
		in:     bufio.NewReader(in),
		out:    out,
		render: game.GameState.String,
		logger: logger,
	}
}

// SetRenderer replaces the function used to print the state before a prompt.
func (h *HumanBot) SetRenderer(render func(game.GameState) string) {
	h.render = render
}

func (h *HumanBot) MakeDecision(state game.GameState, validActions []game.Action) game.Decision {
	if len(validActions) == 0 {
		return game.Decision{Action: game.Stand, Reasoning: "no valid actions"}
	}

	fmt.Fprint(h.out, h.render(state))
	names := make([]string, len(validActions))
	for i, a := range validActions {
		names[i] = fmt.Sprintf("%d) %s", i+1, a)
	}
	prompt := promptStyle.Render("Select one of ["+strings.Join(names, ", ")+"]:") + " "

	for {
		fmt.Fprint(h.out, prompt)
		line, err := h.in.ReadString('\n')
		if action, ok := choose(line, validActions); ok {
			return game.Decision{Action: action, Reasoning: "user choice"}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.logger.Warn("Failed to read input, standing", "error", err)
			} else {
				h.logger.Warn("Input closed, standing", "side", h.side)
			}
			fmt.Fprintln(h.out)
			return game.Decision{Action: game.Stand, Reasoning: "input closed"}
		}
		fmt.Fprintln(h.out, retryStyle.Render(fmt.Sprintf("%q is not one of the given values.", strings.TrimSpace(line))))
	}
}

// choose resolves a typed answer against the offered actions.
func choose(input string, validActions []game.Action) (game.Action, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(validActions) {
			return validActions[n-1], true
		}
		return 0, false
	}
	action, err := game.ParseAction(input)
	if err != nil || !game.ContainsAction(validActions, action) {
		return 0, false
	}
	return action, true
}
