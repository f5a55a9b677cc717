package display

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/game"
)

// Printer is an event subscriber that prints every finished round: the
// revealed table followed by the round's outcome line.
type Printer struct {
	out      io.Writer
	renderer *Renderer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, renderer *Renderer) *Printer {
	return &Printer{out: out, renderer: renderer}
}

// OnEvent implements game.EventSubscriber.
func (p *Printer) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundEndEvent:
		fmt.Fprint(p.out, p.renderer.State(e.State))
		fmt.Fprintln(p.out, p.renderer.Outcome(e.Round, e.Result, e.SessionScore))
	case game.TrainingDoneEvent:
		fmt.Fprintln(p.out, p.renderer.Info(fmt.Sprintf("Trained for %d rounds", e.Rounds)))
	}
}
