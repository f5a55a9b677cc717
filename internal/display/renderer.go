// Package display renders game states, round outcomes and session
// headers for the terminal.
//
// Output is styled with lipgloss. A Renderer built without colour uses the
// termenv Ascii profile, in which case every method returns exactly the
// plain text the game package prints on its own.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Renderer styles game output for one writer.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles Styles
}

// NewRenderer creates a renderer for w. With color false every style is
// rendered as plain text regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{lg: lg, styles: NewStyles(lg)}
}

// Styles returns the renderer's style set.
func (r *Renderer) Styles() Styles { return r.styles }

// Card renders a single card, red suits in red.
func (r *Renderer) Card(c deck.Card) string {
	switch {
	case c.IsHidden():
		return r.styles.Hidden.Render(c.String())
	case c.IsRed():
		return r.styles.RedCard.Render(c.String())
	default:
		return r.styles.BlackCard.Render(c.String())
	}
}

// Hand renders cards in the same bracketed form as game.Hand.String.
func (r *Renderer) Hand(h game.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = r.Card(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// State renders a snapshot with the layout of game.GameState.String.
func (r *Renderer) State(s game.GameState) string {
	var b strings.Builder
	b.WriteString(r.styles.Rule.Render(strings.Repeat("-", 20)))
	b.WriteString("\n")

	b.WriteString(r.styles.Label.Render("Dealer Hand:"))
	b.WriteString(" ")
	b.WriteString(r.Hand(s.Dealer()))
	if !s.DealerHidden() {
		fmt.Fprintf(&b, " -- %s", r.styles.Total.Render(fmt.Sprint(s.Dealer().Value())))
	}
	b.WriteString("\n")

	hands := s.PlayerHands()
	if len(hands) == 0 {
		hands = []game.Hand{s.Hand()}
	}
	parts := make([]string, len(hands))
	for i, h := range hands {
		parts[i] = fmt.Sprintf("%s -- %s", r.Hand(h), r.styles.Total.Render(fmt.Sprint(h.Value())))
	}
	fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Your Hand:"), strings.Join(parts, " | "))
	fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Score:"), game.FormatScore(s.Score()))
	return b.String()
}

// Outcome renders a one-line summary of a settled round, for example
// "Round 3: win +1 (score 2)". Split rounds list every hand.
func (r *Renderer) Outcome(round int, result game.RoundResult, sessionScore float64) string {
	parts := make([]string, len(result.Hands))
	for i, h := range result.Hands {
		parts[i] = r.outcomeStyle(h.Score).Render(h.Outcome.String())
	}
	if len(parts) == 0 {
		parts = []string{r.outcomeStyle(result.Score).Render(result.Outcome().String())}
	}
	return fmt.Sprintf("Round %d: %s %s (score %s)",
		round,
		strings.Join(parts, "/"),
		r.outcomeStyle(result.Score).Render(signed(result.Score)),
		game.FormatScore(sessionScore))
}

// Header renders a section banner.
func (r *Renderer) Header(title string) string {
	return r.styles.Header.Render(" " + title + " ")
}

// Info renders secondary text.
func (r *Renderer) Info(text string) string {
	return r.styles.Info.Render(text)
}

func (r *Renderer) outcomeStyle(score float64) lipgloss.Style {
	switch {
	case score > 0:
		return r.styles.Win
	case score < 0:
		return r.styles.Lose
	default:
		return r.styles.Push
	}
}

func signed(score float64) string {
	if score > 0 {
		return "+" + game.FormatScore(score)
	}
	return game.FormatScore(score)
}
