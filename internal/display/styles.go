package display

import "github.com/charmbracelet/lipgloss"

// Palette
const (
	colorText    = lipgloss.Color("#FAFAFA")
	colorAccent  = lipgloss.Color("#7D56F4")
	colorGreen   = lipgloss.Color("#96CEB4")
	colorGold    = lipgloss.Color("#FFD700")
	colorRed     = lipgloss.Color("#FF6B6B")
	colorYellow  = lipgloss.Color("#FFEAA7")
	colorMuted   = lipgloss.Color("#626262")
	colorSuccess = lipgloss.Color("#04B575")
)

// Styles are the lipgloss styles bound to one renderer's colour profile.
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Total     lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
	Info      lipgloss.Style
	Rule      lipgloss.Style
}

// NewStyles builds the style set for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(colorText).
			Background(colorAccent).
			Bold(true),

		Label: r.NewStyle().
			Foreground(colorGreen).
			Bold(true),

		RedCard: r.NewStyle().
			Foreground(colorRed).
			Bold(true),

		BlackCard: r.NewStyle().
			Foreground(colorText).
			Bold(true),

		Hidden: r.NewStyle().
			Foreground(colorMuted),

		Total: r.NewStyle().
			Foreground(colorGold).
			Bold(true),

		Win: r.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Lose: r.NewStyle().
			Foreground(colorRed).
			Bold(true),

		Push: r.NewStyle().
			Foreground(colorYellow).
			Bold(true),

		Info: r.NewStyle().
			Foreground(colorMuted),

		Rule: r.NewStyle().
			Foreground(colorMuted),
	}
}
