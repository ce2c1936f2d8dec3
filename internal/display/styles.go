// Package display renders game state as styled text for the console and
// TUI front-ends.
package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for game display
type Styles struct {
	Header   lipgloss.Style
	Dice     lipgloss.Style
	Held     lipgloss.Style
	Category lipgloss.Style
	Score    lipgloss.Style
	Total    lipgloss.Style
	Winner   lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
}

// NewStyles creates the default colour scheme.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Dice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Held: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Total: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}

// PlainStyles renders every element without decoration.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:   plain,
		Dice:     plain,
		Held:     plain,
		Category: plain,
		Score:    plain,
		Total:    plain,
		Winner:   plain,
		Error:    plain,
		Hint:     plain,
	}
}

// SetColor switches the global colour profile. Disabling colour forces
// plain ASCII output even on a capable terminal.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
