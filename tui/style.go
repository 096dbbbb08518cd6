package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the terminal rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

// DefaultStyle returns StyleFor the default lipgloss renderer.
func DefaultStyle() Style { return StyleFor(lipgloss.DefaultRenderer()) }

// StyleFor returns the default styles bound to r.
func StyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Text:   r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),
		Status: r.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	}
}
