// Package render formats countries for the terminal.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	Card       lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#111517"),
		Muted:      lipgloss.Color("#5a6268"),
		Primary:    lipgloss.Color("#111517"),
		Card:       lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#dce0e5"),
		Error:      lipgloss.Color("#e53935"),
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#88959e"),
		Primary:    lipgloss.Color("#ffffff"),
		Card:       lipgloss.Color("#2b3743"),
		Border:     lipgloss.Color("#202d36"),
		Error:      lipgloss.Color("#ff6b6b"),
		IsDark:     true,
	}
}

// ThemeFor returns the theme matching the dark mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds the styled components of a theme.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Card   lipgloss.Style
	Chip   lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
}

// NewStyles builds the styles of t for output written to w.
func NewStyles(w io.Writer, t Theme) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(t.IsDark)

	return Styles{
		Theme:  t,
		Header: r.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Title:  r.NewStyle().Bold(true).Foreground(t.Foreground),
		Label:  r.NewStyle().Bold(true).Foreground(t.Foreground),
		Value:  r.NewStyle().Foreground(t.Muted),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Chip:   r.NewStyle().Foreground(t.Foreground).Background(t.Card).Padding(0, 1),
		Error:  r.NewStyle().Bold(true).Foreground(t.Error),
		Status: r.NewStyle().Italic(true).Foreground(t.Muted),
	}
}
