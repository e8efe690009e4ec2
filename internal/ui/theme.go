// Package ui provides the terminal building blocks shared by the CLI:
// a colour theme, headless detection and an install spinner that falls
// back to plain lines when no terminal is attached.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the brand colours as hex strings.
type Palette struct {
	Primary string
	Muted   string
}

// Theme bundles the palette with the no-colour switch.
type Theme struct {
	Colors  Palette
	NoColor bool
}

// DefaultPalette is the React-cyan brand palette.
var DefaultPalette = Palette{
	Primary: "#61DAFB",
	Muted:   "#6B7280",
}

// NewTheme creates a Theme using DefaultPalette.
func NewTheme(noColor bool) *Theme {
	return &Theme{Colors: DefaultPalette, NoColor: noColor}
}

// Style returns a foreground style for hex, or a plain style when colour
// is disabled.
func (t *Theme) Style(hex string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
