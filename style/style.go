// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Typographic helpers.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a highlighted banner in the accent colors.
var Title = func(s string) string {
	return Colored(Crust, AccentColor).Padding(0, 1).Render(s)
}

// Swatch renders a block of width cells painted with the given hex color.
// The hex code may be given with or without the leading '#'.
func Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return Bg(lipgloss.Color(hex))(strings.Repeat(" ", width))
}
