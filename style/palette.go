package style

import "github.com/charmbracelet/lipgloss"

// Interface colors. Color values being converted are rendered with their own
// hex through Swatch instead.
var (
	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")
	Sky    = lipgloss.Color("#89dceb")
	Blue   = lipgloss.Color("#89b4fa")
	Crust  = lipgloss.Color("#1e1e2e")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
)
