package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/palettekit/palettekit/settings"
)

// Chrome is the color scheme of the application frame around the preview.
type Chrome struct {
	Base    lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
}

var (
	// Dark chrome
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	// Light chrome
	LatteBase    = lipgloss.Color("#eff1f5")
	LatteText    = lipgloss.Color("#4c4f69")
	LatteSubtext = lipgloss.Color("#6c6f85")
	LatteSurface = lipgloss.Color("#ccd0da")

	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	FaintColor     = Overlay
)

// ChromeFor returns the frame colors of theme t.
func ChromeFor(t settings.Theme) Chrome {
	if t == settings.Dark {
		return Chrome{Base: Base, Text: Text, Subtext: Subtext, Border: Surface, Accent: AccentColor}
	}
	return Chrome{Base: LatteBase, Text: LatteText, Subtext: LatteSubtext, Border: LatteSurface, Accent: lipgloss.Color("#8839ef")}
}
