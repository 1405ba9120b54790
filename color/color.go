// Package color implements hex colors, WCAG relative luminance and contrast checks,
// plus the named terminal colors used by the CLI chrome.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// HiPurple is the high-intensity ANSI magenta.
var HiPurple = New("13")
