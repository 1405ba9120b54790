// Package style provides a functional API for composing lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/palettekit/palettekit/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a rendering function that applies the background color c.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Truncate returns a rendering function that constrains the output to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a banner in the chrome accent.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a banner in the error color.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Pass and Fail render contrast badges.
var (
	Pass = func(s string) string { return Colored(color.New("#052e16"), SuccessColor).Padding(0, 1).Render(s) }
	Fail = func(s string) string { return Colored(color.New("#450a0a"), ErrorColor).Padding(0, 1).Render(s) }
)
