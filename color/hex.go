package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a value is not a 6-digit hex color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a 24-bit RGB value in canonical form: '#' followed by 6 lowercase hex digits.
type Color string

// Reference colors used for contrast badges.
const (
	White Color = "#ffffff"
	Black Color = "#000000"
)

// Parse validates s and returns it in canonical form.
// The leading '#' is optional; 3-digit shorthand is rejected.
func Parse(s string) (Color, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	if len(hex) != 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	for _, r := range hex[1:] {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}

	return Color(hex), nil
}

// MustParse is like Parse but panics on malformed input. Intended for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromUint24 renders the low 24 bits of v as a zero-padded color.
func FromUint24(v uint32) Color {
	return Color(fmt.Sprintf("#%06x", v&0xffffff))
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

// Valid reports whether c is in canonical form.
func (c Color) Valid() bool {
	parsed, err := Parse(string(c))
	return err == nil && parsed == c
}

// RGB returns the 8-bit channels. Malformed colors read as black.
func (c Color) RGB() (r, g, b uint8) {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return 0, 0, 0
	}
	return parsed.RGB255()
}

// Lipgloss converts c for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(string(c))
}

func (c Color) String() string {
	return string(c)
}
