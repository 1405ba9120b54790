// Package palette generates five-color palettes and maps them onto preview roles.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/palettekit/palettekit/color"
	"github.com/samber/lo"
)

// Size is the number of colors in every palette.
const Size = 5

// ErrInvalidPalette is returned when decoded data does not hold exactly Size valid colors.
var ErrInvalidPalette = errors.New("invalid palette")

// Palette is an ordered set of five colors.
// Positions carry the stylesheet roles: background, text, accent, secondary, secondary.
// Being an array, assignment copies it.
type Palette [Size]color.Color

// Colors returns the palette as a freshly allocated slice.
func (p Palette) Colors() []color.Color {
	return p[:Size:Size]
}

// Validate checks that every slot holds a canonical color.
func (p Palette) Validate() error {
	for i, c := range p {
		if !c.Valid() {
			return fmt.Errorf("%w: slot %d holds %q", ErrInvalidPalette, i, c)
		}
	}
	return nil
}

func (p Palette) String() string {
	return strings.Join(lo.Map(p[:], func(c color.Color, _ int) string {
		return string(c)
	}), " ")
}

// FromStrings parses exactly Size colors.
func FromStrings(values []string) (Palette, error) {
	var p Palette
	if len(values) != Size {
		return p, fmt.Errorf("%w: want %d colors, got %d", ErrInvalidPalette, Size, len(values))
	}

	for i, v := range values {
		c, err := color.Parse(v)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
		}
		p[i] = c
	}
	return p, nil
}

// Swatch is a palette color with its contrast against the white and black references.
type Swatch struct {
	Color   color.Color
	VsWhite float64
	VsBlack float64
}

// WhiteAA reports whether the color passes AA against white.
func (s Swatch) WhiteAA() bool {
	return color.MeetsAA(s.VsWhite)
}

// BlackAA reports whether the color passes AA against black.
func (s Swatch) BlackAA() bool {
	return color.MeetsAA(s.VsBlack)
}

// Swatches computes the contrast badges for every color, in palette order.
func (p Palette) Swatches() []Swatch {
	return lo.Map(p[:], func(c color.Color, _ int) Swatch {
		return Swatch{
			Color:   c,
			VsWhite: color.ContrastRatio(c, color.White),
			VsBlack: color.ContrastRatio(c, color.Black),
		}
	})
}
