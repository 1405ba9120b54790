package color

import "math"

// AAThreshold is the WCAG level AA minimum contrast for normal text.
const AAThreshold = 4.5

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c Color) float64 {
	r, g, b := c.RGB()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize converts an 8-bit sRGB channel to linear light.
func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1, 21].
// The result does not depend on argument order.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// MeetsAA reports whether ratio passes WCAG AA for normal text.
func MeetsAA(ratio float64) bool {
	return ratio >= AAThreshold
}

// Luminance is a method form of the package function.
func (c Color) Luminance() float64 {
	return Luminance(c)
}

// ContrastWith is a method form of ContrastRatio.
func (c Color) ContrastWith(other Color) float64 {
	return ContrastRatio(c, other)
}
