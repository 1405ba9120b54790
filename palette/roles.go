package palette

import (
	"cmp"

	"github.com/palettekit/palettekit/color"
	"golang.org/x/exp/slices"
)

// Orientation is the light/dark layout chosen for a preview.
type Orientation string

const (
	Light Orientation = "light"
	Dark  Orientation = "dark"
)

// Roles maps a palette onto preview slots.
type Roles struct {
	Background  color.Color
	Text        color.Color
	Accent      color.Color
	Secondary   [2]color.Color
	Orientation Orientation
}

// Contrast is the ratio between the assigned text and background.
func (r Roles) Contrast() float64 {
	return color.ContrastRatio(r.Text, r.Background)
}

// ByLuminance returns the colors sorted brightest first. Ties keep palette order.
func ByLuminance(p Palette) Palette {
	sorted := p
	slices.SortStableFunc(sorted[:], func(a, b color.Color) int {
		return cmp.Compare(color.Luminance(b), color.Luminance(a))
	})
	return sorted
}

// AssignRoles picks preview roles, flipping a fresh coin for the orientation on every call.
//
// Background and text are always the brightest and darkest colors, so the preview uses
// the widest contrast the palette offers. Accent is the median-luminance color.
func AssignRoles(p Palette, rnd Random) Roles {
	orientation := Light
	if rnd.Intn(2) == 1 {
		orientation = Dark
	}
	return AssignRolesOriented(p, orientation)
}

// AssignRolesOriented is AssignRoles with a fixed orientation.
func AssignRolesOriented(p Palette, orientation Orientation) Roles {
	sorted := ByLuminance(p)
	brightest, darkest := sorted[0], sorted[Size-1]

	roles := Roles{
		Accent:      sorted[2],
		Secondary:   [2]color.Color{sorted[1], sorted[3]},
		Orientation: orientation,
	}

	if orientation == Dark {
		roles.Background, roles.Text = darkest, brightest
	} else {
		roles.Background, roles.Text = brightest, darkest
	}
	return roles
}
