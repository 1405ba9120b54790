package palette

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/font"
	"github.com/samber/lo"
)

// Random is the source of every random draw: colors, font picks and the preview coin flip.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a time-seeded source.
func NewRandom() Random {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a reproducible source.
func NewSeeded(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode selects how Generate builds a palette.
type Mode string

const (
	// ModeRandom draws five independent colors and a random font pair.
	ModeRandom Mode = "random"
	// ModeMinimal is the fixed startup palette with the default font pair.
	ModeMinimal Mode = "minimal"
	// ModePlayful is a curated pink/red preset with a random font pair.
	ModePlayful Mode = "playful"
	// ModeBold is a curated dark-blue preset with a random font pair.
	ModeBold Mode = "bold"
)

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{ModeRandom, ModeMinimal, ModePlayful, ModeBold}
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Modes(), m) {
		return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
	return m, nil
}

var presets = map[Mode]Palette{
	ModeMinimal: {"#ffffff", "#000000", "#f3f4f6", "#9ca3af", "#111827"},
	ModePlayful: {"#fff1f2", "#881337", "#fda4af", "#f43f5e", "#4c0519"},
	ModeBold:    {"#0f172a", "#f8fafc", "#334155", "#38bdf8", "#0ea5e9"},
}

// Preset returns the curated palette for mode, if there is one.
func Preset(mode Mode) (Palette, bool) {
	p, ok := presets[mode]
	return p, ok
}

// Generate builds a palette and font pair for mode.
//
// Random colors are drawn independently and are not adjusted afterwards:
// two draws may be near-identical or unreadable against each other.
func Generate(mode Mode, rnd Random) (Palette, font.Pair, error) {
	if mode == ModeRandom {
		var p Palette
		for i := range p {
			p[i] = RandomColor(rnd)
		}
		return p, randomPair(rnd), nil
	}

	p, ok := Preset(mode)
	if !ok {
		return Palette{}, font.Pair{}, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	if mode == ModeMinimal {
		return p, font.Default, nil
	}
	return p, randomPair(rnd), nil
}

// RandomColor draws a uniformly distributed 24-bit color.
func RandomColor(rnd Random) color.Color {
	return color.FromUint24(uint32(rnd.Intn(1 << 24)))
}

func randomPair(rnd Random) font.Pair {
	return font.At(rnd.Intn(font.Len()))
}
