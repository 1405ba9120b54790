// Package icon renders UI symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode squares.
package icon

import (
	"github.com/palettekit/palettekit/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Pass
	Heart
	Palette
	Font
	Copy
	Export
	Theme
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "ok", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "", plain: "x", squares: "🟥"},
	Pass:    {emoji: "✔️", nerd: "", plain: "+", squares: "■"},
	Heart:   {emoji: "❤️", nerd: "", plain: "<3", squares: "♥"},
	Palette: {emoji: "🎨", nerd: "", plain: "#", squares: "▦"},
	Font:    {emoji: "🔤", nerd: "", plain: "Aa", squares: "▤"},
	Copy:    {emoji: "📋", nerd: "", plain: "=", squares: "▣"},
	Export:  {emoji: "📦", nerd: "", plain: "->", squares: "▨"},
	Theme:   {emoji: "🌗", nerd: "", plain: "*", squares: "◧"},
}

// Get retrieves the representation for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered icon i.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}
