package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	quit, forceQuit,
	generate, save, copyCSS, export, theme,
	favorites, load, remove, filter, back,
	up, down,
	swatch,
	showHelp key.Binding

	panel bool
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		generate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "generate"),
		),
		save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		copyCSS: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export json"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		favorites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites"),
		),
		load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		swatch: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "copy color"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	if k.panel {
		return []key.Binding{k.load, k.remove, k.filter, k.back}
	}
	return []key.Binding{k.generate, k.save, k.copyCSS, k.favorites, k.showHelp}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.generate, k.save, k.copyCSS, k.export},
		{k.theme, k.swatch, k.favorites, k.quit},
		{k.load, k.remove, k.filter, k.up, k.down, k.back},
	}
}
