package app

import (
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/settings"
)

// View is the plain data a Renderer needs to draw the live preview.
type View struct {
	Palette  palette.Palette
	Fonts    font.Pair
	Roles    palette.Roles
	Swatches []palette.Swatch
}

// Renderer draws the application. It owns all markup; the controller only hands it data.
type Renderer interface {
	Render(view View)
	RenderFavorites(list []favorites.Favorite)
	ApplyTheme(theme settings.Theme)
}

// Notifier shows transient, non-blocking messages.
type Notifier interface {
	Notify(message string)
}

// Clipboard accepts text to copy. Failures are expected (headless sessions, denied permissions).
type Clipboard interface {
	Copy(text string) error
}

// Downloader saves bytes under a filename and returns where they went.
type Downloader interface {
	Download(filename string, data []byte) (string, error)
}

type nopRenderer struct{}

func (nopRenderer) Render(View)                          {}
func (nopRenderer) RenderFavorites([]favorites.Favorite) {}
func (nopRenderer) ApplyTheme(settings.Theme)            {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
