// Package app is the controller that owns the live configuration and wires the core
// (generation, roles, favorites, exports) to its presentation and output collaborators.
package app

import (
	"errors"
	"time"

	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/export"
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/log"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/settings"
	"github.com/palettekit/palettekit/storage"
	"github.com/samber/mo"
)

// Notification texts.
const (
	MsgSaved       = "Saved to Favorites!"
	MsgLoaded      = "Loaded configuration"
	MsgNotFound    = "Favorite not found"
	MsgExported    = "JSON Exported"
	MsgCopyFailed  = "Copy failed"
	MsgSaveFailed  = "Could not save favorites"
	MsgThemeFailed = "Could not save theme"
)

var (
	errNoClipboard  = errors.New("no clipboard available")
	errNoDownloader = errors.New("no download target available")
)

// Deps are the collaborators of an App. Nil presentation collaborators default to no-ops.
type Deps struct {
	KV         storage.KV
	Random     palette.Random
	Renderer   Renderer
	Notifier   Notifier
	Clipboard  Clipboard
	Downloader Downloader
	Clock      func() time.Time

	// Orientation pins the preview layout; when absent a coin is flipped on every refresh.
	Orientation mo.Option[palette.Orientation]
	// ShuffleMode is the mode used by the generate key.
	ShuffleMode palette.Mode
}

// State is the live, single-instance application state.
type State struct {
	Palette   palette.Palette
	Fonts     font.Pair
	Favorites *favorites.Store
	Theme     settings.Theme
}

// App is the controller. Operations run to completion; it is not safe for concurrent use.
type App struct {
	deps  Deps
	state State
	view  View
}

// New restores persisted favorites and settings, applies the theme and shows the minimal palette.
func New(deps Deps) *App {
	if deps.KV == nil {
		deps.KV = storage.NewMemory()
	}
	if deps.Random == nil {
		deps.Random = palette.NewRandom()
	}
	if deps.Renderer == nil {
		deps.Renderer = nopRenderer{}
	}
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.ShuffleMode == "" {
		deps.ShuffleMode = palette.ModeRandom
	}

	a := &App{deps: deps}
	a.state.Favorites = favorites.Open(deps.KV, favorites.WithClock(deps.Clock))
	a.state.Theme = settings.Load(deps.KV).Theme

	a.deps.Renderer.RenderFavorites(a.state.Favorites.List())
	a.deps.Renderer.ApplyTheme(a.state.Theme)

	// The minimal mode never fails.
	_ = a.Generate(palette.ModeMinimal)
	return a
}

// Palette returns a copy of the live palette.
func (a *App) Palette() palette.Palette {
	return a.state.Palette
}

// Fonts returns the live font pair.
func (a *App) Fonts() font.Pair {
	return a.state.Fonts
}

// Theme returns the display theme.
func (a *App) Theme() settings.Theme {
	return a.state.Theme
}

// Favorites lists saved favorites, newest first.
func (a *App) Favorites() []favorites.Favorite {
	return a.state.Favorites.List()
}

// View returns the last rendered view.
func (a *App) View() View {
	return a.view
}

// Generate replaces the live configuration using mode and refreshes the preview.
func (a *App) Generate(mode palette.Mode) error {
	p, f, err := palette.Generate(mode, a.deps.Random)
	if err != nil {
		return err
	}

	a.state.Palette, a.state.Fonts = p, f
	log.With("mode", mode).Debugf("generated %s with %s", p, f)
	a.Refresh()
	return nil
}

// Shuffle generates with the configured shuffle mode.
func (a *App) Shuffle() {
	if err := a.Generate(a.deps.ShuffleMode); err != nil {
		log.Errorf("shuffle: %s", err)
		a.deps.Notifier.Notify(err.Error())
	}
}

// Use replaces the live configuration with copies of p and f, e.g. from an imported export.
func (a *App) Use(p palette.Palette, f font.Pair) {
	a.state.Palette, a.state.Fonts = p, f
	a.Refresh()
}

// Refresh reassigns preview roles and renders. Unless pinned, the orientation is re-rolled each time.
func (a *App) Refresh() {
	var roles palette.Roles
	if orientation, ok := a.deps.Orientation.Get(); ok {
		roles = palette.AssignRolesOriented(a.state.Palette, orientation)
	} else {
		roles = palette.AssignRoles(a.state.Palette, a.deps.Random)
	}

	a.view = View{
		Palette:  a.state.Palette,
		Fonts:    a.state.Fonts,
		Roles:    roles,
		Swatches: a.state.Palette.Swatches(),
	}
	a.deps.Renderer.Render(a.view)
}

// SaveFavorite snapshots the live configuration.
func (a *App) SaveFavorite() favorites.Favorite {
	fav, err := a.state.Favorites.Save(a.state.Palette, a.state.Fonts)
	a.deps.Renderer.RenderFavorites(a.state.Favorites.List())

	if err != nil {
		log.With("id", fav.ID).Errorf("%s", err)
		a.deps.Notifier.Notify(MsgSaveFailed)
		return fav
	}

	a.deps.Notifier.Notify(MsgSaved)
	return fav
}

// DeleteFavorite removes a favorite; unknown ids are ignored.
func (a *App) DeleteFavorite(id int64) {
	err := a.state.Favorites.Delete(id)
	a.deps.Renderer.RenderFavorites(a.state.Favorites.List())

	if err != nil {
		log.With("id", id).Errorf("%s", err)
		a.deps.Notifier.Notify(MsgSaveFailed)
	}
}

// LoadFavorite makes a favorite the live configuration. It reports false, changing nothing, for unknown ids.
func (a *App) LoadFavorite(id int64) bool {
	fav, ok := a.state.Favorites.Get(id).Get()
	if !ok {
		a.deps.Notifier.Notify(MsgNotFound)
		return false
	}

	a.Use(fav.Palette, fav.Fonts)
	a.deps.Notifier.Notify(MsgLoaded)
	return true
}

// ToggleTheme flips and persists the display theme.
func (a *App) ToggleTheme() settings.Theme {
	a.state.Theme = a.state.Theme.Toggle()
	a.deps.Renderer.ApplyTheme(a.state.Theme)

	if err := settings.Save(a.deps.KV, settings.Settings{Theme: a.state.Theme}); err != nil {
		log.Errorf("%s", err)
		a.deps.Notifier.Notify(MsgThemeFailed)
	}
	return a.state.Theme
}

// Stylesheet renders the live configuration as CSS variables.
func (a *App) Stylesheet() string {
	return export.Stylesheet(a.state.Palette, a.state.Fonts)
}

// Document builds the JSON export of the live configuration.
func (a *App) Document() export.Document {
	return export.NewDocument(a.state.Palette, a.state.Fonts, a.deps.Clock())
}

// CopyStylesheet puts the CSS variables on the clipboard.
func (a *App) CopyStylesheet() bool {
	return a.copy(a.Stylesheet())
}

// CopyColor puts a single hex code on the clipboard.
func (a *App) CopyColor(c color.Color) bool {
	return a.copy(string(c))
}

// CopySwatch copies the palette color at index i.
func (a *App) CopySwatch(i int) bool {
	if i < 0 || i >= palette.Size {
		return false
	}
	return a.CopyColor(a.state.Palette[i])
}

func (a *App) copy(text string) bool {
	err := errNoClipboard
	if a.deps.Clipboard != nil {
		err = a.deps.Clipboard.Copy(text)
	}

	if err != nil {
		log.Warnf("copy failed: %s", err)
		a.deps.Notifier.Notify(MsgCopyFailed)
		return false
	}

	a.deps.Notifier.Notify("Copied: " + text)
	return true
}

// ExportJSON downloads the JSON document and returns where it was written.
func (a *App) ExportJSON() (string, bool) {
	data, err := a.Document().Encode()
	if err == nil && a.deps.Downloader == nil {
		err = errNoDownloader
	}

	var path string
	if err == nil {
		path, err = a.deps.Downloader.Download(export.Filename, data)
	}

	if err != nil {
		log.Warnf("export failed: %s", err)
		a.deps.Notifier.Notify("Export failed: " + err.Error())
		return "", false
	}

	a.deps.Notifier.Notify(MsgExported)
	return path, true
}
