package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/settings"
	"github.com/palettekit/palettekit/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// model is the bubbletea model. It is also the app's Renderer and Notifier:
// the app pushes views into it and Update reads them back when drawing.
type model struct {
	app    *app.App
	keymap *keymap

	helpC   help.Model
	filterC textinput.Model

	view      app.View
	favorites []favorites.Favorite
	theme     settings.Theme

	panel  bool
	cursor int

	width, height int
	notification  *notification
}

func newModel(deps app.Deps) *model {
	m := &model{
		keymap: newKeymap(),
		helpC:  help.New(),
		notification: &notification{
			lifetime: time.Duration(viper.GetInt(key.TUINotificationSeconds)) * time.Second,
		},
		width: util.TerminalWidth(80),
	}
	if m.notification.lifetime <= 0 {
		m.notification.lifetime = 2 * time.Second
	}

	m.filterC = textinput.New()
	m.filterC.Placeholder = "Filter favorites"
	m.filterC.Prompt = "/ "
	m.filterC.CharLimit = 40

	m.helpC.ShowAll = false

	deps.Renderer = m
	deps.Notifier = m
	m.app = app.New(deps)
	return m
}

func (m *model) Render(v app.View) {
	m.view = v
}

func (m *model) RenderFavorites(list []favorites.Favorite) {
	m.favorites = list
	m.clampCursor()
}

func (m *model) ApplyTheme(t settings.Theme) {
	m.theme = t
}

func (m *model) Notify(text string) {
	m.notification.set(text)
}

// visible returns the favorites matching the filter input.
func (m *model) visible() []favorites.Favorite {
	query := m.filterC.Value()
	if query == "" {
		return m.favorites
	}

	return lo.Filter(m.favorites, func(f favorites.Favorite, _ int) bool {
		return fuzzy.MatchFold(query, f.Fonts.Heading) ||
			fuzzy.MatchFold(query, f.Fonts.Body) ||
			fuzzy.MatchFold(query, f.CreatedAt)
	})
}

func (m *model) selected() (favorites.Favorite, bool) {
	list := m.visible()
	if len(list) == 0 {
		return favorites.Favorite{}, false
	}
	return list[m.cursor], true
}

func (m *model) clampCursor() {
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.visible())-1, 0))
}
