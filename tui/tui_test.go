package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/settings"
	"github.com/palettekit/palettekit/storage"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type clipboard struct {
	copied []string
}

func (c *clipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

type downloads struct {
	files map[string][]byte
}

func (d *downloads) Download(name string, data []byte) (string, error) {
	d.files[name] = data
	return "/tmp/" + name, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel() (*model, *clipboard, *downloads) {
	viper.Set(key.IconsVariant, "plain")
	viper.Set(key.TUINotificationSeconds, 2)

	clip := &clipboard{}
	dl := &downloads{files: map[string][]byte{}}
	m := newModel(app.Deps{
		KV:         storage.NewMemory(),
		Random:     palette.NewSeeded(4),
		Clipboard:  clip,
		Downloader: dl,
	})
	return m, clip, dl
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModel(t *testing.T) {
	Convey("Given a fresh model", t, func() {
		m, clip, dl := newTestModel()

		Convey("It starts on the minimal palette in the light theme", func() {
			So(m.view.Palette, ShouldResemble, palette.Palette{"#ffffff", "#000000", "#f3f4f6", "#9ca3af", "#111827"})
			So(m.theme, ShouldEqual, settings.Light)
			So(m.favorites, ShouldBeEmpty)
			So(m.notification.lifetime, ShouldEqual, 2*time.Second)
		})

		Convey("Space generates a new palette", func() {
			before := m.view
			send(m, space)
			So(m.view, ShouldNotResemble, before)
		})

		Convey("s saves and schedules the notification clear", func() {
			cmd := send(m, runes("s"))
			So(m.favorites, ShouldHaveLength, 1)
			So(m.notification.text, ShouldEqual, app.MsgSaved)
			So(cmd, ShouldNotBeNil)

			Convey("A stale clear leaves a newer notification alone", func() {
				seq := m.notification.seq
				send(m, runes("c"))
				send(m, clearNotificationMsg{seq: seq})
				So(m.notification.text, ShouldStartWith, "Copied: ")

				send(m, clearNotificationMsg{seq: m.notification.seq})
				So(m.notification.text, ShouldBeEmpty)
			})
		})

		Convey("c copies the stylesheet", func() {
			send(m, runes("c"))
			So(clip.copied, ShouldHaveLength, 1)
			So(clip.copied[0], ShouldStartWith, ":root {")
		})

		Convey("Digits copy single swatches", func() {
			send(m, runes("2"), runes("5"))
			So(clip.copied, ShouldResemble, []string{"#000000", "#111827"})
		})

		Convey("e exports the JSON document", func() {
			send(m, runes("e"))
			So(dl.files, ShouldContainKey, "aesthetic-config.json")
			So(m.notification.text, ShouldEqual, app.MsgExported)
		})

		Convey("t toggles the theme", func() {
			send(m, runes("t"))
			So(m.theme, ShouldEqual, settings.Dark)
			send(m, runes("t"))
			So(m.theme, ShouldEqual, settings.Light)
		})

		Convey("q quits", func() {
			cmd := send(m, runes("q"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, tea.Quit())
		})

		Convey("The view shows the preview and notifications", func() {
			send(m, tea.WindowSizeMsg{Width: 160, Height: 50}, runes("s"))
			out := m.View()
			So(out, ShouldContainSubstring, "palettekit")
			So(out, ShouldContainSubstring, "#9ca3af")
			So(out, ShouldContainSubstring, app.MsgSaved)
		})
	})

	Convey("Given saved favorites and the open panel", t, func() {
		m, clip, _ := newTestModel()
		send(m, runes("s"), space, runes("s"))
		So(m.favorites, ShouldHaveLength, 2)
		newest := m.favorites[0]
		oldest := m.favorites[1]

		send(m, runes("f"))
		So(m.panel, ShouldBeTrue)
		So(m.View(), ShouldContainSubstring, "Favorites")

		Convey("enter loads the selected favorite", func() {
			send(m, runes("j"), enter)
			So(m.view.Palette, ShouldResemble, oldest.Palette)
			So(m.notification.text, ShouldEqual, app.MsgLoaded)
		})

		Convey("d deletes the selected favorite", func() {
			send(m, runes("d"))
			So(m.favorites, ShouldHaveLength, 1)
			So(m.favorites[0].ID, ShouldEqual, oldest.ID)
			So(m.cursor, ShouldEqual, 0)
		})

		Convey("While filtering, shortcuts are typed instead of run", func() {
			send(m, runes("/"))
			So(m.filterC.Focused(), ShouldBeTrue)

			send(m, runes("s"), runes("c"), space)
			So(m.favorites, ShouldHaveLength, 2)
			So(clip.copied, ShouldBeEmpty)
			So(m.filterC.Value(), ShouldEqual, "sc ")

			Convey("esc clears the filter and restores shortcuts", func() {
				send(m, esc)
				So(m.filterC.Focused(), ShouldBeFalse)
				So(m.filterC.Value(), ShouldBeEmpty)

				send(m, runes("c"))
				So(clip.copied, ShouldHaveLength, 1)
			})
		})

		Convey("The filter narrows the list", func() {
			send(m, runes("/"))
			for _, r := range strings.ToLower(newest.Fonts.Heading) {
				send(m, runes(string(r)))
			}
			send(m, enter)

			So(m.filterC.Focused(), ShouldBeFalse)
			visible := m.visible()
			So(len(visible), ShouldBeGreaterThanOrEqualTo, 1)
			So(visible[0].Fonts.Heading, ShouldEqual, newest.Fonts.Heading)
		})

		Convey("f closes the panel", func() {
			send(m, runes("f"))
			So(m.panel, ShouldBeFalse)
		})
	})
}
