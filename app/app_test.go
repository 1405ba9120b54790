package app

import (
	"errors"
	"testing"
	"time"

	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/export"
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/settings"
	"github.com/palettekit/palettekit/storage"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

var minimal = palette.Palette{"#ffffff", "#000000", "#f3f4f6", "#9ca3af", "#111827"}

type recorder struct {
	views     []View
	favorites [][]favorites.Favorite
	themes    []settings.Theme
	notes     []string
}

func (r *recorder) Render(v View)                          { r.views = append(r.views, v) }
func (r *recorder) RenderFavorites(l []favorites.Favorite) { r.favorites = append(r.favorites, l) }
func (r *recorder) ApplyTheme(t settings.Theme)            { r.themes = append(r.themes, t) }
func (r *recorder) Notify(m string)                        { r.notes = append(r.notes, m) }

func (r *recorder) lastNote() string {
	if len(r.notes) == 0 {
		return ""
	}
	return r.notes[len(r.notes)-1]
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fakeDownloader struct {
	name string
	data []byte
}

func (d *fakeDownloader) Download(filename string, data []byte) (string, error) {
	d.name, d.data = filename, data
	return "/exports/" + filename, nil
}

// cycle returns draws from values in turn.
type cycle struct {
	values []int
	i      int
}

func (c *cycle) Intn(n int) int {
	v := c.values[c.i%len(c.values)]
	c.i++
	return v % n
}

func newTestApp(kv storage.KV, rnd palette.Random) (*App, *recorder, *fakeClipboard, *fakeDownloader) {
	rec := &recorder{}
	clip := &fakeClipboard{}
	dl := &fakeDownloader{}
	a := New(Deps{
		KV:         kv,
		Random:     rnd,
		Renderer:   rec,
		Notifier:   rec,
		Clipboard:  clip,
		Downloader: dl,
		Clock:      func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	return a, rec, clip, dl
}

func TestStartup(t *testing.T) {
	Convey("Starting with empty storage", t, func() {
		a, rec, _, _ := newTestApp(storage.NewMemory(), palette.NewSeeded(1))

		Convey("Shows the minimal palette and default fonts", func() {
			So(a.Palette(), ShouldResemble, minimal)
			So(a.Fonts(), ShouldResemble, font.Pair{Heading: "Space Grotesk", Body: "Inter"})
			So(rec.views, ShouldHaveLength, 1)
			So(rec.views[0].Swatches, ShouldHaveLength, palette.Size)
		})

		Convey("Has no favorites and the light theme", func() {
			So(a.Favorites(), ShouldBeEmpty)
			So(a.Theme(), ShouldEqual, settings.Light)
			So(rec.themes, ShouldResemble, []settings.Theme{settings.Light})
		})

		Convey("Save then delete round-trips through the store", func() {
			fav := a.SaveFavorite()
			So(rec.lastNote(), ShouldEqual, MsgSaved)
			So(a.Favorites(), ShouldHaveLength, 1)
			So(a.Favorites()[0].Palette, ShouldResemble, minimal)
			So(a.Favorites()[0].Fonts, ShouldResemble, font.Default)

			a.DeleteFavorite(fav.ID)
			So(a.Favorites(), ShouldBeEmpty)
		})
	})

	Convey("Starting with persisted state", t, func() {
		kv := storage.NewMemory()
		So(settings.Save(kv, settings.Settings{Theme: settings.Dark}), ShouldBeNil)

		first, _, _, _ := newTestApp(kv, palette.NewSeeded(1))
		_ = first.Generate(palette.ModeBold)
		saved := first.SaveFavorite()

		second, rec, _, _ := newTestApp(kv, palette.NewSeeded(2))

		So(second.Theme(), ShouldEqual, settings.Dark)
		So(second.Favorites(), ShouldHaveLength, 1)
		So(second.Favorites()[0].ID, ShouldEqual, saved.ID)
		So(rec.favorites[0], ShouldHaveLength, 1)
		So(second.Palette(), ShouldResemble, minimal)
	})

	Convey("Starting with malformed storage", t, func() {
		kv := storage.NewMemory()
		So(kv.Set(storage.FavoritesKey, `{{{`), ShouldBeNil)
		So(kv.Set(storage.SettingsKey, `"dark"`), ShouldBeNil)

		a, _, _, _ := newTestApp(kv, palette.NewSeeded(1))
		So(a.Favorites(), ShouldBeEmpty)
		So(a.Theme(), ShouldEqual, settings.Light)
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given an app", t, func() {
		a, rec, _, _ := newTestApp(storage.NewMemory(), palette.NewSeeded(11))

		Convey("Generate replaces the palette and renders", func() {
			So(a.Generate(palette.ModeRandom), ShouldBeNil)
			So(rec.views, ShouldHaveLength, 2)
			So(rec.views[1].Palette, ShouldResemble, a.Palette())
			So(a.Palette().Validate(), ShouldBeNil)
		})

		Convey("Unknown modes leave the state alone", func() {
			err := a.Generate(palette.Mode("vaporwave"))
			So(errors.Is(err, palette.ErrUnknownMode), ShouldBeTrue)
			So(a.Palette(), ShouldResemble, minimal)
		})

		Convey("Use renders an imported configuration", func() {
			p := palette.Palette{"#0f172a", "#f8fafc", "#334155", "#38bdf8", "#0ea5e9"}
			a.Use(p, font.At(8))
			So(a.View().Palette, ShouldResemble, p)
			So(a.View().Fonts, ShouldResemble, font.At(8))
		})
	})

	Convey("Refresh re-rolls the orientation every time", t, func() {
		rnd := &cycle{values: []int{0, 1}}
		a, rec, _, _ := newTestApp(storage.NewMemory(), rnd)

		a.Refresh()
		a.Refresh()

		So(rec.views[0].Roles.Orientation, ShouldEqual, palette.Light)
		So(rec.views[1].Roles.Orientation, ShouldEqual, palette.Dark)
		So(rec.views[2].Roles.Orientation, ShouldEqual, palette.Light)
		So(rec.views[1].Roles.Background, ShouldEqual, color.Black)
		So(rec.views[1].Roles.Accent, ShouldEqual, color.Color("#9ca3af"))
	})

	Convey("A pinned orientation is honoured", t, func() {
		rec := &recorder{}
		a := New(Deps{
			Renderer:    rec,
			Random:      &cycle{values: []int{0}},
			Orientation: mo.Some(palette.Dark),
		})
		a.Refresh()

		for _, v := range rec.views {
			So(v.Roles.Orientation, ShouldEqual, palette.Dark)
		}
	})
}

func TestFavorites(t *testing.T) {
	Convey("Given a saved favorite", t, func() {
		a, rec, _, _ := newTestApp(storage.NewMemory(), palette.NewSeeded(3))
		fav := a.SaveFavorite()
		So(a.Generate(palette.ModeRandom), ShouldBeNil)

		Convey("Loading it restores the palette and fonts", func() {
			So(a.LoadFavorite(fav.ID), ShouldBeTrue)
			So(a.Palette(), ShouldResemble, minimal)
			So(a.Fonts(), ShouldResemble, font.Default)
			So(rec.lastNote(), ShouldEqual, MsgLoaded)

			Convey("Later changes to the live state do not reach the favorite", func() {
				So(a.Generate(palette.ModeBold), ShouldBeNil)
				So(a.Favorites()[0].Palette, ShouldResemble, minimal)
			})
		})

		Convey("Loading an unknown id changes nothing", func() {
			before := a.Palette()
			So(a.LoadFavorite(fav.ID+100), ShouldBeFalse)
			So(a.Palette(), ShouldResemble, before)
			So(rec.lastNote(), ShouldEqual, MsgNotFound)
		})

		Convey("Deleting an unknown id is silent", func() {
			notes := len(rec.notes)
			a.DeleteFavorite(fav.ID + 100)
			So(a.Favorites(), ShouldHaveLength, 1)
			So(rec.notes, ShouldHaveLength, notes)
		})

		Convey("Each mutation re-renders the favorites list", func() {
			renders := len(rec.favorites)
			a.DeleteFavorite(fav.ID)
			So(rec.favorites, ShouldHaveLength, renders+1)
			So(rec.favorites[renders], ShouldBeEmpty)
		})
	})
}

func TestTheme(t *testing.T) {
	Convey("ToggleTheme flips, applies and persists", t, func() {
		kv := storage.NewMemory()
		a, rec, _, _ := newTestApp(kv, palette.NewSeeded(1))

		So(a.ToggleTheme(), ShouldEqual, settings.Dark)
		So(rec.themes[len(rec.themes)-1], ShouldEqual, settings.Dark)
		So(settings.Load(kv).Theme, ShouldEqual, settings.Dark)

		So(a.ToggleTheme(), ShouldEqual, settings.Light)
		So(settings.Load(kv).Theme, ShouldEqual, settings.Light)
	})
}

func TestExports(t *testing.T) {
	Convey("Given an app showing the minimal palette", t, func() {
		a, rec, clip, dl := newTestApp(storage.NewMemory(), palette.NewSeeded(1))

		Convey("CopyStylesheet puts the CSS block on the clipboard", func() {
			So(a.CopyStylesheet(), ShouldBeTrue)
			So(clip.copied, ShouldResemble, []string{export.Stylesheet(minimal, font.Default)})
			So(rec.lastNote(), ShouldStartWith, "Copied: ")
		})

		Convey("CopySwatch copies one hex code", func() {
			So(a.CopySwatch(4), ShouldBeTrue)
			So(clip.copied, ShouldResemble, []string{"#111827"})
			So(a.CopySwatch(5), ShouldBeFalse)
		})

		Convey("Clipboard failures are reported, not raised", func() {
			clip.err = errors.New("permission denied")
			So(a.CopyStylesheet(), ShouldBeFalse)
			So(rec.lastNote(), ShouldEqual, MsgCopyFailed)
		})

		Convey("ExportJSON downloads a decodable document", func() {
			path, ok := a.ExportJSON()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, "/exports/aesthetic-config.json")
			So(dl.name, ShouldEqual, export.Filename)
			So(rec.lastNote(), ShouldEqual, MsgExported)

			doc, err := export.Decode(dl.data)
			So(err, ShouldBeNil)
			So(doc.ExportedAt, ShouldEqual, "2026-05-01T12:00:00.000Z")
			cfg, err := doc.Config()
			So(err, ShouldBeNil)
			So(cfg.Palette, ShouldResemble, minimal)
		})
	})

	Convey("Without output collaborators", t, func() {
		rec := &recorder{}
		a := New(Deps{Notifier: rec})

		So(a.CopyStylesheet(), ShouldBeFalse)
		_, ok := a.ExportJSON()
		So(ok, ShouldBeFalse)
	})
}

func TestHandleKey(t *testing.T) {
	Convey("Given an app", t, func() {
		a, rec, clip, _ := newTestApp(storage.NewMemory(), palette.NewSeeded(8))

		Convey("Space generates a new palette", func() {
			So(a.HandleKey("space", false), ShouldBeTrue)
			So(rec.views, ShouldHaveLength, 2)
		})

		Convey("s saves a favorite", func() {
			So(a.HandleKey("s", false), ShouldBeTrue)
			So(a.Favorites(), ShouldHaveLength, 1)
		})

		Convey("c copies the stylesheet", func() {
			So(a.HandleKey("c", false), ShouldBeTrue)
			So(clip.copied, ShouldHaveLength, 1)
		})

		Convey("Shortcuts are suppressed while editing", func() {
			for _, k := range []string{"space", "s", "c"} {
				So(a.HandleKey(k, true), ShouldBeFalse)
			}
			So(rec.views, ShouldHaveLength, 1)
			So(a.Favorites(), ShouldBeEmpty)
			So(clip.copied, ShouldBeEmpty)
		})

		Convey("Other keys are not consumed", func() {
			So(a.HandleKey("x", false), ShouldBeFalse)
		})
	})
}
