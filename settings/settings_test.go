package settings

import (
	"testing"

	"github.com/palettekit/palettekit/storage"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTheme(t *testing.T) {
	Convey("Theme", t, func() {
		So(Light.Toggle(), ShouldEqual, Dark)
		So(Dark.Toggle(), ShouldEqual, Light)
		So(Theme("sepia").Valid(), ShouldBeFalse)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a store", t, func() {
		kv := storage.NewMemory()

		Convey("An absent slot yields the light theme", func() {
			So(Load(kv), ShouldResemble, Settings{Theme: Light})
		})

		Convey("A saved theme round-trips", func() {
			So(Save(kv, Settings{Theme: Dark}), ShouldBeNil)

			raw, _, _ := kv.Get(storage.SettingsKey)
			So(raw, ShouldEqual, `{"theme":"dark"}`)
			So(Load(kv).Theme, ShouldEqual, Dark)
		})

		Convey("Malformed data falls back to the default", func() {
			for _, raw := range []string{`{`, `[]`, `{"theme":"sepia"}`, `{"theme":3}`} {
				So(kv.Set(storage.SettingsKey, raw), ShouldBeNil)
				So(Load(kv), ShouldResemble, Default())
			}
		})
	})
}
