package util

import (
	"testing"

	"github.com/palettekit/palettekit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.json"), ShouldEqual, "file_name_.json")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my  palette.json"), ShouldEqual, "my_palette.json")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-aesthetic-config-"), ShouldEqual, "aesthetic-config")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "favorite", "favorites"), ShouldEqual, "1 favorite")
		So(Quantify(0, "favorite", "favorites"), ShouldEqual, "0 favorites")
	})
}

func TestEnumerate(t *testing.T) {
	Convey("Enumerate", t, func() {
		So(Enumerate(nil), ShouldBeEmpty)
		So(Enumerate([]string{"logs"}), ShouldEqual, "logs")
		So(Enumerate([]string{"favorites", "settings", "logs"}), ShouldEqual, "favorites, settings and logs")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 1, 3), ShouldEqual, 3)
		So(Clamp(-1, 0, 3), ShouldEqual, 0)
		So(Clamp(2.5, 0.0, 3.0), ShouldEqual, 2.5)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/exports/nested", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/exports/nested/a.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Removes a single file", func() {
			So(Delete("/tmp/exports/nested/a.json"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/exports/nested/a.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory tree", func() {
			So(Delete("/tmp/exports"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/exports")
			So(exists, ShouldBeFalse)
		})

		Convey("Fails for missing paths", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}
