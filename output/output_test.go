package output

import (
	"path/filepath"
	"testing"

	"github.com/palettekit/palettekit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFiles(t *testing.T) {
	Convey("Given a download directory", t, func() {
		files := Files{Dir: "/exports"}

		Convey("Download writes the bytes under the directory", func() {
			path, err := files.Download("aesthetic-config.json", []byte(`{}`))
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("/exports", "aesthetic-config.json"))

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{}`)
		})

		Convey("Path separators cannot escape the directory", func() {
			path, err := files.Download("../../etc/passwd.json", []byte(`{}`))
			So(err, ShouldBeNil)
			So(filepath.Dir(path), ShouldEqual, "/exports")
		})

		Convey("An empty name is rejected", func() {
			_, err := files.Download("///", nil)
			So(err, ShouldNotBeNil)
		})
	})
}
