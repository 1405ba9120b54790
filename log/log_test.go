package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and nothing is emitted", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			Warnf("ignored %d", 1)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Entries are written to today's log file", func() {
			With("favorite", 42).With("slot", "aesthetic.favorites").Warnf("dropped %s", "duplicate")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)

			text := string(data)
			So(strings.Contains(text, "dropped duplicate"), ShouldBeTrue)
			So(strings.Contains(text, "favorite=42"), ShouldBeTrue)
		})
	})
}
