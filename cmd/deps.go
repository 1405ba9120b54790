package cmd

import (
	"fmt"
	"strings"

	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/output"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/storage"
	"github.com/palettekit/palettekit/where"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// openStorage resolves the configured storage backend.
func openStorage() storage.KV {
	kv, err := storage.New(viper.GetString(key.StorageBackend), where.Storage())
	handleErr(err)
	return kv
}

// previewOrientation reads the configured preview orientation. "random" and unknown values leave it unpinned.
func previewOrientation() mo.Option[palette.Orientation] {
	switch o := palette.Orientation(strings.ToLower(viper.GetString(key.GeneratePreviewOrientation))); o {
	case palette.Light, palette.Dark:
		return mo.Some(o)
	default:
		return mo.None[palette.Orientation]()
	}
}

// defaultMode reads the configured generation mode.
func defaultMode() (palette.Mode, error) {
	mode, err := palette.ParseMode(viper.GetString(key.GenerateDefaultMode))
	if err != nil {
		return "", fmt.Errorf("%s: %w", key.GenerateDefaultMode, err)
	}
	return mode, nil
}

// newDeps wires the app to the configured storage and the system clipboard and exports directory.
func newDeps() app.Deps {
	mode, err := defaultMode()
	handleErr(err)

	return app.Deps{
		KV:          openStorage(),
		Clipboard:   output.Clipboard{},
		Downloader:  output.Files{Dir: where.Exports()},
		Orientation: previewOrientation(),
		ShuffleMode: mode,
	}
}

func completionBackends(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return storage.Backends(), cobra.ShellCompDirectiveNoFileComp
}

func completionModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	modes := palette.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
