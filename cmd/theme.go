package cmd

import (
	"fmt"

	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/settings"
	"github.com/palettekit/palettekit/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:       "theme [toggle|light|dark]",
	Short:     "Show or change the display theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle", string(settings.Light), string(settings.Dark)},
	Run: func(cmd *cobra.Command, args []string) {
		deps := newDeps()
		a := app.New(deps)

		if len(args) == 0 {
			cmd.Println(a.Theme())
			return
		}

		switch want := settings.Theme(args[0]); {
		case args[0] == "toggle":
			a.ToggleTheme()
		case want.Valid() && want != a.Theme():
			a.ToggleTheme()
		}

		// ToggleTheme reports write failures through the notifier, so read the slot back.
		if saved := settings.Load(deps.KV).Theme; saved != a.Theme() {
			handleErr(fmt.Errorf("could not save theme %s", a.Theme()))
		}

		cmd.Printf("%s theme set to %s\n", style.Fg(color.Green)(icon.Get(icon.Theme)), style.Fg(color.Yellow)(string(a.Theme())))
	},
}
