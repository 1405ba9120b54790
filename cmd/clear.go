package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/storage"
	"github.com/palettekit/palettekit/util"
	"github.com/palettekit/palettekit/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is something the clear command can wipe.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"favorites", "favorites", mo.Some("f"), func() error { return clearSlot(storage.FavoritesKey) }},
	{"settings", "settings", mo.Some("s"), func() error { return clearSlot(storage.SettingsKey) }},
	{"exports", "exports", mo.Some("e"), func() error { return util.Delete(where.Exports()) }},
	{"logs", "logs", mo.Some("l"), func() error { return util.Delete(where.Logs()) }},
}

// clearSlot drops a storage slot, or blanks it on backends that cannot delete.
func clearSlot(slot string) error {
	kv := openStorage()
	if d, ok := kv.(storage.Deleter); ok {
		return d.Delete(slot)
	}
	return kv.Set(slot, "")
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear saved favorites, settings, exports or logs",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) && util.IsTerminal() {
			names := lo.Map(selected, func(t clearTarget, _ int) string { return t.name })
			var ok bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", util.Enumerate(names)),
			}, &ok))
			if !ok {
				return
			}
		}

		for _, target := range selected {
			handleErr(target.clear())
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), target.name)
		}
	},
}
