package cmd

import (
	"os"

	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/open"
	"github.com/palettekit/palettekit/style"
	"github.com/palettekit/palettekit/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Storage", where.Storage, "storage", mo.Some("s")},
	{"Exports", where.Exports, "exports", mo.Some("e")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.Flags().BoolP("open", "o", false, "Open the selected path with the default application")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths of the config, storage, exports and logs",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				if lo.Must(cmd.Flags().GetBool("open")) {
					handleErr(open.Start(n.where()))
				}
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
