package cmd

import (
	"encoding/json"
	"strconv"

	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fontsCmd)
	fontsCmd.Flags().StringP("filter", "f", "", "Fuzzy filter on font names and categories")
	fontsCmd.Flags().BoolP("json", "j", false, "Print the pairs as JSON")
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the curated font pairings",
	Run: func(cmd *cobra.Command, args []string) {
		entries := font.Filter(lo.Must(cmd.Flags().GetString("filter")))

		if lo.Must(cmd.Flags().GetBool("json")) {
			data, err := json.MarshalIndent(lo.Map(entries, func(e font.Entry, _ int) font.Pair {
				return e.Pair
			}), "", "  ")
			handleErr(err)
			writeData(cmd.OutOrStdout(), data)
			return
		}

		headingWidth := lo.Max(lo.Map(entries, func(e font.Entry, _ int) int { return len(e.Heading) }))
		for i, e := range entries {
			cmd.Printf("%s %-*s %s %s\n",
				style.Faint(strconv.Itoa(i+1)+"."),
				headingWidth,
				e.Heading,
				style.Fg(color.Cyan)(e.Body),
				style.Faint("("+e.Category+")"),
			)
		}
	},
}
