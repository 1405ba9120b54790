package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/preview"
	"github.com/palettekit/palettekit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("mode", "m", "", "Generation mode (random, minimal, playful, bold)")
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("mode", completionModes))
	generateCmd.Flags().StringP("font", "f", "", "Heading font of the pair to use instead of a random one")
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("font", completionFonts))
	generateCmd.Flags().Int64P("seed", "s", 0, "Seed for reproducible output")
	generateCmd.Flags().BoolP("json", "j", false, "Print the JSON export document")
	generateCmd.Flags().BoolP("css", "c", false, "Print the stylesheet variables")
	generateCmd.Flags().Bool("save", false, "Save the result to favorites")

	generateCmd.MarkFlagsMutuallyExclusive("json", "css")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a palette and font pairing",
	Long: heredoc.Doc(`
		Generate a five-color palette and a font pairing.

		The random mode draws five arbitrary colors and makes no attempt at
		harmony or readability; check the contrast badges before using them.
	`),
	Example: heredoc.Doc(`
		palettekit generate --mode bold
		palettekit generate --seed 42 --css
		palettekit generate --font "Lora" --save
	`),
	Aliases: []string{"gen"},
	Run: func(cmd *cobra.Command, args []string) {
		deps := newDeps()
		if cmd.Flags().Changed("seed") {
			deps.Random = palette.NewSeeded(lo.Must(cmd.Flags().GetInt64("seed")))
		}

		mode := deps.ShuffleMode
		if name := lo.Must(cmd.Flags().GetString("mode")); name != "" {
			var err error
			mode, err = palette.ParseMode(name)
			handleErr(err)
		}

		a := app.New(deps)
		handleErr(a.Generate(mode))

		if heading := lo.Must(cmd.Flags().GetString("font")); heading != "" {
			pair, err := font.Resolve(heading)
			handleErr(err)
			a.Use(a.Palette(), pair)
		}

		if lo.Must(cmd.Flags().GetBool("save")) {
			fav := a.SaveFavorite()
			cmd.PrintErrf("saved favorite %d\n", fav.ID)
		}

		printConfiguration(cmd, a)
	},
}

// printConfiguration writes the live configuration in the format selected by the --json and --css flags.
func printConfiguration(cmd *cobra.Command, a *app.App) {
	switch {
	case lo.Must(cmd.Flags().GetBool("json")):
		data, err := a.Document().Encode()
		handleErr(err)
		writeData(cmd.OutOrStdout(), data)
	case lo.Must(cmd.Flags().GetBool("css")):
		cmd.Println(a.Stylesheet())
	default:
		cmd.Println(preview.View(a.View(), util.TerminalWidth(100)))
	}
}

func completionFonts(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(font.Filter(toComplete), func(e font.Entry, _ int) string {
		return e.Heading
	}), cobra.ShellCompDirectiveNoFileComp
}
