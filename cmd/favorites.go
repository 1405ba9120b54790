package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/MakeNowJust/heredoc"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/export"
	"github.com/palettekit/palettekit/favorites"
	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/font"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/preview"
	"github.com/palettekit/palettekit/style"
	"github.com/palettekit/palettekit/util"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("favorite not found")

func init() {
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Short:   "Manage saved palettes",
	Aliases: []string{"fav"},
}

// favoriteArg resolves the favorite named by args[0], or asks for one interactively when no id is given.
func favoriteArg(a *app.App, args []string) favorites.Favorite {
	list := a.Favorites()

	if len(args) == 0 {
		if len(list) == 0 {
			handleErr(errors.New("no favorites saved yet"))
		}
		if !util.IsTerminal() {
			handleErr(errors.New("a favorite id is required"))
		}

		options := lo.Map(list, func(f favorites.Favorite, _ int) string { return f.String() })
		var choice int
		handleErr(survey.AskOne(&survey.Select{
			Message: "Favorite:",
			Options: options,
		}, &choice))
		return list[choice]
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		handleErr(fmt.Errorf("invalid favorite id %q", args[0]))
	}

	fav, ok := lo.Find(list, func(f favorites.Favorite) bool { return f.ID == id })
	if !ok {
		handleErr(fmt.Errorf("%w: %d", errNotFound, id))
	}
	return fav
}

func completionFavorites(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	a := app.New(newDeps())
	return lo.Map(a.Favorites(), func(f favorites.Favorite, _ int) string {
		return fmt.Sprintf("%d\t%s", f.ID, f.Fonts)
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesListCmd.Flags().BoolP("json", "j", false, "Print the favorites as JSON")
}

var favoritesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List saved favorites, newest first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		list := app.New(newDeps()).Favorites()

		if lo.Must(cmd.Flags().GetBool("json")) {
			data, err := json.MarshalIndent(list, "", "  ")
			handleErr(err)
			writeData(cmd.OutOrStdout(), data)
			return
		}

		if len(list) == 0 {
			cmd.Println(style.Faint("No favorites saved yet"))
			return
		}

		width := util.TerminalWidth(100)
		for _, f := range list {
			cmd.Printf("%s  %s\n", style.Fg(color.Yellow)(strconv.FormatInt(f.ID, 10)), preview.Favorite(f, width-16))
		}
		cmd.Println(style.Faint(util.Quantify(len(list), "favorite", "favorites")))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesSaveCmd)
	favoritesSaveCmd.Flags().StringP("mode", "m", "", "Generate with this mode when no colors are given")
	lo.Must0(favoritesSaveCmd.RegisterFlagCompletionFunc("mode", completionModes))
	favoritesSaveCmd.Flags().StringP("font", "f", "", "Heading font of the pair to save")
	lo.Must0(favoritesSaveCmd.RegisterFlagCompletionFunc("font", completionFonts))
}

var favoritesSaveCmd = &cobra.Command{
	Use:   "save [color...]",
	Short: "Save five colors, or a freshly generated palette, to favorites",
	Example: heredoc.Doc(`
		palettekit favorites save '#0f172a' '#f8fafc' '#334155' '#38bdf8' '#0ea5e9' --font Syne
		palettekit favorites save --mode playful
	`),
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != palette.Size {
			return fmt.Errorf("expected %d colors, got %d", palette.Size, len(args))
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		deps := newDeps()
		a := app.New(deps)

		if len(args) == palette.Size {
			p, err := palette.FromStrings(args)
			handleErr(err)
			a.Use(p, a.Fonts())
		} else {
			mode := deps.ShuffleMode
			if name := lo.Must(cmd.Flags().GetString("mode")); name != "" {
				var err error
				mode, err = palette.ParseMode(name)
				handleErr(err)
			}
			handleErr(a.Generate(mode))
		}

		if heading := lo.Must(cmd.Flags().GetString("font")); heading != "" {
			pair, err := font.Resolve(heading)
			handleErr(err)
			a.Use(a.Palette(), pair)
		}

		fav := a.SaveFavorite()
		cmd.Printf("%s saved favorite %s\n", style.Fg(color.Green)(icon.Get(icon.Heart)), style.Fg(color.Yellow)(strconv.FormatInt(fav.ID, 10)))
		cmd.Println(preview.Favorite(fav, util.TerminalWidth(100)))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesLoadCmd)
	favoritesLoadCmd.Flags().BoolP("json", "j", false, "Print the JSON export document")
	favoritesLoadCmd.Flags().BoolP("css", "c", false, "Print the stylesheet variables")
	favoritesLoadCmd.MarkFlagsMutuallyExclusive("json", "css")
}

var favoritesLoadCmd = &cobra.Command{
	Use:               "load [id]",
	Short:             "Show a saved favorite",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionFavorites,
	Run: func(cmd *cobra.Command, args []string) {
		a := app.New(newDeps())
		fav := favoriteArg(a, args)

		if !a.LoadFavorite(fav.ID) {
			handleErr(fmt.Errorf("%w: %d", errNotFound, fav.ID))
		}
		printConfiguration(cmd, a)
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesDeleteCmd)
	favoritesDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var favoritesDeleteCmd = &cobra.Command{
	Use:               "delete [id]",
	Short:             "Delete a saved favorite",
	Aliases:           []string{"rm"},
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionFavorites,
	Run: func(cmd *cobra.Command, args []string) {
		a := app.New(newDeps())
		fav := favoriteArg(a, args)

		if !lo.Must(cmd.Flags().GetBool("yes")) && util.IsTerminal() {
			var ok bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Delete favorite %d (%s)?", fav.ID, fav.Fonts),
			}, &ok))
			if !ok {
				return
			}
		}

		a.DeleteFavorite(fav.ID)
		cmd.Printf("%s deleted favorite %d\n", style.Fg(color.Green)(icon.Get(icon.Success)), fav.ID)
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesImportCmd)
}

var favoritesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Save the configuration from a JSON export to favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := afero.ReadFile(filesystem.API(), args[0])
		handleErr(err)

		doc, err := export.Decode(data)
		handleErr(err)
		cfg, err := doc.Config()
		handleErr(err)

		a := app.New(newDeps())
		a.Use(cfg.Palette, cfg.Fonts)
		fav := a.SaveFavorite()
		cmd.Printf("%s imported %s as favorite %d\n", style.Fg(color.Green)(icon.Get(icon.Success)), args[0], fav.ID)
	},
}
