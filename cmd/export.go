package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/export"
	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/open"
	"github.com/palettekit/palettekit/output"
	"github.com/palettekit/palettekit/palette"
	"github.com/palettekit/palettekit/style"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)

	for _, c := range []*cobra.Command{exportCSSCmd, exportJSONCmd} {
		c.Flags().Int64P("favorite", "F", 0, "Export a saved favorite instead of a fresh palette")
		lo.Must0(c.RegisterFlagCompletionFunc("favorite", completionFavorites))
		c.Flags().StringP("mode", "m", "", "Generation mode when no favorite is given")
		lo.Must0(c.RegisterFlagCompletionFunc("mode", completionModes))
		c.Flags().Int64P("seed", "s", 0, "Seed for reproducible output")
		exportCmd.AddCommand(c)
	}

	exportCSSCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	exportCSSCmd.Flags().BoolP("copy", "c", false, "Copy to the clipboard")
	exportCSSCmd.Flags().Bool("fonts-url", false, "Prepend an @import of the Google Fonts stylesheet for the pair")
	exportJSONCmd.Flags().StringP("output", "o", "", "Directory to write "+export.Filename+" to")
	exportJSONCmd.Flags().BoolP("print", "p", false, "Print to stdout instead of writing a file")
	exportJSONCmd.Flags().Bool("open", false, "Open the written file with the default application")
	exportJSONCmd.MarkFlagsMutuallyExclusive("print", "open")

	exportCmd.AddCommand(exportSchemaCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a palette as stylesheet variables or JSON",
}

// exportSource builds an app holding the configuration selected by the --favorite, --mode and --seed flags.
func exportSource(cmd *cobra.Command, deps app.Deps) *app.App {
	if cmd.Flags().Changed("seed") {
		deps.Random = palette.NewSeeded(lo.Must(cmd.Flags().GetInt64("seed")))
	}
	a := app.New(deps)

	if cmd.Flags().Changed("favorite") {
		id := lo.Must(cmd.Flags().GetInt64("favorite"))
		fav := favoriteArg(a, []string{strconv.FormatInt(id, 10)})
		a.Use(fav.Palette, fav.Fonts)
		return a
	}

	mode := deps.ShuffleMode
	if name := lo.Must(cmd.Flags().GetString("mode")); name != "" {
		var err error
		mode, err = palette.ParseMode(name)
		handleErr(err)
	}
	handleErr(a.Generate(mode))
	return a
}

var exportCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Export stylesheet variables",
	Run: func(cmd *cobra.Command, args []string) {
		a := exportSource(cmd, newDeps())
		css := stylesheet(a, lo.Must(cmd.Flags().GetBool("fonts-url")))

		if lo.Must(cmd.Flags().GetBool("copy")) {
			handleErr(output.Clipboard{}.Copy(css))
			cmd.PrintErrf("%s copied to clipboard\n", style.Fg(color.Green)(icon.Get(icon.Copy)))
		}

		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			handleErr(filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm))
			handleErr(afero.WriteFile(filesystem.API(), path, []byte(css+"\n"), 0o644))
			cmd.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			return
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), css)
	},
}

// stylesheet renders the variables block, optionally preceded by an @import of the pair's web fonts.
func stylesheet(a *app.App, fontsURL bool) string {
	css := a.Stylesheet()
	if fontsURL {
		css = fmt.Sprintf("@import url('%s');\n\n%s", a.Fonts().URL(), css)
	}
	return css
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the " + export.Filename + " document",
	Run: func(cmd *cobra.Command, args []string) {
		deps := newDeps()
		if dir := lo.Must(cmd.Flags().GetString("output")); dir != "" {
			deps.Downloader = output.Files{Dir: dir}
		}
		notice := &lastNotice{}
		deps.Notifier = notice
		a := exportSource(cmd, deps)

		if lo.Must(cmd.Flags().GetBool("print")) {
			data, err := a.Document().Encode()
			handleErr(err)
			writeData(cmd.OutOrStdout(), data)
			return
		}

		path, err := exportJSON(a, notice)
		handleErr(err)
		cmd.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Export)), path)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(path))
		}
	},
}

// lastNotice keeps the most recent app notification so a command can report it.
type lastNotice struct {
	message string
}

func (n *lastNotice) Notify(message string) {
	n.message = message
}

// exportJSON downloads the document, turning a failed export into the error the app notified.
func exportJSON(a *app.App, notice *lastNotice) (string, error) {
	path, ok := a.ExportJSON()
	if !ok {
		return "", errors.New(notice.message)
	}
	return path, nil
}

var exportSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the export document",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := export.Schema()
		handleErr(err)
		writeData(cmd.OutOrStdout(), data)
	},
}

// writeData prints a machine-readable payload followed by a newline.
func writeData(w io.Writer, data []byte) {
	_, _ = fmt.Fprintln(w, string(data))
}
