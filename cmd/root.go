// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/palettekit/palettekit/app"
	"github.com/palettekit/palettekit/color"
	"github.com/palettekit/palettekit/constant"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/log"
	"github.com/palettekit/palettekit/preview"
	"github.com/palettekit/palettekit/style"
	"github.com/palettekit/palettekit/tui"
	"github.com/palettekit/palettekit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("storage", "", "Storage backend for favorites and settings (file, keyring, memory)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("storage", completionBackends))
	lo.Must0(viper.BindPFlag(key.StorageBackend, rootCmd.PersistentFlags().Lookup("storage")))
}

// rootCmd opens the interactive generator, or prints a single preview when stdout is not a terminal.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Generate color palettes and font pairings",
	Long: style.Bold(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render(heredoc.Doc(`
			    Generate five-color palettes and font pairings,
			    check their contrast and keep the ones you like.`)),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		deps := newDeps()
		if !util.IsTerminal() {
			a := app.New(deps)
			cmd.Println(preview.View(a.View(), util.TerminalWidth(100)))
			return
		}

		handleErr(tui.Run(deps))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
