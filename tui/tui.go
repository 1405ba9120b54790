// Package tui provides the interactive terminal front end.
package tui

import (
	"github.com/palettekit/palettekit/app"

	tea "github.com/charmbracelet/bubbletea"
)

// Run builds the application around a bubbletea model and runs it until the user quits.
func Run(deps app.Deps) error {
	_, err := tea.NewProgram(newModel(deps), tea.WithAltScreen()).Run()
	return err
}
