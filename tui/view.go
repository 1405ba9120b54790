package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/palettekit/palettekit/constant"
	"github.com/palettekit/palettekit/icon"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/preview"
	"github.com/palettekit/palettekit/style"
	"github.com/palettekit/palettekit/util"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (m *model) View() string {
	chrome := style.ChromeFor(m.theme)
	width := max(m.width-paddingStyle.GetHorizontalFrameSize(), 0)

	title := lipgloss.NewStyle().
		Foreground(chrome.Base).
		Background(chrome.Accent).
		Padding(0, 1).
		Render(fmt.Sprintf("%s %s", icon.Get(icon.Palette), constant.App))
	status := lipgloss.NewStyle().
		Foreground(chrome.Subtext).
		Render(fmt.Sprintf("%s %s theme  %s", icon.Get(icon.Theme), m.theme, util.Quantify(len(m.favorites), "favorite", "favorites")))

	sections := []string{
		title + "  " + status,
		"",
		preview.View(m.view, width),
	}

	if m.panel {
		sections = append(sections, "", m.viewFavorites(width))
	}

	if viper.GetBool(key.TUIShowHelp) {
		sections = append(sections, "", m.helpC.View(m.keymap))
	}

	content := lipgloss.NewStyle().Foreground(chrome.Text).Render(strings.Join(sections, "\n"))
	return paddingStyle.Render(m.notification.view(content))
}

func (m *model) viewFavorites(width int) string {
	chrome := style.ChromeFor(m.theme)
	header := lipgloss.NewStyle().
		Foreground(chrome.Base).
		Background(style.SecondaryColor).
		Padding(0, 1).
		Render(icon.Get(icon.Heart) + " Favorites")

	lines := []string{header}
	if m.filterC.Focused() || m.filterC.Value() != "" {
		lines = append(lines, m.filterC.View())
	}
	lines = append(lines, "", preview.Favorites(m.visible(), m.cursor, width))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(chrome.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
