package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/palettekit/palettekit/log"
)

func (m *model) Init() tea.Cmd {
	return m.notification.flush()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.helpC.Width = msg.Width
		m.filterC.Width = msg.Width / 2
		return m, nil
	case clearNotificationMsg:
		m.notification.update(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.forceQuit) {
			return m, tea.Quit
		}

		editable := m.filterC.Focused()
		if m.app.HandleKey(msg.String(), editable) {
			return m, m.notification.flush()
		}

		var cmd tea.Cmd
		if editable {
			cmd = m.updateFilter(msg)
		} else {
			cmd = m.updateKeys(msg)
		}
		return m, tea.Batch(cmd, m.notification.flush())
	}

	return m, nil
}

func (m *model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.back):
		m.filterC.Reset()
		m.filterC.Blur()
	case key.Matches(msg, m.keymap.load):
		m.filterC.Blur()
	default:
		var cmd tea.Cmd
		m.filterC, cmd = m.filterC.Update(msg)
		m.cursor = 0
		return cmd
	}

	m.clampCursor()
	return nil
}

func (m *model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	k := m.keymap

	switch {
	case key.Matches(msg, k.quit):
		return tea.Quit
	case key.Matches(msg, k.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
	case key.Matches(msg, k.export):
		if path, ok := m.app.ExportJSON(); ok {
			log.With("path", path).Infof("exported %s", path)
		}
	case key.Matches(msg, k.theme):
		m.app.ToggleTheme()
	case key.Matches(msg, k.swatch):
		i, _ := strconv.Atoi(msg.String())
		m.app.CopySwatch(i - 1)
	case key.Matches(msg, k.favorites):
		m.togglePanel()
	case m.panel:
		return m.updatePanel(msg)
	}

	return nil
}

func (m *model) togglePanel() {
	m.panel = !m.panel
	m.keymap.panel = m.panel
	if !m.panel {
		m.filterC.Reset()
		m.filterC.Blur()
	}
	m.clampCursor()
}

func (m *model) updatePanel(msg tea.KeyMsg) tea.Cmd {
	k := m.keymap

	switch {
	case key.Matches(msg, k.back):
		m.togglePanel()
	case key.Matches(msg, k.filter):
		return m.filterC.Focus()
	case key.Matches(msg, k.up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, k.down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, k.load):
		if f, ok := m.selected(); ok {
			m.app.LoadFavorite(f.ID)
		}
	case key.Matches(msg, k.remove):
		if f, ok := m.selected(); ok {
			m.app.DeleteFavorite(f.ID)
		}
	}

	return nil
}
