package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/palettekit/palettekit/style"
)

// notification is a transient status line that clears itself after lifetime.
type notification struct {
	text     string
	seq      int
	pending  bool
	lifetime time.Duration
}

// clearNotificationMsg clears the notification it was scheduled for, unless a newer one replaced it.
type clearNotificationMsg struct {
	seq int
}

func (n *notification) set(text string) {
	n.text = text
	n.seq++
	n.pending = true
}

// flush schedules the clear of a notification set since the last flush.
func (n *notification) flush() tea.Cmd {
	if !n.pending {
		return nil
	}

	n.pending = false
	seq := n.seq
	return tea.Tick(n.lifetime, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

func (n *notification) update(msg clearNotificationMsg) {
	if msg.seq == n.seq {
		n.text = ""
	}
}

// view appends the notification to the last line of content.
func (n *notification) view(content string) string {
	if n.text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Fg(style.AccentColor)(n.text)
	return strings.Join(lines, "\n")
}
