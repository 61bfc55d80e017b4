// Package notification shows short-lived messages stacked in the bottom
// right corner of the screen.
package notification

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docker/toolview/pkg/tui/core"
	"github.com/docker/toolview/pkg/tui/styles"
)

const (
	defaultDuration     = 3 * time.Second
	notificationPadding = 2
	maxItems            = 3
)

var nextID atomic.Uint64

// Level selects how a notification is styled.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

type ShowMsg struct {
	Text  string
	Level Level
}

type HideMsg struct {
	ID uint64 // If 0, hides all notifications
}

// InfoCmd shows text as an informational notification.
func InfoCmd(text string) tea.Cmd {
	return core.CmdHandler(ShowMsg{Text: text, Level: LevelInfo})
}

// ErrorCmd shows text as an error notification.
func ErrorCmd(text string) tea.Cmd {
	return core.CmdHandler(ShowMsg{Text: text, Level: LevelError})
}

type notificationItem struct {
	ID    uint64
	Text  string
	Level Level
}

// Manager keeps the notifications currently on screen, newest first.
type Manager struct {
	width, height int
	items         []notificationItem
}

func New() Manager {
	return Manager{}
}

func (n *Manager) SetSize(width, height int) {
	n.width = width
	n.height = height
}

func (n *Manager) Update(msg tea.Msg) (Manager, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		id := nextID.Add(1)
		n.items = append([]notificationItem{{ID: id, Text: msg.Text, Level: msg.Level}}, n.items...)
		if len(n.items) > maxItems {
			n.items = n.items[:maxItems]
		}

		return *n, tea.Tick(defaultDuration, func(time.Time) tea.Msg {
			return HideMsg{ID: id}
		})

	case HideMsg:
		if msg.ID == 0 {
			n.items = nil
			return *n, nil
		}

		items := make([]notificationItem, 0, len(n.items))
		for _, item := range n.items {
			if item.ID != msg.ID {
				items = append(items, item)
			}
		}
		n.items = items
		return *n, nil
	}

	return *n, nil
}

func (n *Manager) View() string {
	if len(n.items) == 0 {
		return ""
	}

	views := make([]string, 0, len(n.items))
	for i := len(n.items) - 1; i >= 0; i-- {
		item := n.items[i]
		style := styles.NotificationStyle
		if item.Level == LevelError {
			style = styles.NotificationErrorStyle
		}
		views = append(views, style.Render(item.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Right, views...)
}

// GetLayer returns the notifications as a layer to draw over the page.
func (n *Manager) GetLayer() *lipgloss.Layer {
	if len(n.items) == 0 {
		return nil
	}

	row, col := n.position()
	return lipgloss.NewLayer(n.View()).X(col).Y(row)
}

func (n *Manager) position() (row, col int) {
	view := n.View()

	row = max(0, n.height-lipgloss.Height(view)-notificationPadding)
	col = max(0, n.width-lipgloss.Width(view)-notificationPadding)
	return row, col
}

func (n *Manager) Open() bool {
	return len(n.items) > 0
}
