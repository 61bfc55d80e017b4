package core

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// ScrollDirection represents the direction of scrolling
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollPageUp
	ScrollPageDown
	ScrollToTop
	ScrollToBottom
)

// ScrollKeys are the bindings a scrollable page listens to.
type ScrollKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func DefaultScrollKeys() ScrollKeys {
	return ScrollKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "space", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// Direction returns the scroll direction bound to msg.
func (k ScrollKeys) Direction(msg tea.KeyPressMsg) (ScrollDirection, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return ScrollUp, true
	case key.Matches(msg, k.Down):
		return ScrollDown, true
	case key.Matches(msg, k.PageUp):
		return ScrollPageUp, true
	case key.Matches(msg, k.PageDown):
		return ScrollPageDown, true
	case key.Matches(msg, k.Top):
		return ScrollToTop, true
	case key.Matches(msg, k.Bottom):
		return ScrollToBottom, true
	}
	return 0, false
}

// Scroll moves vp one step in dir and returns the new offset.
func Scroll(vp *viewport.Model, dir ScrollDirection) int {
	switch dir {
	case ScrollUp:
		vp.ScrollUp(1)
	case ScrollDown:
		vp.ScrollDown(1)
	case ScrollPageUp:
		vp.PageUp()
	case ScrollPageDown:
		vp.PageDown()
	case ScrollToTop:
		vp.GotoTop()
	case ScrollToBottom:
		vp.GotoBottom()
	}
	return vp.YOffset()
}
