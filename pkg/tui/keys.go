package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/docker/toolview/pkg/tui/core"
)

// KeyMap defines the page's key bindings.
type KeyMap struct {
	Quit   key.Binding
	Reload key.Binding
	Scroll core.ScrollKeys
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Scroll: core.DefaultScrollKeys(),
	}
}

// Bindings returns the bindings shown in the status bar.
func (k KeyMap) Bindings() []key.Binding {
	scroll := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll"))
	return []key.Binding{scroll, k.Scroll.Top, k.Scroll.Bottom, k.Reload, k.Quit}
}
