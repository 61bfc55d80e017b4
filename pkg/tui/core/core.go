// Package core holds the small pieces shared by the page and its components.
package core

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// KeyMapHelp is implemented by models that describe their keys in the status bar.
type KeyMapHelp interface {
	Help() help.KeyMap
}

type bindingHelp []key.Binding

// NewSimpleHelp returns a help.KeyMap listing bindings on one line.
func NewSimpleHelp(bindings []key.Binding) help.KeyMap {
	return bindingHelp(bindings)
}

func (b bindingHelp) ShortHelp() []key.Binding {
	return b
}

func (b bindingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// CmdHandler creates a command that returns the given message
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
