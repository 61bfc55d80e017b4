package layout

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Sizeable represents components that can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Positionable represents components that need to know where they are drawn
// on screen, usually to translate mouse coordinates.
type Positionable interface {
	SetOrigin(x, y int)
}

// Help represents components that provide key bindings for the help bar
type Help interface {
	Bindings() []key.Binding
}

// Model is the base interface for all TUI components. Components render to a
// string; only the top level program builds a tea.View.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) (Model, tea.Cmd)
	View() string
	Sizeable
}
