package statusbar

import (
	"testing"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/docker/toolview/pkg/tui/core"
)

type helpProvider struct{}

func (helpProvider) Help() help.KeyMap {
	return core.NewSimpleHelp([]key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	})
}

func TestStatusBar_Layout(t *testing.T) {
	t.Parallel()

	s := New(helpProvider{})
	s.SetWidth(80)
	s.SetStatus("⏸ paused: waiting")

	view := ansi.Strip(s.View())
	assert.Equal(t, 80, lipgloss.Width(view))
	assert.Contains(t, view, "⏸ paused: waiting")
	assert.Contains(t, view, "q quit  r reload")
	assert.Contains(t, view, "toolview ")
	assert.Equal(t, 1, s.Height())
}

func TestStatusBar_NarrowDropsHelpFirst(t *testing.T) {
	t.Parallel()

	s := New(helpProvider{})
	s.SetWidth(40)
	s.SetStatus("3 invocations")

	view := ansi.Strip(s.View())
	assert.Contains(t, view, "3 invocations")
	assert.NotContains(t, view, "reload")
}

func TestStatusBar_CachesUntilChanged(t *testing.T) {
	t.Parallel()

	s := New(nil)
	s.SetWidth(60)
	s.SetStatus("a")
	first := s.View()
	assert.Equal(t, first, s.View())

	s.SetStatus("b")
	assert.NotEqual(t, first, s.View())
}
