package notification

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_InitialState(t *testing.T) {
	t.Parallel()

	n := New()

	require.Empty(t, n.items)
	require.False(t, n.Open())
	require.Nil(t, n.GetLayer())
}

func TestNotification_ShowAndExpire(t *testing.T) {
	t.Parallel()

	n := New()

	updated, cmd := n.Update(ShowMsg{Text: "Copied image to clipboard"})
	require.NotNil(t, cmd)
	require.Len(t, updated.items, 1)
	require.True(t, updated.Open())
	assert.Contains(t, ansi.Strip(updated.View()), "Copied image to clipboard")

	updated, _ = updated.Update(HideMsg{ID: updated.items[0].ID})
	require.False(t, updated.Open())
	require.Empty(t, updated.View())
}

func TestNotification_HideAll(t *testing.T) {
	t.Parallel()

	n := New()
	n, _ = n.Update(ShowMsg{Text: "a"})
	n, _ = n.Update(ShowMsg{Text: "b", Level: LevelError})
	require.Len(t, n.items, 2)
	assert.Equal(t, "b", n.items[0].Text)

	n, _ = n.Update(HideMsg{})
	require.Empty(t, n.items)
}

func TestNotification_KeepsNewest(t *testing.T) {
	t.Parallel()

	n := New()
	for _, text := range []string{"1", "2", "3", "4", "5"} {
		n, _ = n.Update(ShowMsg{Text: text})
	}

	require.Len(t, n.items, maxItems)
	assert.Equal(t, "5", n.items[0].Text)
	assert.Equal(t, "3", n.items[maxItems-1].Text)
}

func TestNotification_Cmds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ShowMsg{Text: "ok", Level: LevelInfo}, InfoCmd("ok")())
	assert.Equal(t, ShowMsg{Text: "bad", Level: LevelError}, ErrorCmd("bad")())
}

func TestNotification_Position(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetSize(100, 50)
	updated, _ := n.Update(ShowMsg{Text: "Test"})
	row, col := updated.position()

	view := updated.View()
	assert.Equal(t, 50-notificationPadding-lipgloss.Height(view), row)
	assert.Positive(t, col)
	require.NotNil(t, updated.GetLayer())
}
