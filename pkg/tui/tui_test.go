package tui

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/tui/components/invocations"
	"github.com/docker/toolview/pkg/tui/components/notification"
	"github.com/docker/toolview/pkg/tui/components/spinner"
	"github.com/docker/toolview/pkg/userconfig"
)

const screenshot = `[
	{"toolCallId":"a","toolName":"go_to_url","args":{"url":"https://example.com"},"state":"result"},
	{"toolCallId":"b","toolName":"take_screenshot","args":{},"state":"result",
	 "result":[{"type":"text","text":"ok"},{"type":"image","source":{"media_type":"image/png","data":"aGVsbG8="}}]}
]`

func decode(t *testing.T, src string) []invocation.ToolInvocation {
	t.Helper()

	var invs []invocation.ToolInvocation
	require.NoError(t, json.Unmarshal([]byte(src), &invs))
	return invs
}

type fakeSystem struct {
	copied []string
	opened []string
}

func (f *fakeSystem) copy(s string) error {
	f.copied = append(f.copied, s)
	return nil
}

func (f *fakeSystem) open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return nil
}

func newTestModel(t *testing.T, initial []invocation.ToolInvocation, settings *userconfig.Settings) (*Model, *fakeSystem) {
	t.Helper()

	sys := &fakeSystem{}
	m := New(t.Context(), "testdata/paused.json", initial, Options{
		Settings:        settings,
		CopyToClipboard: sys.copy,
		Open:            sys.open,
		ImageDir:        t.TempDir(),
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, sys
}

func TestModel_PauseBanner(t *testing.T) {
	t.Parallel()

	initial, err := invocation.Load(t.Context(), "testdata/paused.json")
	require.NoError(t, err)

	m, _ := newTestModel(t, initial, nil)

	paused, reason := m.Paused()
	assert.True(t, paused)
	assert.Equal(t, "Click 'Resume' to allow the agent to start browsing", reason)
	require.Len(t, m.list.Blocks(), 1, "pause_execution is not rendered as a block")

	view := ansi.Strip(m.View().Content)
	assert.Contains(t, view, "⏸ paused: Click 'Resume'")

	m.Update(ReloadedMsg{Invocations: append(initial, decode(t, `[{"toolCallId":"c","toolName":"go_to_url","args":{},"state":"call"}]`)...)})

	paused, _ = m.Paused()
	assert.False(t, paused)
	assert.Contains(t, ansi.Strip(m.View().Content), "2 invocations · 1 running")
}

func TestModel_ReloadReplacesInvocations(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, nil)
	assert.Contains(t, ansi.Strip(m.View().Content), "No tool invocations yet")

	_, cmd := m.Update(ReloadedMsg{Invocations: decode(t, `[{"toolCallId":"a","toolName":"go_to_url","args":{"url":"x"},"state":"call"}]`)})
	assert.NotNil(t, cmd, "spinner starts for the in-flight call")
	assert.Contains(t, ansi.Strip(m.View().Content), "Go to url")

	_, cmd = m.Update(ReloadedMsg{Invocations: decode(t, `[{"toolCallId":"a","toolName":"go_to_url","args":{"url":"x"},"state":"result"}]`)})
	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View().Content), "Go to url ✓")
}

func TestModel_ReloadError(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), nil)

	_, cmd := m.Update(ReloadedMsg{Err: os.ErrNotExist})
	require.NotNil(t, cmd)

	msg, ok := cmd().(notification.ShowMsg)
	require.True(t, ok)
	assert.Equal(t, notification.LevelError, msg.Level)
	assert.Len(t, m.list.Blocks(), 2, "previous invocations are kept")
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)

	reloaded, ok := cmd().(ReloadedMsg)
	require.True(t, ok)
	require.NoError(t, reloaded.Err)
	assert.Len(t, reloaded.Invocations, 2)
}

func TestModel_ClickCopiesImage(t *testing.T) {
	t.Parallel()

	m, sys := newTestModel(t, decode(t, screenshot), nil)
	_ = m.View()

	zones := m.list.Zones()
	require.Len(t, zones, 1)
	z := zones[0]

	_, cmd := m.Update(tea.MouseClickMsg{X: z.Left, Y: z.Top + titleHeight, Button: tea.MouseLeft})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, invocations.ImageClickedMsg{Key: "b", Src: "data:image/png;base64,aGVsbG8="}, msg)
	assert.Equal(t, []string{"data:image/png;base64,aGVsbG8="}, sys.copied)
}

func TestModel_ClickOnTitleIsIgnored(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), nil)

	_, cmd := m.Update(tea.MouseClickMsg{X: 2, Y: 0, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
}

func TestImageAction_Copy(t *testing.T) {
	t.Parallel()

	m, sys := newTestModel(t, nil, nil)

	msg := m.imageAction(t.Context(), "data:image/png;base64,aGVsbG8=")
	assert.Equal(t, notification.ShowMsg{Text: "Copied image to clipboard"}, msg)
	assert.Equal(t, []string{"data:image/png;base64,aGVsbG8="}, sys.copied)
}

func TestImageAction_Open(t *testing.T) {
	t.Parallel()

	m, sys := newTestModel(t, nil, &userconfig.Settings{ImageClick: userconfig.ImageClickOpen})

	msg, ok := m.imageAction(t.Context(), "data:image/png;base64,aGVsbG8=").(notification.ShowMsg)
	require.True(t, ok)
	assert.Equal(t, notification.LevelInfo, msg.Level)

	require.Len(t, sys.opened, 1)
	assert.Equal(t, ".png", filepath.Ext(sys.opened[0]))

	data, err := os.ReadFile(sys.opened[0])
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestImageAction_OpenInvalidURI(t *testing.T) {
	t.Parallel()

	m, sys := newTestModel(t, nil, &userconfig.Settings{ImageClick: userconfig.ImageClickOpen})

	msg, ok := m.imageAction(t.Context(), "https://example.com/a.png").(notification.ShowMsg)
	require.True(t, ok)
	assert.Equal(t, notification.LevelError, msg.Level)
	assert.Empty(t, sys.opened)
}

func TestModel_HiddenTools(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), &userconfig.Settings{HiddenTools: []string{"take_screenshot"}})

	require.Len(t, m.list.Blocks(), 1)
	assert.NotContains(t, ansi.Strip(m.View().Content), "Take screenshot")
}

func TestModel_ViewIsFullscreen(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), nil)

	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)
	assert.Equal(t, "paused.json - toolview", v.WindowTitle)
	assert.Contains(t, ansi.Strip(v.Content), "toolview paused.json")
}

func TestModel_NotificationOverlay(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), nil)

	m.Update(notification.ShowMsg{Text: "Copied image to clipboard"})
	assert.Contains(t, ansi.Strip(m.View().Content), "Copied image to clipboard")
}

func TestModel_ScrollKeys(t *testing.T) {
	t.Parallel()

	var invs []invocation.ToolInvocation
	for range 20 {
		invs = append(invs, decode(t, `[{"toolName":"print_call","args":{"message":"hi"},"state":"result"}]`)...)
	}
	m, _ := newTestModel(t, invs, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	assert.Equal(t, 0, m.viewport.YOffset())

	m.Update(tea.KeyPressMsg{Code: 'G', Text: "G"})
	assert.Positive(t, m.viewport.YOffset())
}

func TestModel_SpinnerRunsForCallsPresentAtStartup(t *testing.T) {
	t.Parallel()

	initial := decode(t, `[{"toolCallId":"a","toolName":"go_to_url","args":{"url":"x"},"state":"call"}]`)
	m, _ := newTestModel(t, initial, nil)

	cmd := m.Init()
	require.NotNil(t, cmd, "the first tick is scheduled at startup")

	tick, ok := cmd().(spinner.TickMsg)
	require.True(t, ok)

	_, next := m.Update(tick)
	assert.NotNil(t, next, "the spinner keeps ticking while the call is in flight")
}

func TestModel_InitWithoutRunningCalls(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, decode(t, screenshot), nil)
	assert.Nil(t, m.Init())
}
