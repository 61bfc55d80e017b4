// Package tui is the interactive page of "toolview watch": the invocation
// list of one transcript, kept up to date while an agent appends to it.
package tui

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/docker/toolview/pkg/browser"
	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/paths"
	"github.com/docker/toolview/pkg/tui/components/invocations"
	"github.com/docker/toolview/pkg/tui/components/notification"
	"github.com/docker/toolview/pkg/tui/components/spinner"
	"github.com/docker/toolview/pkg/tui/components/statusbar"
	"github.com/docker/toolview/pkg/tui/components/toolcommon"
	"github.com/docker/toolview/pkg/tui/core"
	"github.com/docker/toolview/pkg/tui/styles"
	"github.com/docker/toolview/pkg/userconfig"
)

const (
	titleHeight = 1
	appName     = "toolview"
)

// ReloadedMsg carries a fresh read of the transcript.
type ReloadedMsg struct {
	Invocations []invocation.ToolInvocation
	Err         error
}

// ThemeChangedMsg asks the page to reload and apply a theme.
type ThemeChangedMsg struct {
	Ref string
}

// Reload reads path and wraps the outcome in a ReloadedMsg.
func Reload(ctx context.Context, path string) ReloadedMsg {
	invs, err := invocation.Load(ctx, path)
	return ReloadedMsg{Invocations: invs, Err: err}
}

// Options configure the page. Zero values select the defaults.
type Options struct {
	Settings *userconfig.Settings

	// CopyToClipboard and Open replace the system clipboard and opener.
	CopyToClipboard func(string) error
	Open            func(ctx context.Context, target string) error
	// ImageDir is where opened images are written.
	ImageDir string
}

// Model is the watch page.
type Model struct {
	ctx  context.Context
	path string

	keyMap       KeyMap
	list         *invocations.Model
	viewport     viewport.Model
	statusBar    statusbar.StatusBar
	notification notification.Manager

	width, height int

	pauseReason string
	paused      bool
	loadErr     error

	clickAction     userconfig.ImageClickAction
	imageDir        string
	copyToClipboard func(string) error
	open            func(ctx context.Context, target string) error

	send    func(tea.Msg)
	initCmd tea.Cmd
}

// New builds the page for the transcript at path, showing initial until the
// first reload.
func New(ctx context.Context, path string, initial []invocation.ToolInvocation, opts Options) *Model {
	settings := opts.Settings
	if settings == nil {
		settings = &userconfig.Settings{}
	}
	cols, rows := settings.ThumbnailSize()

	m := &Model{
		ctx:             ctx,
		path:            path,
		keyMap:          DefaultKeyMap(),
		viewport:        viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		notification:    notification.New(),
		clickAction:     settings.ImageClickAction(),
		imageDir:        cmp.Or(opts.ImageDir, filepath.Join(paths.GetDataDir(), "images")),
		copyToClipboard: opts.CopyToClipboard,
		open:            opts.Open,
	}
	if m.copyToClipboard == nil {
		m.copyToClipboard = clipboard.WriteAll
	}
	if m.open == nil {
		m.open = browser.Open
	}

	m.list = invocations.New(
		invocations.WithHiddenTools(settings.HiddenTools...),
		invocations.WithThumbnailSize(cols, rows),
		invocations.WithImageClick(m.onImageClick),
	)
	m.list.SetOrigin(0, titleHeight)
	m.statusBar = statusbar.New(m)

	// The first spinner tick is handed out by Init.
	m.initCmd = m.list.SetInvocations(initial)
	m.updatePause(initial)
	m.refreshContent()

	return m
}

// SetProgram lets background work, such as image click actions, report back
// to the running program.
func (m *Model) SetProgram(p *tea.Program) {
	m.send = p.Send
}

func (m *Model) onImageClick(src string) {
	msg := m.imageAction(m.ctx, src)
	if m.send != nil {
		m.send(msg)
	}
}

// Help implements core.KeyMapHelp for the status bar.
func (m *Model) Help() help.KeyMap {
	return core.NewSimpleHelp(m.keyMap.Bindings())
}

func (m *Model) Init() tea.Cmd {
	return m.initCmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.list.SetScroll(m.viewport.YOffset())
		return m, cmd

	case spinner.TickMsg:
		_, cmd := m.list.Update(msg)
		m.refreshContent()
		return m, cmd

	case ReloadedMsg:
		return m, m.handleReloaded(msg)

	case ThemeChangedMsg:
		return m, m.handleThemeChanged(msg.Ref)

	case invocations.ImageClickedMsg:
		slog.Debug("Image clicked", "invocation", msg.Key)
		return m, nil

	case notification.ShowMsg, notification.HideMsg:
		var cmd tea.Cmd
		m.notification, cmd = m.notification.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Reload):
		ctx, path := m.ctx, m.path
		return m, func() tea.Msg {
			return Reload(ctx, path)
		}
	}

	if dir, ok := m.keyMap.Scroll.Direction(msg); ok {
		m.list.SetScroll(core.Scroll(&m.viewport, dir))
	}
	return m, nil
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Y < titleHeight || msg.Y >= titleHeight+m.viewport.Height() {
		return nil
	}

	m.list.SetScroll(m.viewport.YOffset())
	_, cmd := m.list.Update(msg)
	return cmd
}

func (m *Model) handleReloaded(msg ReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Warn("Failed to reload invocations", "path", m.path, "error", msg.Err)
		m.loadErr = msg.Err
		m.refreshStatus()
		return notification.ErrorCmd("Reload failed: " + msg.Err.Error())
	}

	slog.Debug("Reloaded invocations", "path", m.path, "count", len(msg.Invocations))
	m.loadErr = nil

	cmd := m.list.SetInvocations(msg.Invocations)
	m.updatePause(msg.Invocations)
	m.refreshContent()
	return cmd
}

func (m *Model) handleThemeChanged(ref string) tea.Cmd {
	theme, err := styles.LoadTheme(ref)
	if err != nil {
		slog.Warn("Failed to reload theme", "theme", ref, "error", err)
		return notification.ErrorCmd("Theme not applied: " + err.Error())
	}

	styles.ApplyTheme(theme)
	m.list.RefreshStyles()
	m.statusBar.InvalidateCache()
	m.refreshContent()
	return notification.InfoCmd("Theme " + theme.Name + " applied")
}

// updatePause shows the pause banner while the agent's last call is a
// pause_execution, that is until it carries on.
func (m *Model) updatePause(invs []invocation.ToolInvocation) {
	m.paused = false
	m.pauseReason = ""

	if len(invs) == 0 {
		return
	}
	last := &invs[len(invs)-1]
	if !last.IsPause() {
		return
	}

	m.paused = true
	if reason, ok := last.Arg("reason"); ok {
		m.pauseReason = toolcommon.SingleLine(toolcommon.FormatValue(reason))
	}
}

// Paused reports whether the pause banner is shown, and its reason.
func (m *Model) Paused() (bool, string) {
	return m.paused, m.pauseReason
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := max(1, height-titleHeight-m.statusBar.Height())
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(vpHeight)
	m.list.SetSize(width, vpHeight)
	m.statusBar.SetWidth(width)
	m.notification.SetSize(width, height)

	m.refreshContent()
}

// refreshContent re-renders the list into the viewport, following the end of
// the transcript when the view was already there.
func (m *Model) refreshContent() {
	atBottom := m.viewport.AtBottom()

	content := m.list.View()
	if len(m.list.Blocks()) == 0 {
		content = styles.EmptyStateStyle.Render("No tool invocations yet")
	}
	m.viewport.SetContent(content)

	if atBottom {
		m.viewport.GotoBottom()
	}
	m.list.SetScroll(m.viewport.YOffset())
	m.refreshStatus()
}

func (m *Model) refreshStatus() {
	var status string
	switch {
	case m.paused:
		status = styles.PauseBannerStyle.Render("⏸ paused: " + cmp.Or(m.pauseReason, "waiting"))
	case m.loadErr != nil:
		status = styles.ErrorStyle.Render("reload failed")
	default:
		blocks := m.list.Blocks()
		running := 0
		for _, b := range blocks {
			if b.Running() {
				running++
			}
		}
		status = styles.MutedStyle.Render(fmt.Sprintf("%d invocations · %d running", len(blocks), running))
	}
	m.statusBar.SetStatus(status)
}

func (m *Model) title() string {
	return styles.TitleStyle.Render(appName) + " " + styles.SecondaryStyle.Render(filepath.Base(m.path))
}

func (m *Model) View() tea.View {
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.title(),
		m.viewport.View(),
		m.statusBar.View(),
	)

	if m.notification.Open() {
		base = lipgloss.NewCompositor(lipgloss.NewLayer(base), m.notification.GetLayer()).Render()
	}

	return toFullscreenView(base, filepath.Base(m.path)+" - "+appName)
}

func toFullscreenView(content, windowTitle string) tea.View {
	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = styles.Background
	view.WindowTitle = windowTitle
	return view
}
