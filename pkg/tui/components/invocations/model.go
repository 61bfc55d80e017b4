package invocations

import (
	tea "charm.land/bubbletea/v2"

	"github.com/docker/toolview/pkg/invocation"
	"github.com/docker/toolview/pkg/tui/components/spinner"
	"github.com/docker/toolview/pkg/tui/core/layout"
	"github.com/docker/toolview/pkg/tui/styles"
)

// ImageClickedMsg is emitted after a thumbnail was clicked.
type ImageClickedMsg struct {
	Key string
	Src string
}

// Option configures a Model.
type Option func(*Model)

// WithImageClick registers the function called with the data URI of a
// clicked thumbnail.
func WithImageClick(fn func(src string)) Option {
	return func(m *Model) {
		m.onImageClick = fn
	}
}

// WithHiddenTools hides invocations of the named tools, on top of
// pause_execution which is always hidden.
func WithHiddenTools(names ...string) Option {
	return func(m *Model) {
		m.hidden = append(m.hidden, names...)
	}
}

// WithThumbnailSize sets the largest thumbnail, in cells.
func WithThumbnailSize(cols, rows int) Option {
	return func(m *Model) {
		m.thumbCols = cols
		m.thumbRows = rows
	}
}

// Model is the interactive invocation list: it animates the spinner of
// in-flight calls and turns clicks on thumbnails into onImageClick calls.
type Model struct {
	invocations []invocation.ToolInvocation
	blocks      []Block
	hidden      []string

	onImageClick func(src string)

	spinner  spinner.Spinner
	spinning bool

	width     int
	height    int
	thumbCols int
	thumbRows int

	// Screen position of the first rendered line and how many lines of it
	// are scrolled out of view.
	originX int
	originY int
	scrollY int

	// zones are computed during View().
	zones []ImageZone
}

var _ layout.Model = (*Model)(nil)

func New(opts ...Option) *Model {
	m := &Model{
		spinner:   spinner.New(styles.ToolSpinnerStyle),
		thumbCols: DefaultThumbnailCols,
		thumbRows: DefaultThumbnailRows,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetInvocations replaces the list being shown. The returned command starts
// the spinner when a call just became in flight.
func (m *Model) SetInvocations(invocations []invocation.ToolInvocation) tea.Cmd {
	m.invocations = invocations
	m.blocks = Build(invocations, m.hidden...)
	return m.startSpinner()
}

// Invocations returns the list being shown.
func (m *Model) Invocations() []invocation.ToolInvocation {
	return m.invocations
}

// Blocks returns the visible blocks.
func (m *Model) Blocks() []Block {
	return m.blocks
}

// Zones returns the thumbnail zones of the last View call.
func (m *Model) Zones() []ImageZone {
	return m.zones
}

// RefreshStyles re-renders the spinner after a theme change.
func (m *Model) RefreshStyles() {
	m.spinner = m.spinner.WithStyle(styles.ToolSpinnerStyle)
}

func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetScroll sets how many rendered lines are above the visible area.
func (m *Model) SetScroll(offset int) {
	m.scrollY = max(offset, 0)
}

func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.startSpinner()
}

func (m *Model) Update(msg tea.Msg) (layout.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !AnyRunning(m.blocks) {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		return m, m.handleClick(msg.X-m.originX, msg.Y-m.originY+m.scrollY)
	}

	return m, nil
}

func (m *Model) View() string {
	r := m.render()
	m.zones = r.Zones
	return r.View
}

// Render renders the current blocks without touching the click zones.
func (m *Model) Render() Rendered {
	return m.render()
}

func (m *Model) render() Rendered {
	return Render(m.blocks, RenderOptions{
		Width:         m.width,
		Spinner:       m.spinner.View(),
		ThumbnailCols: m.thumbCols,
		ThumbnailRows: m.thumbRows,
	})
}

// handleClick uses the zones computed during the last View() call.
func (m *Model) handleClick(x, y int) tea.Cmd {
	for _, z := range m.zones {
		if !z.Contains(x, y) {
			continue
		}
		onClick := m.onImageClick
		return func() tea.Msg {
			if onClick != nil {
				onClick(z.Src)
			}
			return ImageClickedMsg{Key: z.Key, Src: z.Src}
		}
	}
	return nil
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !AnyRunning(m.blocks) {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick()
}
