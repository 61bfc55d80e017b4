package spinner

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Interval is the time between two frames.
const Interval = 80 * time.Millisecond

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var lastID atomic.Int64

// TickMsg advances the spinner it was issued for.
type TickMsg struct {
	id  int
	tag int
}

// Spinner is an indeterminate progress indicator. It is a value type: Update
// returns the advanced spinner.
type Spinner struct {
	style  lipgloss.Style
	styled []string
	frame  int
	id     int
	tag    int
}

func New(style lipgloss.Style) Spinner {
	styled := make([]string, len(frames))
	for i, f := range frames {
		styled[i] = style.Render(f)
	}

	return Spinner{
		style:  style,
		styled: styled,
		id:     int(lastID.Add(1)),
	}
}

// WithStyle returns the spinner re-rendered with style, keeping its frame.
func (s Spinner) WithStyle(style lipgloss.Style) Spinner {
	n := New(style)
	n.id = s.id
	n.tag = s.tag
	n.frame = s.frame
	return n
}

// Frame is the index of the frame currently shown.
func (s Spinner) Frame() int {
	return s.frame
}

func (s Spinner) Init() tea.Cmd {
	return s.Tick()
}

func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != s.id || tick.tag != s.tag {
		return s, nil
	}

	s.tag++
	s.frame = (s.frame + 1) % len(frames)
	return s, s.Tick()
}

func (s Spinner) View() string {
	return s.styled[s.frame%len(s.styled)]
}

func (s Spinner) Tick() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(Interval, func(time.Time) tea.Msg {
		return TickMsg{id: id, tag: tag}
	})
}
