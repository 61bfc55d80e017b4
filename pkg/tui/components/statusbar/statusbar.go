package statusbar

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/docker/toolview/pkg/tui/core"
	"github.com/docker/toolview/pkg/tui/styles"
	"github.com/docker/toolview/pkg/version"
)

// StatusBar shows a status message on the left, then key-binding help and
// the version on the right.
type StatusBar struct {
	width  int
	help   core.KeyMapHelp
	status string

	cached     string
	cacheDirty bool
}

// New creates a new StatusBar instance
func New(help core.KeyMapHelp) StatusBar {
	return StatusBar{
		help:       help,
		cacheDirty: true,
	}
}

// SetWidth sets the width of the status bar
func (s *StatusBar) SetWidth(width int) {
	if s.width != width {
		s.width = width
		s.cacheDirty = true
	}
}

// SetStatus sets the already styled message shown on the left.
func (s *StatusBar) SetStatus(status string) {
	if s.status != status {
		s.status = status
		s.cacheDirty = true
	}
}

// Height returns the rendered height of the status bar (always 1).
func (s *StatusBar) Height() int {
	return 1
}

// InvalidateCache clears all cached values, after a theme change.
func (s *StatusBar) InvalidateCache() {
	s.cacheDirty = true
}

func (s *StatusBar) rebuild() {
	s.cacheDirty = false

	const pad = 1

	ver := styles.MutedStyle.Render("toolview " + version.Version)
	verW := lipgloss.Width(ver)

	status := s.status
	maxStatusW := s.width - verW - 3*pad
	if maxStatusW <= 0 {
		status = ""
	} else if lipgloss.Width(status) > maxStatusW {
		status = ansi.Truncate(status, maxStatusW, "…")
	}
	statusW := lipgloss.Width(status)

	var helpStr string
	if s.help != nil {
		if help := s.help.Help(); help != nil {
			var parts []string
			for _, b := range help.ShortHelp() {
				if b.Help().Key != "" && b.Help().Desc != "" {
					parts = append(parts,
						styles.HighlightStyle.Render(b.Help().Key)+
							" "+
							styles.SecondaryStyle.Render(b.Help().Desc))
				}
			}
			helpStr = strings.Join(parts, "  ")
		}
	}

	// Help is the first thing to go when space runs out.
	maxHelpW := s.width - statusW - verW - 4*pad
	switch {
	case helpStr == "" || maxHelpW <= 3:
		helpStr = ""
	case lipgloss.Width(helpStr) > maxHelpW:
		helpStr = ansi.Truncate(helpStr, maxHelpW, "...")
	}

	right := ver
	if helpStr != "" {
		right = helpStr + "  " + ver
	}

	left := strings.Repeat(" ", pad) + status
	gap := max(1, s.width-lipgloss.Width(left)-lipgloss.Width(right)-pad)

	s.cached = left + strings.Repeat(" ", gap) + right + " "
}

// View renders the status bar.
//
// Layout: [ status ...           help text  toolview VERSION ]
func (s *StatusBar) View() string {
	if s.cacheDirty {
		s.rebuild()
	}
	return s.cached
}
