package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, set from the current theme by ApplyTheme.
var (
	Background    color.Color
	BackgroundAlt color.Color

	TextPrimary   color.Color
	TextSecondary color.Color
	TextMuted     color.Color

	Accent  color.Color
	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	BorderSecondary color.Color
	Separator       color.Color
)

// Base styles
var (
	NoStyle   = lipgloss.NewStyle()
	BaseStyle lipgloss.Style
)

// Text styles
var (
	HighlightStyle lipgloss.Style
	MutedStyle     lipgloss.Style
	SecondaryStyle lipgloss.Style
	BoldStyle      lipgloss.Style
)

// Status styles
var (
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
)

// Tool invocation styles
var (
	// ToolBlockStyle frames one invocation.
	ToolBlockStyle lipgloss.Style
	// ToolPendingStyle is applied on top of a block while its call is in flight.
	ToolPendingStyle lipgloss.Style

	ToolNameStyle      lipgloss.Style
	ToolDividerStyle   lipgloss.Style
	ToolParamKeyStyle  lipgloss.Style
	ToolParamValStyle  lipgloss.Style
	ToolCompletedIcon  lipgloss.Style
	ToolSpinnerStyle   lipgloss.Style
	ToolImageStyle     lipgloss.Style
	ToolImageHintStyle lipgloss.Style
)

// Page styles
var (
	AppStyle         lipgloss.Style
	TitleStyle       lipgloss.Style
	StatusBarStyle   lipgloss.Style
	PauseBannerStyle lipgloss.Style
	EmptyStateStyle  lipgloss.Style

	NotificationStyle      lipgloss.Style
	NotificationErrorStyle lipgloss.Style
)

func rebuildStyles() {
	BaseStyle = NoStyle.Foreground(TextPrimary)

	HighlightStyle = BaseStyle.Foreground(Accent)
	MutedStyle = BaseStyle.Foreground(TextMuted)
	SecondaryStyle = BaseStyle.Foreground(TextSecondary)
	BoldStyle = BaseStyle.Bold(true)

	SuccessStyle = BaseStyle.Foreground(Success)
	ErrorStyle = BaseStyle.Foreground(Error)
	WarningStyle = BaseStyle.Foreground(Warning)
	InfoStyle = BaseStyle.Foreground(Info)

	ToolBlockStyle = BaseStyle.
		BorderLeft(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BorderSecondary).
		PaddingLeft(1).
		MarginBottom(1)
	ToolPendingStyle = NoStyle.Faint(true)

	ToolNameStyle = BaseStyle.Bold(true).Foreground(Accent)
	ToolDividerStyle = NoStyle.Foreground(Separator)
	ToolParamKeyStyle = BaseStyle.Bold(true).Foreground(TextSecondary)
	ToolParamValStyle = BaseStyle
	ToolCompletedIcon = SuccessStyle.Bold(true)
	ToolSpinnerStyle = NoStyle.Foreground(Accent)
	ToolImageStyle = NoStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderSecondary)
	ToolImageHintStyle = MutedStyle.Italic(true)

	AppStyle = BaseStyle.Padding(0, 1)
	TitleStyle = BaseStyle.Bold(true).Foreground(Accent)
	StatusBarStyle = MutedStyle
	PauseBannerStyle = WarningStyle.Bold(true)
	EmptyStateStyle = MutedStyle.Italic(true)

	NotificationStyle = BaseStyle.
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Info)
	NotificationErrorStyle = NotificationStyle.BorderForeground(Error)
}
