package invocations

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/docker/toolview/pkg/tui/components/thumbnail"
	"github.com/docker/toolview/pkg/tui/components/toolcommon"
	"github.com/docker/toolview/pkg/tui/styles"
)

const (
	DefaultWidth         = 80
	DefaultThumbnailCols = 32
	DefaultThumbnailRows = 8

	// blockGutter is the left border plus padding of a block.
	blockGutter = 2

	checkMark     = "✓"
	imageHint     = "click to open"
	idleSpinner   = "⠋"
	dividerGlyph  = "─"
	minInnerWidth = 8
)

// RenderOptions control the layout of a render pass.
type RenderOptions struct {
	Width int
	// Spinner is the current, already styled, spinner frame.
	Spinner       string
	ThumbnailCols int
	ThumbnailRows int
}

// ImageZone is the clickable area of a thumbnail, in cells relative to the
// top-left of the rendered output. Bottom and Right are exclusive.
type ImageZone struct {
	Key    string
	Src    string
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Contains reports whether the cell at x, y lies inside the zone.
func (z ImageZone) Contains(x, y int) bool {
	return x >= z.Left && x < z.Right && y >= z.Top && y < z.Bottom
}

// Rendered is the output of Render.
type Rendered struct {
	View   string
	Height int
	Zones  []ImageZone
}

// ZoneAt returns the image zone under x, y.
func (r Rendered) ZoneAt(x, y int) (ImageZone, bool) {
	for _, z := range r.Zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return ImageZone{}, false
}

// Render draws blocks one under the other. The same blocks and options always
// produce the same output.
func Render(blocks []Block, opts RenderOptions) Rendered {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	inner := max(width-blockGutter, minInnerWidth)

	var (
		parts []string
		zones []ImageZone
		line  int
	)
	for _, b := range blocks {
		body, imageLine, frame := renderBlock(b, inner, opts)
		rendered := styles.ToolBlockStyle.Render(body)

		if frame != "" {
			zones = append(zones, ImageZone{
				Key:    b.Key,
				Src:    b.ImageURI,
				Top:    line + imageLine,
				Bottom: line + imageLine + lipgloss.Height(frame),
				Left:   blockGutter,
				Right:  blockGutter + lipgloss.Width(frame),
			})
		}

		parts = append(parts, rendered)
		line += lipgloss.Height(rendered)
	}

	view := strings.Join(parts, "\n")
	return Rendered{
		View:   view,
		Height: line,
		Zones:  zones,
	}
}

type blockStyles struct {
	name    lipgloss.Style
	divider lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	check   lipgloss.Style
	hint    lipgloss.Style
}

func stylesFor(dimmed bool) blockStyles {
	s := blockStyles{
		name:    styles.ToolNameStyle,
		divider: styles.ToolDividerStyle,
		key:     styles.ToolParamKeyStyle,
		value:   styles.ToolParamValStyle,
		check:   styles.ToolCompletedIcon,
		hint:    styles.ToolImageHintStyle,
	}
	if dimmed {
		s.name = s.name.Inherit(styles.ToolPendingStyle)
		s.divider = s.divider.Inherit(styles.ToolPendingStyle)
		s.key = s.key.Inherit(styles.ToolPendingStyle)
		s.value = s.value.Inherit(styles.ToolPendingStyle)
		s.hint = s.hint.Inherit(styles.ToolPendingStyle)
	}
	return s
}

// renderBlock returns the block's body, the line the thumbnail frame starts
// on and the frame itself, empty when the block has no image.
func renderBlock(b Block, inner int, opts RenderOptions) (body string, imageLine int, frame string) {
	st := stylesFor(b.Dimmed)

	header := st.name.Render(toolcommon.TruncateText(b.DisplayName, inner-2))
	switch b.Indicator {
	case IndicatorSpinner:
		spin := opts.Spinner
		if spin == "" {
			spin = styles.ToolSpinnerStyle.Render(idleSpinner)
		}
		header += " " + spin
	case IndicatorCheck:
		header += " " + st.check.Render(checkMark)
	}

	lines := []string{
		header,
		st.divider.Render(strings.Repeat(dividerGlyph, inner)),
	}

	for _, p := range b.Params {
		key := p.Name + ":"
		valueWidth := max(inner-lipgloss.Width(key)-1, 1)
		value := toolcommon.TruncateText(toolcommon.SingleLine(p.Value), valueWidth)
		lines = append(lines, st.key.Render(key)+" "+st.value.Render(value))
	}

	if b.ImageURI != "" {
		cols := min(orDefault(opts.ThumbnailCols, DefaultThumbnailCols), inner-2)
		rows := orDefault(opts.ThumbnailRows, DefaultThumbnailRows)

		frame = styles.ToolImageStyle.Render(thumbnail.Render(b.ImageURI, cols, rows))
		imageLine = len(lines)
		lines = append(lines, frame, st.hint.Render(imageHint))
	}

	return strings.Join(lines, "\n"), imageLine, frame
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
