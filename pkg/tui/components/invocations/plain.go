package invocations

import (
	"strings"

	"github.com/docker/toolview/pkg/tui/components/thumbnail"
)

// PlainText renders blocks without any styling, one paragraph per block:
//
//	## Take screenshot [done]
//	---
//	- Url: https://example.com
//	[image image/png]
func PlainText(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString("## ")
		sb.WriteString(b.DisplayName)
		switch b.Indicator {
		case IndicatorSpinner:
			sb.WriteString(" [running]")
		case IndicatorCheck:
			sb.WriteString(" [done]")
		}
		sb.WriteString("\n---\n")

		for _, p := range b.Params {
			sb.WriteString("- ")
			sb.WriteString(p.Name)
			sb.WriteString(": ")
			sb.WriteString(p.Value)
			sb.WriteByte('\n')
		}

		if b.ImageURI != "" {
			mediaType, _, _ := thumbnail.ParseDataURI(b.ImageURI)
			sb.WriteString(thumbnail.Placeholder(mediaType))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
