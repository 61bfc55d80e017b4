package toolcommon

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TruncateText cuts text down to maxWidth cells, ending it with an ellipsis
// when something was dropped.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(text)
	end := fitRunes(runes, 0, maxWidth-1)
	return string(runes[:end]) + "…"
}

// fitRunes returns the index one past the last rune, starting at start, that
// still fits in width cells. It always advances by at least one rune.
func fitRunes(runes []rune, start, width int) int {
	end := start
	used := 0
	for end < len(runes) {
		w := runeWidth(runes[end])
		if used+w > width {
			break
		}
		used += w
		end++
	}

	if end == start && start < len(runes) {
		end = start + 1
	}
	return end
}

// WrapLines splits text into lines of at most width cells. Existing line
// breaks are kept.
func WrapLines(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if lipgloss.Width(line) <= width {
			lines = append(lines, line)
			continue
		}

		runes := []rune(line)
		for start := 0; start < len(runes); {
			end := fitRunes(runes, start, width)
			lines = append(lines, string(runes[start:end]))
			start = end
		}
	}
	return lines
}

// SingleLine collapses line breaks and tabs so a value fits on one row.
func SingleLine(text string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
}
