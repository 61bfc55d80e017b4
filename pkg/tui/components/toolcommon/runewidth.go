package toolcommon

import (
	"github.com/clipperhouse/displaywidth"
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// runeWidth is the number of terminal cells r occupies.
func runeWidth(r rune) int {
	switch {
	case r >= 0x20 && r < 0x7f:
		return 1
	case r < 0x20 || r == 0x7f, r >= 0x80 && r < 0xa0:
		// C0, DEL and C1 controls
		return 0
	case r <= 0x24f:
		// Latin-1 supplement and Latin extended A/B
		return 1
	}

	cluster := graphemes.FromString(string(r)).First()
	return displaywidth.String(cluster)
}
