package toolcommon

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DisplayName turns a tool or parameter identifier into a label: underscores
// become spaces and the first character is upper-cased. The rest of the
// string is left alone, so "get_URL" becomes "Get URL".
func DisplayName(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")
	if spaced == "" {
		return ""
	}

	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(spaced, -1)
	return strings.ToUpper(first) + rest
}

// FormatValue converts an argument value to the string shown next to its
// name. It is a display conversion, not a serializer: lists are joined with
// commas and objects are flattened on one line.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			// Null elements leave an empty slot: [1, null, 2] shows as "1,,2".
			if elem != nil {
				parts[i] = FormatValue(elem)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + FormatValue(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return "null"
		}
		parts := make([]string, 0, v.Len())
		for k, elem := range v.FromOldest() {
			parts = append(parts, k+": "+FormatValue(elem))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat prints plain decimals, switching to exponent form ("1e+21",
// "1e-7") at or above 1e21 and below 1e-6.
func formatFloat(f float64, bitSize int) string {
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
