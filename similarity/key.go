package similarity

import (
	"sort"
	"strings"
)

// PairKey builds the score-pool key for two item codes. The pair is sorted
// before joining, so the key is symmetric in its arguments.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// SpecKey normalizes a specification map into the result-pool key. Pairs
// render as k=v, sorted by key and comma-joined, so maps with equal
// contents produce equal keys regardless of insertion order.
func SpecKey(specs map[string]string) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(specs[k])
	}
	return sb.String()
}
