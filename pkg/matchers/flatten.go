package matchers

import (
	"fmt"
	"sort"
)

// FlattenHierarchy flattens a naming hierarchy into an ordered sequence of
// string segments. Slices flatten recursively in order. Map entries
// contribute their key followed by the flattened value, so
// map[string]any{"user": "birthday"} becomes ["user", "birthday"].
// Multi-entry maps are walked in sorted key order to keep the result
// deterministic. Scalars contribute their string form; nil contributes
// nothing.
func FlattenHierarchy(values ...any) []string {
	var out []string
	for _, v := range values {
		out = appendFlattened(out, v)
	}
	return out
}

func appendFlattened(out []string, v any) []string {
	switch v := v.(type) {
	case nil:
		return out
	case string:
		return append(out, v)
	case []string:
		return append(out, v...)
	case []any:
		for _, e := range v {
			out = appendFlattened(out, e)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, k)
			out = appendFlattened(out, v[k])
		}
		return out
	case fmt.Stringer:
		return append(out, v.String())
	default:
		return append(out, fmt.Sprint(v))
	}
}
