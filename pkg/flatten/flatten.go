// Package flatten folds nested maps and slices into flat path-to-value
// maps using the "a.b[2].c" selector notation.
package flatten

import (
	"fmt"
	"sort"
)

const PathSeparator = "."

// Flatten walks a nested structure of maps and slices and returns a flat
// map from paths to leaf values. Map keys are joined verbatim with
// PathSeparator, slice elements append an "[i]" index to their parent
// path. Empty maps and slices below the root are kept as leaves.
func Flatten(msi map[string]interface{}) map[string]interface{} {
	flat := make(map[string]interface{})
	walk(flat, "", msi)

	return flat
}

// Keys returns the flattened paths of msi, sorted.
func Keys(msi map[string]interface{}) []string {
	flat := Flatten(msi)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func walk(flat map[string]interface{}, path string, value interface{}) {
	switch t := value.(type) {
	case map[string]interface{}:
		if len(t) == 0 && path != "" {
			flat[path] = t
			return
		}
		for k, v := range t {
			walk(flat, join(path, k), v)
		}
	case []interface{}:
		if len(t) == 0 && path != "" {
			flat[path] = t
			return
		}
		for i, v := range t {
			walk(flat, fmt.Sprintf("%s[%d]", path, i), v)
		}
	default:
		flat[path] = value
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + PathSeparator + key
}
