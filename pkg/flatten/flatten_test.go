package flatten

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Flatten(t *testing.T) {
	flat := Flatten(map[string]interface{}{
		"a": map[string]interface{}{
			"b": []interface{}{
				map[string]interface{}{"c": 1},
				"x",
			},
			"d": true,
		},
		"e": nil,
	})

	require.Equal(t, map[string]interface{}{
		"a.b[0].c": 1,
		"a.b[1]":   "x",
		"a.d":      true,
		"e":        nil,
	}, flat)
}

func Test_FlattenNestedSlices(t *testing.T) {
	flat := Flatten(map[string]interface{}{
		"m": []interface{}{
			[]interface{}{1, 2},
		},
	})

	require.Equal(t, map[string]interface{}{
		"m[0][0]": 1,
		"m[0][1]": 2,
	}, flat)
}

func Test_FlattenEmpty(t *testing.T) {
	require.Empty(t, Flatten(nil))
	require.Empty(t, Flatten(map[string]interface{}{}))

	flat := Flatten(map[string]interface{}{
		"empty":     map[string]interface{}{},
		"alsoEmpty": []interface{}{},
	})
	require.Equal(t, map[string]interface{}{
		"empty":     map[string]interface{}{},
		"alsoEmpty": []interface{}{},
	}, flat)
}

func Test_Keys(t *testing.T) {
	keys := Keys(map[string]interface{}{
		"b": 1,
		"a": map[string]interface{}{
			"z": 2,
			"y": 3,
		},
	})

	require.Equal(t, []string{"a.y", "a.z", "b"}, keys)
}
