// Package attrs reads values back out of slog-style key/value attribute slices.
package attrs

import (
	"fmt"
	"strconv"
)

// Lookup returns the value following key in a [key1, value1, key2, value2, ...]
// slice. Non-string keys are skipped.
func Lookup(attrs []any, key string) (any, bool) {
	for i := 0; i < len(attrs)-1; i += 2 {
		if k, ok := attrs[i].(string); ok && k == key {
			return attrs[i+1], true
		}
	}
	return nil, false
}

// ExtractString renders the value for key as a string. Strings, integers and
// fmt.Stringer values are supported; anything else, or a missing key, yields "".
func ExtractString(attrs []any, key string) string {
	v, ok := Lookup(attrs, key)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}
