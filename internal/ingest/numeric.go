package ingest

import (
	"strconv"
	"strings"
)

// ToInt converts a loosely-typed JSON value to an int. Malformed, absent or
// non-numeric values degrade to 0 instead of failing the load; callers never
// see an error from coercion.
func ToInt(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToFloat is the float counterpart of ToInt, with a 0.0 fallback
func ToFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
