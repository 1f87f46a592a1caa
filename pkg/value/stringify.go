package value

import (
	"math"
	"strconv"
	"strings"
)

// Stringify renders v the way the editor displays raw values: integral
// numbers without a fraction, arrays joined by commas and objects as an
// opaque placeholder.
func Stringify(v any) string {
	switch typed := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case []any:
		parts := make([]string, len(typed))
		for i, entry := range typed {
			switch KindOf(entry) {
			case KindNull, KindUndefined:
				parts[i] = ""
			default:
				parts[i] = Stringify(entry)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	case Boxed:
		return Stringify(typed.Value)
	}
	if f, ok := AsNumber(v); ok {
		return FormatNumber(f)
	}
	return "[object Object]"
}

// FormatNumber formats f with the shortest representation that round-trips.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
