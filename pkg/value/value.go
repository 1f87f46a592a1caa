package value

import (
	"encoding/json"
	"math"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. It is distinct from nil, which models JSON
// null.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Kind classifies a value.
type Kind int

const (
	KindUnknown Kind = iota
	KindUndefined
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindBoxed
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindBoxed:     "boxed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case bool:
		return KindBool
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	case Boxed, *Boxed:
		return KindBoxed
	}
	if _, ok := AsNumber(v); ok {
		return KindNumber
	}
	return KindUnknown
}

// AsNumber converts any Go numeric type or json.Number into a float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// IsInteger reports whether f has no fractional part.
func IsInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

// Lookup reads key from obj, returning Undefined when obj is nil or the key
// is missing.
func Lookup(obj map[string]any, key string) any {
	if obj == nil {
		return Undefined
	}
	v, ok := obj[key]
	if !ok {
		return Undefined
	}
	return v
}

// AsObject returns v as an object, unwrapping nothing.
func AsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// AsArray returns v as an array, unwrapping nothing.
func AsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}
