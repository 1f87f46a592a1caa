package value

// boxedKey is the property hosts use to wrap a raw value.
const boxedKey = "value"

// Boxed is a value wrapped with metadata by the host, e.g. a field value that
// also carries its validity flag.
type Boxed struct {
	Value any
	Meta  map[string]any
}

// Box wraps v without metadata.
func Box(v any) Boxed {
	return Boxed{Value: v}
}

// FromHost converts the host's {"value": V, ...} shape into a Boxed. Any other
// input is returned unchanged. Call it only where the host is known to box
// values: a plain object that happens to carry a "value" property is
// indistinguishable from a boxed one.
func FromHost(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	inner, ok := obj[boxedKey]
	if !ok {
		return v
	}
	var meta map[string]any
	for key, entry := range obj {
		if key == boxedKey {
			continue
		}
		if meta == nil {
			meta = make(map[string]any, len(obj)-1)
		}
		meta[key] = entry
	}
	return Boxed{Value: inner, Meta: meta}
}

// FromHostTree applies FromHost to v and to every object and array below it,
// so boxed siblings deep in a document are resolved once at the boundary. The
// wrapped value of a box is walked too; its metadata is kept as is.
func FromHostTree(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		if _, ok := typed[boxedKey]; ok {
			boxed := FromHost(typed).(Boxed)
			boxed.Value = FromHostTree(boxed.Value)
			return boxed
		}
		out := make(map[string]any, len(typed))
		for key, entry := range typed {
			out[key] = FromHostTree(entry)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			out[i] = FromHostTree(entry)
		}
		return out
	default:
		return v
	}
}

// Unbox returns the wrapped value of a Boxed, or v itself.
func Unbox(v any) any {
	switch b := v.(type) {
	case Boxed:
		return b.Value
	case *Boxed:
		if b == nil {
			return Undefined
		}
		return b.Value
	default:
		return v
	}
}

// IsBoxed reports whether v is a Boxed value.
func IsBoxed(v any) bool {
	return KindOf(v) == KindBoxed
}

// Plain converts v into a tree the encoding packages can serialise: Boxed
// values are unwrapped, Undefined object entries are dropped and Undefined
// array entries become null.
func Plain(v any) any {
	switch typed := Unbox(v).(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, entry := range typed {
			if IsUndefined(Unbox(entry)) {
				continue
			}
			out[key] = Plain(entry)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			if IsUndefined(Unbox(entry)) {
				continue
			}
			out[i] = Plain(entry)
		}
		return out
	case undefined:
		return nil
	default:
		return typed
	}
}
