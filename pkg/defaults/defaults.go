// Package defaults computes the value a schema node takes when it is first
// materialised in the editor.
package defaults

import (
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

// Resolve returns the initial value for a node. The result always matches
// s.Type, or is value.Undefined when the node may legitimately stay absent.
//
// Precedence: a usable initial value, then absence for optional nodes, then
// a type-matching schema default, then the type fallback.
func Resolve(required bool, s schema.Schema, initial any) any {
	if !value.IsUndefined(initial) {
		if v, ok := fromInitial(s, initial); ok {
			return v
		}
	}

	if !required {
		return value.Undefined
	}

	if s.Default != nil && matchesType(s.Type, s.Default) {
		return s.Default
	}

	return fallback(s)
}

// Toggle flips an optional node: an absent node receives its required
// default, a present one becomes absent.
func Toggle(current any, s schema.Schema, initial any) any {
	if value.IsUndefined(current) {
		return Resolve(true, s, initial)
	}
	return value.Undefined
}

func fromInitial(s schema.Schema, initial any) (any, bool) {
	switch s.Type {
	case schema.TypeObject, schema.TypeArray,
		schema.TypeNumber, schema.TypeInteger,
		schema.TypeBoolean, schema.TypeString:
		raw := value.Unbox(initial)
		if matchesType(s.Type, raw) {
			return raw, true
		}
		return nil, false
	case schema.TypeAny:
		return value.Unbox(initial), true
	default:
		if initial == nil {
			return nil, true
		}
		return nil, false
	}
}

func matchesType(t schema.Type, v any) bool {
	kind := value.KindOf(v)
	switch t {
	case schema.TypeObject:
		return kind == value.KindObject
	case schema.TypeArray:
		return kind == value.KindArray
	case schema.TypeNumber, schema.TypeInteger:
		return kind == value.KindNumber
	case schema.TypeBoolean:
		return kind == value.KindBool
	case schema.TypeString:
		return kind == value.KindString
	default:
		return kind == value.KindNull
	}
}

func fallback(s schema.Schema) any {
	switch s.Type {
	case schema.TypeObject:
		out := make(map[string]any, len(s.Properties))
		for _, prop := range s.Properties {
			out[prop.ValueKey()] = value.Undefined
		}
		return out
	case schema.TypeArray:
		return []any{}
	case schema.TypeNumber, schema.TypeInteger:
		if len(s.Enum) > 0 {
			return s.Enum[0]
		}
		return 0.0
	case schema.TypeBoolean:
		return false
	case schema.TypeString:
		if len(s.Enum) > 0 {
			return s.Enum[0]
		}
		return ""
	default:
		return nil
	}
}
