// Package visibility decides whether an object property is required,
// optional or hidden, taking the parent's required list and the
// requiredWhen/optionalWhen conditions of its schema into account.
package visibility

import (
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

// Visibility is the tri-state outcome of Resolve.
type Visibility int

const (
	Optional Visibility = iota
	Required
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Required:
		return "required"
	case Hidden:
		return "hidden"
	default:
		return "optional"
	}
}

// MarshalText encodes the visibility by name.
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Resolve computes the visibility of property on the object schema s, given
// the parent's required list and the current object value.
//
// The required list wins. A requiredWhen condition that holds makes the
// property Required and one that fails hides it; an optionalWhen condition
// that holds keeps it Optional and one that fails hides it. Conditions whose
// left side is not a declared property, and requiredWhen conditions with an
// unknown operator, are skipped.
func Resolve(required []string, obj map[string]any, s schema.Schema, property string) Visibility {
	for _, name := range required {
		if name == property {
			return Required
		}
	}
	if obj == nil {
		return Optional
	}
	prop, ok := s.Property(property)
	if !ok {
		return Optional
	}

	if cond := prop.RequiredWhen; cond != nil && s.HasProperty(cond.Property) {
		if holds, recognized := Evaluate(*cond, value.Lookup(obj, cond.Property)); recognized {
			if holds {
				return Required
			}
			return Hidden
		}
	}

	if cond := prop.OptionalWhen; cond != nil && s.HasProperty(cond.Property) {
		if holds, recognized := Evaluate(*cond, value.Lookup(obj, cond.Property)); recognized {
			if holds {
				return Optional
			}
			return Hidden
		}
	}

	return Optional
}

// Evaluate applies cond to the sibling value. Boxed siblings are compared by
// their wrapped value. recognized is false for operators the resolver does
// not understand.
func Evaluate(cond schema.Condition, sibling any) (holds, recognized bool) {
	sibling = value.Unbox(sibling)
	switch cond.Operator {
	case schema.OperatorStrictEqual, schema.OperatorEqual:
		return value.StrictEqual(sibling, cond.Operand), true
	case schema.OperatorIn:
		candidates, ok := cond.Operand.([]any)
		if !ok {
			return false, true
		}
		for _, candidate := range candidates {
			if value.StrictEqual(sibling, candidate) {
				return true, true
			}
		}
		return false, true
	case schema.OperatorIsUndefined:
		return value.IsUndefined(sibling), true
	default:
		return false, false
	}
}

// Entry is one property of an object together with its resolved visibility.
type Entry struct {
	Property   string
	Schema     schema.Schema
	Visibility Visibility
}

// Plan lists the properties of s in display order with their visibility.
// Hidden properties are included; callers decide whether to skip them.
func Plan(required []string, obj map[string]any, s schema.Schema) []Entry {
	ordered := schema.Ordered(s.Properties)
	entries := make([]Entry, 0, len(ordered))
	for _, prop := range ordered {
		entries = append(entries, Entry{
			Property:   prop.Name,
			Schema:     prop.Schema,
			Visibility: Resolve(required, obj, s, prop.Name),
		})
	}
	return entries
}
