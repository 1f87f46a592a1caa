// Package title derives a short display title for object and array items
// from their current value.
package title

import (
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

const (
	maxLength     = 33
	truncatedTo   = 30
	truncatedMark = "..."
)

// Candidate is a property whose value may serve as a title.
type Candidate struct {
	Property string
	Schema   schema.Schema
}

// Find returns the first usable title among candidates. An enum value with a
// non-empty entry in EnumTitles yields that entry; otherwise a non-empty
// string value is used as is. The result is truncated.
func Find(obj map[string]any, candidates []Candidate) (string, bool) {
	if obj == nil {
		return "", false
	}
	for _, candidate := range candidates {
		raw := value.Unbox(value.Lookup(obj, candidate.Property))
		if enumTitle, ok := fromEnum(raw, candidate.Schema); ok {
			return Truncate(enumTitle), true
		}
		if str, ok := raw.(string); ok && str != "" {
			return Truncate(str), true
		}
	}
	return "", false
}

func fromEnum(raw any, s schema.Schema) (string, bool) {
	switch s.Type {
	case schema.TypeNumber, schema.TypeInteger, schema.TypeString:
	default:
		return "", false
	}
	if len(s.Enum) == 0 || len(s.EnumTitles) == 0 {
		return "", false
	}
	for i, entry := range s.Enum {
		if !value.StrictEqual(entry, raw) {
			continue
		}
		if i < len(s.EnumTitles) && s.EnumTitles[i] != "" {
			return s.EnumTitles[i], true
		}
		return "", false
	}
	return "", false
}

// Candidates lists the properties of an object schema in declaration order.
func Candidates(s schema.Schema) []Candidate {
	out := make([]Candidate, 0, len(s.Properties))
	for _, prop := range s.Properties {
		out = append(out, Candidate{Property: prop.Name, Schema: prop.Schema})
	}
	return out
}

// FromSchema returns the first declared property of s whose value in v is a
// non-empty string, truncated. Enum titles are not consulted.
func FromSchema(v any, s schema.Schema) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	for _, prop := range s.Properties {
		if str, ok := value.Unbox(value.Lookup(obj, prop.Name)).(string); ok && str != "" {
			return Truncate(str), true
		}
	}
	return "", false
}

// Truncate shortens titles longer than 33 characters to their first 30
// characters followed by "...".
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:truncatedTo]) + truncatedMark
}

// Get returns the first candidate that is neither Undefined, null nor the
// empty string, stringified. It returns "" when none qualifies.
//
// The empty check is strict: 0 and false are not skipped and become the
// titles "0" and "false", unlike a loose comparison against "".
func Get(candidates ...any) string {
	for _, candidate := range candidates {
		if value.IsUndefined(candidate) || candidate == nil {
			continue
		}
		if str, ok := candidate.(string); ok && str == "" {
			continue
		}
		return value.Stringify(candidate)
	}
	return ""
}
