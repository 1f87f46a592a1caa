// Package filter implements the substring predicates behind the search box
// of object and array editors.
package filter

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/title"
	"github.com/goliatone/go-formstate/pkg/value"
)

// MinItemCount is the smallest collection size for which a search box is
// offered.
const MinItemCount = 6

// Enabled reports whether a collection of count entries is large enough to
// be filtered.
func Enabled(count int) bool {
	return count >= MinItemCount
}

// Object reports whether a property matches needle by key, title or
// description. An empty needle matches everything.
func Object(property string, s schema.Schema, needle string) bool {
	return needle == "" ||
		strings.Contains(property, needle) ||
		(s.Title != "" && strings.Contains(s.Title, needle)) ||
		(s.Description != "" && strings.Contains(s.Description, needle))
}

// Array reports whether the item at index matches needle. Items match by
// index, by their string or numeric value, and object items by their derived
// title.
func Array(v any, index int, s schema.Schema, needle string) bool {
	if needle == "" || strings.Contains(strconv.Itoa(index), needle) {
		return true
	}

	switch s.Type {
	case schema.TypeString:
		str, ok := v.(string)
		return ok && strings.Contains(str, needle)
	case schema.TypeNumber, schema.TypeInteger:
		return strings.Contains(value.Stringify(v), needle)
	case schema.TypeObject:
		derived, _ := title.FromSchema(v, s)
		return strings.Contains(title.Get(derived, s.Title), needle)
	default:
		return false
	}
}
