// Package locale provides the message tables the engine formats validation
// messages from. Locales are explicit values passed by reference; Default is
// the single fallback used when no locale, or no entry, is available.
package locale

import (
	"strconv"
	"strings"
)

// Message keys understood by the engine.
const (
	KeyMinLength     = "error.minLength"
	KeyMaxLength     = "error.maxLength"
	KeyPattern       = "error.pattern"
	KeyMinimum       = "error.minimum"
	KeyMaximum       = "error.maximum"
	KeyLargerThan    = "error.largerThan"
	KeySmallerThan   = "error.smallerThan"
	KeyMinItems      = "error.minItems"
	KeyUniqueItems   = "error.uniqueItems"
	KeyMultipleOf    = "error.multipleOf"
	KeyMinProperties = "error.minProperties"
	KeyMaxProperties = "error.maxProperties"

	KeyCollapse  = "button.collapse"
	KeyExpand    = "button.expand"
	KeyAdd       = "button.add"
	KeyDelete    = "button.delete"
	KeyNotExists = "info.notExists"
	KeyTrue      = "info.true"
	KeyFalse     = "info.false"
	KeySearch    = "info.search"
)

// Locale is a flat table of dotted message keys to templates with
// positional placeholders {0}, {1}, ...
type Locale struct {
	Name     string
	Messages map[string]string
}

// Default is the English locale. It backs every lookup that a nil locale or a
// partial custom locale cannot answer.
var Default = &Locale{
	Name: "en",
	Messages: map[string]string{
		KeyCollapse: "Collapse",
		KeyExpand:   "Expand",
		KeyAdd:      "Add",
		KeyDelete:   "Delete",

		KeyMinLength:     "Value must be at least {0} characters long.",
		KeyMaxLength:     "Value must be at most {0} characters long.",
		KeyPattern:       "Value doesn't match the pattern {0}.",
		KeyMinimum:       "Value must be >= {0}.",
		KeyMaximum:       "Value must be <= {0}.",
		KeyLargerThan:    "Value must be > {0}.",
		KeySmallerThan:   "Value must be < {0}.",
		KeyMinItems:      "The length of the array must be >= {0}.",
		KeyUniqueItems:   "The item in {0} and {1} must not be same.",
		KeyMultipleOf:    "Value must be multiple value of {0}.",
		KeyMinProperties: "Properties count must be >= {0}.",
		KeyMaxProperties: "Properties count must be <= {0}.",

		KeyNotExists: "Not defined",
		KeyTrue:      "True",
		KeyFalse:     "False",
		KeySearch:    "Search",
	},
}

// New builds a locale from a flat message table.
func New(name string, messages map[string]string) *Locale {
	cloned := make(map[string]string, len(messages))
	for key, msg := range messages {
		cloned[key] = msg
	}
	return &Locale{Name: name, Messages: cloned}
}

// Or returns l, or Default when l is nil.
func Or(l *Locale) *Locale {
	if l == nil {
		return Default
	}
	return l
}

// Message returns the template for key. Missing entries resolve through
// Default; a key unknown to both is returned as is.
func (l *Locale) Message(key string) string {
	if l != nil {
		if msg, ok := l.Messages[key]; ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if msg, ok := Default.Messages[key]; ok {
		return msg
	}
	return key
}

// Format returns the template for key with the first occurrence of each
// positional placeholder replaced by the matching argument.
func (l *Locale) Format(key string, args ...string) string {
	return Substitute(l.Message(key), args...)
}

// Substitute replaces the first occurrence of {i} with args[i].
func Substitute(template string, args ...string) string {
	out := template
	for i, arg := range args {
		out = strings.Replace(out, "{"+strconv.Itoa(i)+"}", arg, 1)
	}
	return out
}
