package title

import (
	"strings"
	"unicode"
)

// Humanize converts a property key into a label. It splits on underscores,
// dashes, whitespace and camelCase or letter/digit boundaries, then title
// cases every word: "first_name" and "firstName" both become "First Name".
func Humanize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var segments []string
	for _, word := range words {
		for _, part := range splitBoundaries(word) {
			segments = append(segments, capitalize(part))
		}
	}
	return strings.Join(segments, " ")
}

func splitBoundaries(word string) []string {
	runes := []rune(word)
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := (unicode.IsLower(prev) && unicode.IsUpper(cur)) ||
			(unicode.IsLetter(prev) && unicode.IsDigit(cur)) ||
			(unicode.IsDigit(prev) && unicode.IsLetter(cur))
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
