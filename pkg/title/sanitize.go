package title

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// Sanitize strips every tag from a derived title and returns plain text.
// Script and style bodies are dropped along with their tags.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textPolicy().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textPolicy() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return plainPolicy
}
