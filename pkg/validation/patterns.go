package validation

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PatternError reports a pattern the regular expression engine rejected.
// Schema authors are trusted, so the host decides how to surface it.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("validation: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// PatternCache memoises compiled patterns. It is safe for concurrent use.
type PatternCache struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

// NewPatternCache returns a cache holding up to size patterns. A size below
// one yields a cache that compiles on every call.
func NewPatternCache(size int) *PatternCache {
	if size < 1 {
		return &PatternCache{}
	}
	cache, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return &PatternCache{}
	}
	return &PatternCache{cache: cache}
}

// Compile returns the compiled form of pattern. Matching is a search, not
// an anchored full match.
func (c *PatternCache) Compile(pattern string) (*regexp.Regexp, error) {
	if c != nil && c.cache != nil {
		if re, ok := c.cache.Get(pattern); ok {
			return re, nil
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	if c != nil && c.cache != nil {
		c.cache.Add(pattern, re)
	}
	return re, nil
}

// Len reports the number of cached patterns.
func (c *PatternCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
