// Package validation evaluates the constraints of a schema node against its
// current value and reports the first broken rule as a localized message.
// An empty message means the value is valid.
package validation

import (
	"github.com/goliatone/go-formstate/pkg/locale"
	"github.com/goliatone/go-formstate/pkg/schema"
)

const defaultPatternCacheSize = 256

// Option configures a Validator.
type Option func(*config)

type config struct {
	locale    *locale.Locale
	patterns  *PatternCache
	cacheSize int
}

// WithLocale selects the message table. A nil locale uses locale.Default.
func WithLocale(l *locale.Locale) Option {
	return func(cfg *config) {
		cfg.locale = l
	}
}

// WithPatternCache shares a compiled-pattern cache between validators.
func WithPatternCache(cache *PatternCache) Option {
	return func(cfg *config) {
		cfg.patterns = cache
	}
}

// WithPatternCacheSize bounds the number of compiled patterns kept in memory.
// Zero or negative sizes disable caching.
func WithPatternCacheSize(size int) Option {
	return func(cfg *config) {
		cfg.cacheSize = size
	}
}

// Validator evaluates error rules. It holds no per-call state and is safe
// for concurrent use.
type Validator struct {
	locale   *locale.Locale
	patterns *PatternCache
}

// New constructs a Validator.
func New(options ...Option) *Validator {
	cfg := config{cacheSize: defaultPatternCacheSize}
	for _, opt := range options {
		opt(&cfg)
	}

	patterns := cfg.patterns
	if patterns == nil {
		patterns = NewPatternCache(cfg.cacheSize)
	}

	return &Validator{
		locale:   locale.Or(cfg.locale),
		patterns: patterns,
	}
}

// Locale returns the message table in use.
func (v *Validator) Locale() *locale.Locale {
	return v.locale
}

// Validate dispatches on the schema type. Boolean, null and any schemas
// carry no value constraints.
func (v *Validator) Validate(val any, s schema.Schema, required bool) (string, error) {
	switch s.Type {
	case schema.TypeString:
		return v.String(val, s, required)
	case schema.TypeNumber, schema.TypeInteger:
		return v.Number(val, s), nil
	case schema.TypeArray:
		return v.Array(val, s), nil
	case schema.TypeObject:
		return v.Object(val, s), nil
	default:
		return "", nil
	}
}
