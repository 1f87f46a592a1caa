// Package formstate bundles the schema-driven editor rules (default values,
// validation messages, conditional visibility, item titles and search
// filters) behind a single Engine configured with functional options.
package formstate

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formstate/pkg/defaults"
	"github.com/goliatone/go-formstate/pkg/filter"
	"github.com/goliatone/go-formstate/pkg/locale"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/title"
	"github.com/goliatone/go-formstate/pkg/validation"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// Option customises the Engine configuration.
type Option func(*Engine)

// WithLocale selects the message table. Nil keeps locale.Default.
func WithLocale(l *locale.Locale) Option {
	return func(e *Engine) {
		e.locale = l
	}
}

// WithLogger routes engine diagnostics to logger. The default logger
// discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPatternCacheSize bounds the compiled-pattern cache. Zero disables it.
func WithPatternCacheSize(size int) Option {
	return func(e *Engine) {
		e.cacheSize = &size
	}
}

// WithPlainTitles strips markup from every title and label the engine
// derives.
func WithPlainTitles() Option {
	return func(e *Engine) {
		e.plainTitles = true
	}
}

// WithHumanizedLabels turns property keys into words when a label falls back
// to the key, e.g. "first_name" becomes "First Name".
func WithHumanizedLabels() Option {
	return func(e *Engine) {
		e.humanize = true
	}
}

// Engine evaluates editor rules against a schema and value tree. It is
// immutable after New and safe for concurrent use.
type Engine struct {
	locale      *locale.Locale
	logger      *log.Logger
	cacheSize   *int
	plainTitles bool
	humanize    bool
	validator   *validation.Validator
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	e.locale = locale.Or(e.locale)
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	validatorOpts := []validation.Option{validation.WithLocale(e.locale)}
	if e.cacheSize != nil {
		validatorOpts = append(validatorOpts, validation.WithPatternCacheSize(*e.cacheSize))
	}
	e.validator = validation.New(validatorOpts...)
	return e
}

// Locale returns the message table in use.
func (e *Engine) Locale() *locale.Locale {
	return e.locale
}

// Default returns the initial value of a node. See defaults.Resolve.
func (e *Engine) Default(required bool, s schema.Schema, initial any) any {
	return defaults.Resolve(required, s, initial)
}

// Toggle flips an optional node between absent and its required default.
func (e *Engine) Toggle(current any, s schema.Schema, initial any) any {
	return defaults.Toggle(current, s, initial)
}

// Validate returns the first broken rule of v as a localized message, or ""
// when v is valid. Only an invalid pattern yields an error.
func (e *Engine) Validate(v any, s schema.Schema, required bool) (string, error) {
	msg, err := e.validator.Validate(v, s, required)
	if err != nil {
		e.logger.Debug("validate: invalid pattern", "err", err)
		return "", err
	}
	return msg, nil
}

// Visibility resolves whether property is required, optional or hidden.
func (e *Engine) Visibility(required []string, obj map[string]any, s schema.Schema, property string) visibility.Visibility {
	return visibility.Resolve(required, obj, s, property)
}

// Title derives an item title from the candidate properties of obj, or ""
// when none is usable.
func (e *Engine) Title(obj map[string]any, candidates []title.Candidate) string {
	derived, ok := title.Find(obj, candidates)
	if !ok {
		return ""
	}
	return e.plain(derived)
}

// Label picks the text shown for a node: the derived title, then the schema
// title, then the property key.
func (e *Engine) Label(property string, s schema.Schema, derived string) string {
	fallback := property
	if e.humanize {
		fallback = title.Humanize(property)
	}
	return e.plain(title.Get(derived, s.Title, fallback))
}

func (e *Engine) plain(text string) string {
	if !e.plainTitles {
		return text
	}
	return title.Sanitize(text)
}

// FilterObject reports whether an object property matches the search needle.
func (e *Engine) FilterObject(property string, s schema.Schema, needle string) bool {
	return filter.Object(property, s, needle)
}

// FilterArray reports whether an array item matches the search needle.
func (e *Engine) FilterArray(v any, index int, s schema.Schema, needle string) bool {
	return filter.Array(v, index, s, needle)
}

// Options lists the selectable entries of an enum schema.
func (e *Engine) Options(s schema.Schema) []schema.Option {
	return schema.Options(s)
}
