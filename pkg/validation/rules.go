package validation

import (
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-formstate/pkg/locale"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

// RequiredMessage is reported for an absent required string. It is not
// drawn from the locale table.
const RequiredMessage = "Field is required"

// String checks minLength, maxLength and pattern, in that order. Absent and
// null values skip the checks; an absent required value reports
// RequiredMessage. Only an invalid pattern returns an error.
func (v *Validator) String(val any, s schema.Schema, required bool) (string, error) {
	if str, ok := val.(string); ok {
		length := utf8.RuneCountInString(str)
		if s.MinLength != nil && length < *s.MinLength {
			return v.locale.Format(locale.KeyMinLength, strconv.Itoa(*s.MinLength)), nil
		}
		if s.MaxLength != nil && length > *s.MaxLength {
			return v.locale.Format(locale.KeyMaxLength, strconv.Itoa(*s.MaxLength)), nil
		}
		if s.Pattern != nil {
			re, err := v.patterns.Compile(*s.Pattern)
			if err != nil {
				return "", err
			}
			if !re.MatchString(str) {
				return v.locale.Format(locale.KeyPattern, *s.Pattern), nil
			}
		}
	}
	if value.IsUndefined(val) && required {
		return RequiredMessage, nil
	}
	return "", nil
}

// Number checks the lower bound, the upper bound and multipleOf. An
// exclusive bound replaces the inclusive one entirely when both are set, and
// applies on its own when the inclusive one is absent.
func (v *Validator) Number(val any, s schema.Schema) string {
	n, ok := value.AsNumber(val)
	if !ok {
		return ""
	}

	switch {
	case s.ExclusiveMinimum != nil:
		if n <= *s.ExclusiveMinimum {
			return v.locale.Format(locale.KeyLargerThan, value.FormatNumber(*s.ExclusiveMinimum))
		}
	case s.Minimum != nil:
		if n < *s.Minimum {
			return v.locale.Format(locale.KeyMinimum, value.FormatNumber(*s.Minimum))
		}
	}

	switch {
	case s.ExclusiveMaximum != nil:
		if n >= *s.ExclusiveMaximum {
			return v.locale.Format(locale.KeySmallerThan, value.FormatNumber(*s.ExclusiveMaximum))
		}
	case s.Maximum != nil:
		if n > *s.Maximum {
			return v.locale.Format(locale.KeyMaximum, value.FormatNumber(*s.Maximum))
		}
	}

	if s.MultipleOf != nil && *s.MultipleOf > 0 && !value.IsInteger(n / *s.MultipleOf) {
		return v.locale.Format(locale.KeyMultipleOf, value.FormatNumber(*s.MultipleOf))
	}
	return ""
}

// Array checks minItems and uniqueItems. maxItems is not enforced here; editors
// use it to stop adding items. The duplicate scan is quadratic and reports the
// first pair (j, i) with j < i.
func (v *Validator) Array(val any, s schema.Schema) string {
	items, ok := val.([]any)
	if !ok {
		return ""
	}

	if s.MinItems != nil && len(items) < *s.MinItems {
		return v.locale.Format(locale.KeyMinItems, strconv.Itoa(*s.MinItems))
	}
	if s.UniqueItems {
		if j, i, found := FirstDuplicate(items); found {
			return v.locale.Format(locale.KeyUniqueItems, strconv.Itoa(j), strconv.Itoa(i))
		}
	}
	return ""
}

// FirstDuplicate returns the first pair of indexes j < i holding the same
// value, scanning i in ascending order.
func FirstDuplicate(items []any) (int, int, bool) {
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if value.IsSame(items[j], items[i]) {
				return j, i, true
			}
		}
	}
	return 0, 0, false
}

// Object checks minProperties and maxProperties against the number of
// properties holding a defined value.
func (v *Validator) Object(val any, s schema.Schema) string {
	obj, ok := val.(map[string]any)
	if !ok {
		return ""
	}

	count := 0
	for _, entry := range obj {
		if !value.IsUndefined(entry) {
			count++
		}
	}

	if s.MinProperties != nil && count < *s.MinProperties {
		return v.locale.Format(locale.KeyMinProperties, strconv.Itoa(*s.MinProperties))
	}
	if s.MaxProperties != nil && count > *s.MaxProperties {
		return v.locale.Format(locale.KeyMaxProperties, strconv.Itoa(*s.MaxProperties))
	}
	return ""
}
