package schema

import (
	"sort"

	"github.com/goliatone/go-formstate/pkg/value"
)

// Type is the tag of a Schema node. The empty Type describes an Any node.
type Type string

const (
	TypeAny     Type = ""
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
)

// IsNumeric reports whether t is number or integer.
func (t Type) IsNumeric() bool {
	return t == TypeNumber || t == TypeInteger
}

// Schema describes the shape, constraints and display hints of one node in
// the value tree. Type-specific fields are ignored for other types.
type Schema struct {
	Type        Type
	Title       string
	Description string
	// Default is nil when absent. A JSON null default behaves identically.
	Default       any
	ReadOnly      bool
	PropertyOrder *float64
	RequiredWhen  *Condition
	OptionalWhen  *Condition
	// PropertyName overrides the key used in the parent object's value.
	PropertyName string
	OneOf        []Schema
	Format       string
	Extensions   map[string]any

	// Object
	Properties           []Property
	Required             []string
	MinProperties        *int
	MaxProperties        *int
	AdditionalProperties *bool

	// Array
	Items       *Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
	TableMode   bool

	// Number, string and select-style array
	Enum       []any
	EnumTitles []string

	// Number
	Minimum          *float64
	ExclusiveMinimum *float64
	Maximum          *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
	Step             *Step

	// String
	MinLength *int
	MaxLength *int
	Pattern   *string
}

// Property is a named entry of an object schema.
type Property struct {
	Name   string
	Schema Schema
}

// Property returns the schema declared for name.
func (s Schema) Property(name string) (Schema, bool) {
	for _, prop := range s.Properties {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return Schema{}, false
}

// HasProperty reports whether name is declared on the object schema.
func (s Schema) HasProperty(name string) bool {
	_, ok := s.Property(name)
	return ok
}

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	for _, entry := range s.Required {
		if entry == name {
			return true
		}
	}
	return false
}

// ValueKey returns the key a property occupies in the object value.
func (p Property) ValueKey() string {
	if p.Schema.PropertyName != "" {
		return p.Schema.PropertyName
	}
	return p.Name
}

// Compare orders two properties by PropertyOrder, treating a missing order as
// zero.
func Compare(a, b Property) int {
	left, right := order(a.Schema), order(b.Schema)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

func order(s Schema) float64 {
	if s.PropertyOrder == nil {
		return 0
	}
	return *s.PropertyOrder
}

// Ordered returns the properties in display order: declaration order, stably
// re-sorted by PropertyOrder.
func Ordered(props []Property) []Property {
	out := append([]Property(nil), props...)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}

// Step is the increment hint for numeric inputs.
type Step struct {
	Any   bool
	Value float64
}

// NumberStep returns the declared step, or "any" for number schemas without
// one. Integer schemas without a step report false.
func NumberStep(s Schema) (Step, bool) {
	if s.Step != nil {
		return *s.Step, true
	}
	if s.Type == TypeNumber {
		return Step{Any: true}, true
	}
	return Step{}, false
}

// Option is a selectable entry derived from Enum/EnumTitles.
type Option struct {
	Value any
	Label string
}

// Options pairs every enum value with its title, falling back to the raw
// value when EnumTitles is shorter than Enum.
func Options(s Schema) []Option {
	if len(s.Enum) == 0 {
		return nil
	}
	out := make([]Option, 0, len(s.Enum))
	for i, entry := range s.Enum {
		label := value.Stringify(entry)
		if i < len(s.EnumTitles) {
			label = s.EnumTitles[i]
		}
		out = append(out, Option{Value: entry, Label: label})
	}
	return out
}
