package openapi

import (
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

const (
	extRequiredWhen  = "x-requiredWhen"
	extOptionalWhen  = "x-optionalWhen"
	extPropertyOrder = "x-propertyOrder"
	extPropertyName  = "x-propertyName"
	extEnumTitles    = "x-enumTitles"
	extTableMode     = "x-tableMode"
	extStep          = "x-step"
)

// FromSchemaRef converts a resolved kin-openapi schema. Properties are emitted
// sorted by name since OpenAPI property maps carry no order; x-propertyOrder
// still controls display order. A schema that refers back to one of its
// ancestors is cut off at the repeat and converted as an untyped node that
// keeps only its title and description.
func FromSchemaRef(ref *openapi3.SchemaRef) schema.Schema {
	c := converter{active: make(map[*openapi3.Schema]bool)}
	return c.convert(ref)
}

type converter struct {
	active map[*openapi3.Schema]bool
}

func (c *converter) convert(ref *openapi3.SchemaRef) schema.Schema {
	if ref == nil || ref.Value == nil {
		return schema.Schema{}
	}
	src := ref.Value
	if c.active[src] {
		return schema.Schema{Title: src.Title, Description: src.Description}
	}
	c.active[src] = true
	defer delete(c.active, src)

	out := schema.Schema{
		Type:        firstType(src.Type),
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		ReadOnly:    src.ReadOnly,
		Format:      src.Format,
		UniqueItems: src.UniqueItems,
		Minimum:     cloneFloat(src.Min),
		Maximum:     cloneFloat(src.Max),
		MultipleOf:  cloneFloat(src.MultipleOf),
	}

	if len(src.Enum) > 0 {
		out.Enum = append([]any(nil), src.Enum...)
	}
	if src.ExclusiveMin && src.Min != nil {
		out.ExclusiveMinimum = cloneFloat(src.Min)
	}
	if src.ExclusiveMax && src.Max != nil {
		out.ExclusiveMaximum = cloneFloat(src.Max)
	}

	if src.MinLength > 0 {
		out.MinLength = intFrom(src.MinLength)
	}
	out.MaxLength = intFromPtr(src.MaxLength)
	if src.Pattern != "" {
		pattern := src.Pattern
		out.Pattern = &pattern
	}

	if src.Items != nil {
		items := c.convert(src.Items)
		out.Items = &items
	}
	if src.MinItems > 0 {
		out.MinItems = intFrom(src.MinItems)
	}
	out.MaxItems = intFromPtr(src.MaxItems)

	if len(src.Properties) > 0 {
		names := make([]string, 0, len(src.Properties))
		for name := range src.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		out.Properties = make([]schema.Property, 0, len(names))
		for _, name := range names {
			out.Properties = append(out.Properties, schema.Property{Name: name, Schema: c.convert(src.Properties[name])})
		}
	}
	if len(src.Required) > 0 {
		out.Required = append([]string(nil), src.Required...)
	}
	if src.MinProps > 0 {
		out.MinProperties = intFrom(src.MinProps)
	}
	out.MaxProperties = intFromPtr(src.MaxProps)
	if src.AdditionalProperties.Has != nil {
		allowed := *src.AdditionalProperties.Has
		out.AdditionalProperties = &allowed
	}

	for _, variant := range src.OneOf {
		out.OneOf = append(out.OneOf, c.convert(variant))
	}
	applyExtensions(&out, src.Extensions)
	return out
}

func applyExtensions(out *schema.Schema, raw map[string]any) {
	if len(raw) == 0 {
		return
	}
	if out.Extensions == nil {
		out.Extensions = make(map[string]any, len(raw))
	}
	for key, ext := range raw {
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		out.Extensions[key] = ext
		switch key {
		case extRequiredWhen:
			out.RequiredWhen = condition(ext)
		case extOptionalWhen:
			out.OptionalWhen = condition(ext)
		case extPropertyOrder:
			out.PropertyOrder = order(ext)
		case extPropertyName:
			if name, ok := ext.(string); ok {
				out.PropertyName = name
			}
		case extEnumTitles:
			out.EnumTitles = stringList(ext)
		case extTableMode:
			if flag, ok := ext.(bool); ok {
				out.TableMode = flag
			}
		case extStep:
			if f, ok := value.AsNumber(ext); ok {
				out.Step = &schema.Step{Value: f}
			} else if s, ok := ext.(string); ok && s == "any" {
				out.Step = &schema.Step{Any: true}
			}
		}
	}
	if len(out.Extensions) == 0 {
		out.Extensions = nil
	}
}

func condition(raw any) *schema.Condition {
	list, ok := raw.([]any)
	if !ok || len(list) < 2 {
		return nil
	}
	left, ok := list[0].(string)
	if !ok {
		return nil
	}
	operator, ok := list[1].(string)
	if !ok {
		return nil
	}
	var operand any = value.Undefined
	if len(list) > 2 {
		operand = list[2]
	}
	return &schema.Condition{Property: left, Operator: schema.Operator(operator), Operand: operand}
}

func order(raw any) *float64 {
	if f, ok := value.AsNumber(raw); ok {
		return &f
	}
	if s, ok := raw.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}

func stringList(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

func firstType(types *openapi3.Types) schema.Type {
	if types == nil {
		return schema.TypeAny
	}
	for _, name := range types.Slice() {
		switch t := schema.Type(name); t {
		case schema.TypeObject, schema.TypeArray, schema.TypeNumber, schema.TypeInteger,
			schema.TypeString, schema.TypeBoolean, schema.TypeNull:
			return t
		}
	}
	return schema.TypeAny
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func intFrom(v uint64) *int {
	out := int(v)
	return &out
}

func intFromPtr(v *uint64) *int {
	if v == nil {
		return nil
	}
	return intFrom(*v)
}
