package jsonschema

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxRefDepth int
}

// WithMaxRefDepth caps the length of $ref chains. Values below one keep the
// default of 64.
func WithMaxRefDepth(depth int) ParseOption {
	return func(cfg *parseConfig) {
		if depth > 0 {
			cfg.maxRefDepth = depth
		}
	}
}

// Parse decodes a JSON or YAML schema document.
func Parse(raw []byte, opts ...ParseOption) (schema.Schema, error) {
	cfg := parseConfig{maxRefDepth: defaultMaxRefDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	root, err := decodeDocument(raw)
	if err != nil {
		return schema.Schema{}, err
	}
	if _, ok := root.(object); !ok {
		return schema.Schema{}, errors.New("jsonschema: schema must be an object at #")
	}

	p := &parser{root: root, maxRefDepth: cfg.maxRefDepth}
	return p.convert(root, "#")
}

// ParseFS reads name from fsys and parses it.
func ParseFS(fsys fs.FS, name string, opts ...ParseOption) (schema.Schema, error) {
	if fsys == nil {
		return schema.Schema{}, errors.New("jsonschema: filesystem is nil")
	}
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("jsonschema: read %s: %w", name, err)
	}
	out, err := Parse(raw, opts...)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// DecodeValue decodes a JSON or YAML value document. Objects become
// map[string]any and numbers float64.
func DecodeValue(raw []byte) (any, error) {
	node, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	return toValue(node), nil
}

type parser struct {
	root        any
	maxRefDepth int
	refs        refStack
}

func (p *parser) convert(node any, path string) (schema.Schema, error) {
	obj, ok := node.(object)
	if !ok {
		// Boolean schemas and other shapes accept anything.
		return schema.Schema{}, nil
	}

	if rawRef, ok := obj.get("$ref"); ok {
		if ref, ok := asString(rawRef); ok && strings.TrimSpace(ref) != "" {
			return p.expandRef(strings.TrimSpace(ref), obj, path)
		}
	}

	out := schema.Schema{
		Type: readType(obj),
	}
	p.readCommon(obj, &out)

	if err := p.readObject(obj, path, &out); err != nil {
		return schema.Schema{}, err
	}
	if err := p.readArray(obj, path, &out); err != nil {
		return schema.Schema{}, err
	}
	readNumber(obj, &out)
	readString(obj, &out)

	if raw, ok := obj.get("oneOf"); ok {
		if variants, ok := raw.([]any); ok {
			out.OneOf = make([]schema.Schema, 0, len(variants))
			for i, variant := range variants {
				converted, err := p.convert(variant, joinPath(path, "oneOf", strconv.Itoa(i)))
				if err != nil {
					return schema.Schema{}, err
				}
				out.OneOf = append(out.OneOf, converted)
			}
		}
	}
	return out, nil
}

func (p *parser) expandRef(ref string, obj object, path string) (schema.Schema, error) {
	if p.refs.depth() >= p.maxRefDepth {
		return schema.Schema{}, fmt.Errorf("jsonschema: ref depth exceeds %d at %s", p.maxRefDepth, path)
	}
	if p.refs.contains(ref) {
		return schema.Schema{}, fmt.Errorf("jsonschema: ref cycle detected for %q at %s", ref, path)
	}
	target, err := resolveLocalRef(p.root, ref)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("%w at %s", err, path)
	}
	targetObj, ok := target.(object)
	if !ok {
		return schema.Schema{}, fmt.Errorf("jsonschema: $ref %q target is not an object at %s", ref, path)
	}

	p.refs.push(ref)
	defer p.refs.pop()
	return p.convert(mergeRef(targetObj, obj), path)
}

func readType(obj object) schema.Type {
	raw, ok := obj.get("type")
	if !ok {
		return schema.TypeAny
	}
	if list, ok := raw.([]any); ok {
		if len(list) == 0 {
			return schema.TypeAny
		}
		raw = list[0]
	}
	name, _ := asString(raw)
	switch t := schema.Type(strings.TrimSpace(name)); t {
	case schema.TypeObject, schema.TypeArray, schema.TypeNumber, schema.TypeInteger,
		schema.TypeString, schema.TypeBoolean, schema.TypeNull:
		return t
	default:
		return schema.TypeAny
	}
}

func (p *parser) readCommon(obj object, out *schema.Schema) {
	for _, m := range obj {
		switch m.key {
		case "title":
			out.Title, _ = asString(m.value)
		case "description":
			out.Description, _ = asString(m.value)
		case "default":
			out.Default = toValue(m.value)
		case "readonly", "readOnly":
			if flag, ok := m.value.(bool); ok {
				out.ReadOnly = out.ReadOnly || flag
			}
		case "propertyOrder":
			out.PropertyOrder = readOrder(m.value)
		case "requiredWhen":
			out.RequiredWhen = readCondition(m.value)
		case "optionalWhen":
			out.OptionalWhen = readCondition(m.value)
		case "propertyName":
			out.PropertyName, _ = asString(m.value)
		case "format":
			out.Format, _ = asString(m.value)
		case "enum":
			if list, ok := m.value.([]any); ok {
				out.Enum = toValue(list).([]any)
			}
		case "enumTitles":
			out.EnumTitles, _ = asStrings(m.value)
		default:
			if strings.HasPrefix(m.key, "x-") {
				if out.Extensions == nil {
					out.Extensions = make(map[string]any)
				}
				out.Extensions[m.key] = toValue(m.value)
			}
		}
	}
}

func readOrder(raw any) *float64 {
	switch typed := raw.(type) {
	case float64:
		return &typed
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func readCondition(raw any) *schema.Condition {
	list, ok := raw.([]any)
	if !ok || len(list) < 2 {
		return nil
	}
	left, ok := asString(list[0])
	if !ok {
		return nil
	}
	operator, ok := asString(list[1])
	if !ok {
		return nil
	}
	var operand any = value.Undefined
	if len(list) > 2 {
		operand = toValue(list[2])
	}
	return &schema.Condition{Property: left, Operator: schema.Operator(operator), Operand: operand}
}

func (p *parser) readObject(obj object, path string, out *schema.Schema) error {
	if raw, ok := obj.get("properties"); ok {
		if props, ok := raw.(object); ok {
			out.Properties = make([]schema.Property, 0, len(props))
			for _, m := range props {
				child, err := p.convert(m.value, joinPath(path, "properties", m.key))
				if err != nil {
					return err
				}
				out.Properties = append(out.Properties, schema.Property{Name: m.key, Schema: child})
			}
		}
	}
	if raw, ok := obj.get("required"); ok {
		if list, ok := raw.([]any); ok {
			for _, entry := range list {
				if name, ok := asString(entry); ok {
					out.Required = append(out.Required, name)
				}
			}
		}
	}
	if raw, ok := obj.get("minProperties"); ok {
		if n, ok := asInt(raw); ok {
			out.MinProperties = &n
		}
	}
	if raw, ok := obj.get("maxProperties"); ok {
		if n, ok := asInt(raw); ok {
			out.MaxProperties = &n
		}
	}
	if raw, ok := obj.get("additionalProperties"); ok {
		if flag, ok := raw.(bool); ok {
			out.AdditionalProperties = &flag
		}
	}
	return nil
}

func (p *parser) readArray(obj object, path string, out *schema.Schema) error {
	if raw, ok := obj.get("items"); ok {
		itemPath := joinPath(path, "items")
		if tuple, ok := raw.([]any); ok {
			if len(tuple) == 0 {
				raw = nil
			} else {
				raw = tuple[0]
				itemPath = joinPath(itemPath, "0")
			}
		}
		if raw != nil {
			items, err := p.convert(raw, itemPath)
			if err != nil {
				return err
			}
			out.Items = &items
		}
	}
	if raw, ok := obj.get("minItems"); ok {
		if n, ok := asInt(raw); ok {
			out.MinItems = &n
		}
	}
	if raw, ok := obj.get("maxItems"); ok {
		if n, ok := asInt(raw); ok {
			out.MaxItems = &n
		}
	}
	if raw, ok := obj.get("uniqueItems"); ok {
		out.UniqueItems, _ = raw.(bool)
	}
	if raw, ok := obj.get("tableMode"); ok {
		out.TableMode, _ = raw.(bool)
	}
	return nil
}

func readNumber(obj object, out *schema.Schema) {
	number := func(key string) *float64 {
		raw, ok := obj.get(key)
		if !ok {
			return nil
		}
		f, ok := asFloat(raw)
		if !ok {
			return nil
		}
		return &f
	}

	out.Minimum = number("minimum")
	out.Maximum = number("maximum")
	out.MultipleOf = number("multipleOf")

	// Draft 4 spells exclusive bounds as booleans next to minimum/maximum.
	if raw, ok := obj.get("exclusiveMinimum"); ok {
		if flag, ok := raw.(bool); ok {
			if flag && out.Minimum != nil {
				bound := *out.Minimum
				out.ExclusiveMinimum = &bound
			}
		} else {
			out.ExclusiveMinimum = number("exclusiveMinimum")
		}
	}
	if raw, ok := obj.get("exclusiveMaximum"); ok {
		if flag, ok := raw.(bool); ok {
			if flag && out.Maximum != nil {
				bound := *out.Maximum
				out.ExclusiveMaximum = &bound
			}
		} else {
			out.ExclusiveMaximum = number("exclusiveMaximum")
		}
	}

	if raw, ok := obj.get("step"); ok {
		if f, ok := asFloat(raw); ok {
			out.Step = &schema.Step{Value: f}
		} else if s, ok := asString(raw); ok && s == "any" {
			out.Step = &schema.Step{Any: true}
		}
	}
}

func readString(obj object, out *schema.Schema) {
	if raw, ok := obj.get("minLength"); ok {
		if n, ok := asInt(raw); ok {
			out.MinLength = &n
		}
	}
	if raw, ok := obj.get("maxLength"); ok {
		if n, ok := asInt(raw); ok {
			out.MaxLength = &n
		}
	}
	if raw, ok := obj.get("pattern"); ok {
		if pattern, ok := asString(raw); ok {
			out.Pattern = &pattern
		}
	}
}
