package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// member is one key of a decoded mapping, kept in document order.
type member struct {
	key   string
	value any
}

// object is a decoded mapping. Schema keywords are looked up by key while
// "properties" is walked in declaration order.
type object []member

func (o object) get(key string) (any, bool) {
	for _, m := range o {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

func (o object) has(key string) bool {
	_, ok := o.get(key)
	return ok
}

// decodeDocument parses JSON or YAML into a tree of object, []any, float64,
// bool, string and nil.
func decodeDocument(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("jsonschema: document is empty")
	}
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("jsonschema: decode document: %w", err)
	}
	return decodeNode(&root, 0)
}

const maxAliasDepth = 32

func decodeNode(n *yaml.Node, aliasDepth int) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth || n.Alias == nil {
			return nil, fmt.Errorf("jsonschema: alias nesting too deep at line %d", n.Line)
		}
		return decodeNode(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		out := make(object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("jsonschema: non-scalar key at line %d", keyNode.Line)
			}
			val, err := decodeNode(valueNode, aliasDepth)
			if err != nil {
				return nil, err
			}
			out = append(out, member{key: keyNode.Value, value: val})
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			val, err := decodeNode(child, aliasDepth)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, fmt.Errorf("jsonschema: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func decodeScalar(n *yaml.Node) (any, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil, fmt.Errorf("jsonschema: decode scalar at line %d: %w", n.Line, err)
	}
	switch typed := raw.(type) {
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case float64:
		return typed, nil
	case nil, bool, string:
		return typed, nil
	default:
		// Timestamps and binary scalars keep their source text.
		return n.Value, nil
	}
}

// toValue converts a decoded tree into the engine's value domain.
func toValue(node any) any {
	switch typed := node.(type) {
	case object:
		out := make(map[string]any, len(typed))
		for _, m := range typed {
			out[m.key] = toValue(m.value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			out[i] = toValue(entry)
		}
		return out
	default:
		return typed
	}
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStrings(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
