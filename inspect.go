package formstate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/title"
	"github.com/goliatone/go-formstate/pkg/value"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// Node is the evaluated state of one position in the value tree.
type Node struct {
	// Path is the JSON pointer of the node; the root is "".
	Path       string                `json:"path"`
	Type       string                `json:"type"`
	Message    string                `json:"message,omitempty"`
	Visibility visibility.Visibility `json:"visibility"`
	Title      string                `json:"title,omitempty"`
}

// Report lists every visited node in walk order.
type Report struct {
	Nodes []Node `json:"nodes"`
	Valid bool   `json:"valid"`
}

// Invalid returns the nodes carrying a message.
func (r Report) Invalid() []Node {
	var out []Node
	for _, node := range r.Nodes {
		if node.Message != "" {
			out = append(out, node)
		}
	}
	return out
}

// Inspect walks v along s. Objects are visited through their visible
// properties in display order and arrays through their items. Hidden
// properties are skipped. The root and array items count as required.
func (e *Engine) Inspect(s schema.Schema, v any) (Report, error) {
	w := walker{engine: e}
	if err := w.visit(s, v, "", "", visibility.Required); err != nil {
		return Report{}, err
	}

	report := Report{Nodes: w.nodes, Valid: true}
	for _, node := range w.nodes {
		if node.Message != "" {
			report.Valid = false
			break
		}
	}
	e.logger.Debug("inspect complete", "nodes", len(report.Nodes), "valid", report.Valid)
	return report, nil
}

type walker struct {
	engine *Engine
	nodes  []Node
}

func (w *walker) visit(s schema.Schema, raw any, path, key string, vis visibility.Visibility) error {
	v := value.Unbox(raw)

	msg, err := w.engine.Validate(v, s, vis == visibility.Required)
	if err != nil {
		return fmt.Errorf("formstate: inspect %s: %w", displayPath(path), err)
	}

	obj, isObject := v.(map[string]any)
	derived := ""
	if s.Type == schema.TypeObject && isObject {
		derived = w.engine.Title(obj, candidates(s))
	}

	w.nodes = append(w.nodes, Node{
		Path:       path,
		Type:       typeName(s.Type),
		Message:    msg,
		Visibility: vis,
		Title:      w.engine.Label(key, s, derived),
	})

	switch s.Type {
	case schema.TypeObject:
		if !isObject {
			return nil
		}
		for _, entry := range visibility.Plan(s.Required, obj, s) {
			if entry.Visibility == visibility.Hidden {
				continue
			}
			valueKey := schema.Property{Name: entry.Property, Schema: entry.Schema}.ValueKey()
			child := value.Lookup(obj, valueKey)
			if err := w.visit(entry.Schema, child, path+"/"+escape(valueKey), entry.Property, entry.Visibility); err != nil {
				return err
			}
		}
	case schema.TypeArray:
		items, ok := v.([]any)
		if !ok || s.Items == nil {
			return nil
		}
		for i, item := range items {
			index := strconv.Itoa(i)
			if err := w.visit(*s.Items, item, path+"/"+index, index, visibility.Required); err != nil {
				return err
			}
		}
	}
	return nil
}

// candidates lists the properties of s in display order for title lookup.
func candidates(s schema.Schema) []title.Candidate {
	return title.Candidates(schema.Schema{Properties: schema.Ordered(s.Properties)})
}

func typeName(t schema.Type) string {
	if t == schema.TypeAny {
		return "any"
	}
	return string(t)
}

func escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
