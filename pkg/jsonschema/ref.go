package jsonschema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const defaultMaxRefDepth = 64

// refStack tracks the $ref chain being expanded so cycles and runaway depth
// are reported instead of recursing forever.
type refStack struct {
	refs []string
}

func (s *refStack) push(ref string) { s.refs = append(s.refs, ref) }

func (s *refStack) pop() { s.refs = s.refs[:len(s.refs)-1] }

func (s *refStack) depth() int { return len(s.refs) }

func (s *refStack) contains(ref string) bool {
	for _, existing := range s.refs {
		if existing == ref {
			return true
		}
	}
	return false
}

// resolveLocalRef follows a "#/..." JSON pointer from the document root.
func resolveLocalRef(root any, ref string) (any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, fmt.Errorf("jsonschema: non-local $ref %q is not supported", ref)
	}
	fragment, err := url.PathUnescape(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return nil, fmt.Errorf("jsonschema: invalid $ref %q: %w", ref, err)
	}
	if fragment == "" {
		return root, nil
	}
	if !strings.HasPrefix(fragment, "/") {
		return nil, fmt.Errorf("jsonschema: unsupported $ref fragment %q", ref)
	}

	current := root
	for _, token := range strings.Split(fragment[1:], "/") {
		token = unescapePointer(token)
		switch typed := current.(type) {
		case object:
			next, ok := typed.get(token)
			if !ok {
				return nil, fmt.Errorf("jsonschema: $ref %q not found", ref)
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(typed) {
				return nil, fmt.Errorf("jsonschema: $ref %q out of range", ref)
			}
			current = typed[idx]
		default:
			return nil, fmt.Errorf("jsonschema: $ref %q not found", ref)
		}
	}
	return current, nil
}

// mergeRef overlays the siblings of a $ref onto its target. Sibling keywords
// win, so a ref can be retitled or given a default in place.
func mergeRef(target object, ref object) object {
	out := make(object, 0, len(target)+len(ref))
	for _, m := range target {
		if replacement, ok := ref.get(m.key); ok && m.key != "$ref" {
			out = append(out, member{key: m.key, value: replacement})
			continue
		}
		out = append(out, m)
	}
	for _, m := range ref {
		if m.key == "$ref" || target.has(m.key) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func unescapePointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func joinPath(base string, tokens ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, token := range tokens {
		b.WriteByte('/')
		b.WriteString(escapePointer(token))
	}
	return b.String()
}
