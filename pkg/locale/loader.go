package locale

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog keeps parsed locales by name. It is safe for concurrent readers
// when treated as immutable after construction.
type Catalog struct {
	locales map[string]*Locale
}

// Lookup returns the locale registered for name, or Default.
func (c *Catalog) Lookup(name string) *Locale {
	if c == nil {
		return Default
	}
	if l, ok := c.locales[strings.TrimSpace(name)]; ok {
		return l
	}
	return Default
}

// Names returns the registered locale names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.locales))
	for name := range c.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes a JSON or YAML locale document. Nested sections are
// flattened into dotted keys, so {"error": {"minLength": "..."}} yields
// "error.minLength".
func Parse(name string, data []byte) (*Locale, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("locale: document %s is empty", name)
	}

	// yaml.v3 reads JSON documents as flow mappings.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("locale: parse %s: %w", name, err)
	}

	messages := make(map[string]string)
	if err := flatten("", doc, messages); err != nil {
		return nil, fmt.Errorf("locale: parse %s: %w", name, err)
	}
	return &Locale{Name: name, Messages: messages}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, entry := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch typed := entry.(type) {
		case string:
			out[path] = typed
		case map[string]any:
			if err := flatten(path, typed, out); err != nil {
				return err
			}
		case nil:
			continue
		default:
			return fmt.Errorf("message %q must be a string", path)
		}
	}
	return nil
}

// LoadFS walks fsys and parses every JSON/YAML file as a locale named after
// the file (without extension).
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{locales: make(map[string]*Locale)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLocaleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("locale: read %s: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, exists := catalog.locales[name]; exists {
			return fmt.Errorf("locale: duplicate locale %q (file %s)", name, path)
		}
		parsed, err := Parse(name, data)
		if err != nil {
			return err
		}
		catalog.locales[name] = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func isLocaleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
