package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/jsonschema"
	"github.com/goliatone/go-formstate/pkg/locale"
	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

// loadSchema reads a JSON Schema document, or the named component of an
// OpenAPI document when component is set.
func loadSchema(ctx context.Context, path, component string) (schema.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("read schema: %w", err)
	}
	if component != "" {
		return openapi.LoadComponent(ctx, raw, component)
	}
	return jsonschema.Parse(raw)
}

// loadValue decodes a value document. When boxed is set, every
// {"value": ...} object in the tree becomes a value.Boxed.
func loadValue(path string, boxed bool) (any, error) {
	if path == "" {
		return value.Undefined, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read value: %w", err)
	}
	out, err := jsonschema.DecodeValue(raw)
	if err != nil {
		return nil, err
	}
	if boxed {
		out = value.FromHostTree(out)
	}
	return out, nil
}

// loadLocale resolves a bundled locale name or a locale file path. An empty
// name selects locale.Default.
func loadLocale(name string) (*locale.Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return locale.Default, nil
	}

	catalog, err := formstate.Locales()
	if err != nil {
		return nil, err
	}
	for _, bundled := range catalog.Names() {
		if bundled == name {
			return catalog.Lookup(name), nil
		}
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q (bundled: %s): %w", name, strings.Join(catalog.Names(), ", "), err)
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return locale.Parse(base, raw)
}
