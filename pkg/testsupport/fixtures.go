// Package testsupport holds fixture helpers shared by package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/jsonschema"
	"github.com/goliatone/go-formstate/pkg/schema"
)

// MustParseSchema parses an inline JSON or YAML schema document.
func MustParseSchema(t *testing.T, raw string) schema.Schema {
	t.Helper()

	out, err := jsonschema.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return out
}

// MustLoadSchema reads and parses a schema fixture from disk.
func MustLoadSchema(t *testing.T, path string) schema.Schema {
	t.Helper()

	out, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return out
}

// LoadSchema returns the parsed schema without requiring testing.T, so
// fixtures can be wired in setup functions.
func LoadSchema(path string) (schema.Schema, error) {
	if path == "" {
		return schema.Schema{}, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: read schema: %w", err)
	}
	out, err := jsonschema.Parse(data)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: parse schema: %w", err)
	}
	return out, nil
}

// MustDecodeValue decodes an inline JSON or YAML value document.
func MustDecodeValue(t *testing.T, raw string) any {
	t.Helper()

	out, err := jsonschema.DecodeValue([]byte(raw))
	if err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return out
}

// MustLoadValue reads and decodes a value fixture from disk.
func MustLoadValue(t *testing.T, path string) any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read value: %v", err)
	}
	out, err := jsonschema.DecodeValue(data)
	if err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return out
}

// MustReadFile returns the raw bytes of a fixture.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// Diff returns a cmp diff between want and got, or "" when they match.
func Diff(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
