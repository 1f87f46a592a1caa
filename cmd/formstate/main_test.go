package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

const profileSchema = `
type: object
required: [name]
properties:
  name:
    type: string
    minLength: 3
  age:
    type: integer
    minimum: 0
`

func TestCheck_ReportsInvalidValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "profile.yaml", profileSchema)
	valuePath := writeFixture(t, dir, "value.json", `{"name": "Al", "age": 4}`)

	out, err := run(t, "check", "--schema", schemaPath, "--value", valuePath)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}

	var report struct {
		Nodes []struct {
			Path       string `json:"path"`
			Message    string `json:"message"`
			Visibility string `json:"visibility"`
		} `json:"nodes"`
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.Valid {
		t.Fatalf("expected invalid report")
	}
	if len(report.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(report.Nodes))
	}
	name := report.Nodes[1]
	if name.Path != "/name" || name.Visibility != "required" || name.Message != "Value must be at least 3 characters long." {
		t.Fatalf("unexpected name node %+v", name)
	}
}

func TestCheck_BundledLocale(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "profile.yaml", profileSchema)
	valuePath := writeFixture(t, dir, "value.json", `{"name": "Ada", "age": -1}`)

	out, err := run(t, "check", "--schema", schemaPath, "--value", valuePath, "--locale", "zh-cn")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	if !strings.Contains(out, "要求 >= 0") {
		t.Fatalf("expected localized message in output, got %s", out)
	}
}

func TestCheck_ValidValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "profile.yaml", profileSchema)
	valuePath := writeFixture(t, dir, "value.yaml", "name: Grace\n")

	if _, err := run(t, "check", "--schema", schemaPath, "--value", valuePath); err != nil {
		t.Fatalf("expected valid value, got %v", err)
	}
}

func TestCheck_BoxedSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "mode.yaml", `
type: object
properties:
  mode: {type: string}
  x: {type: string, minLength: 2, requiredWhen: [mode, equal, x]}
`)
	valuePath := writeFixture(t, dir, "value.json", `{"mode": {"value": "x", "isValid": true}, "x": {"value": "a"}}`)

	out, err := run(t, "check", "--schema", schemaPath, "--value", valuePath, "--boxed")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	var report struct {
		Nodes []struct {
			Path       string `json:"path"`
			Visibility string `json:"visibility"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	last := report.Nodes[len(report.Nodes)-1]
	if last.Path != "/x" || last.Visibility != "required" {
		t.Fatalf("expected /x to be required, got %+v", report.Nodes)
	}
}

func TestCheck_OpenAPIComponent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := `{
  "openapi": "3.0.3",
  "info": {"title": "x", "version": "1"},
  "paths": {},
  "components": {"schemas": {"Tag": {"type": "object", "properties": {"label": {"type": "string", "maxLength": 2}}}}}
}`
	schemaPath := writeFixture(t, dir, "api.json", doc)
	valuePath := writeFixture(t, dir, "value.json", `{"label": "long"}`)

	out, err := run(t, "check", "--schema", schemaPath, "--value", valuePath, "--openapi-component", "Tag")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	if !strings.Contains(out, "Value must be at most 2 characters long.") {
		t.Fatalf("expected maxLength message, got %s", out)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "profile.yaml", `
type: object
properties:
  name: {type: string, default: anonymous}
  tags: {type: array}
`)

	out, err := run(t, "defaults", "--schema", schemaPath)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode defaults: %v\n%s", err, out)
	}
	if diff := cmp.Diff(map[string]any{}, got); diff != "" {
		t.Fatalf("expected optional properties to stay absent (-want +got):\n%s", diff)
	}
}

func TestDefaults_BoxedInitial(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "name.yaml", "type: string\n")
	initialPath := writeFixture(t, dir, "initial.json", `{"value": "hi", "isValid": true}`)

	out, err := run(t, "defaults", "--schema", schemaPath, "--initial", initialPath, "--boxed")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if got := strings.TrimSpace(out); got != `"hi"` {
		t.Fatalf("expected boxed initial to be used, got %s", got)
	}

	out, err = run(t, "defaults", "--schema", schemaPath, "--initial", initialPath)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if got := strings.TrimSpace(out); got != `""` {
		t.Fatalf("expected object initial to fall back for a string schema, got %s", got)
	}
}

func TestLint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFixture(t, dir, "broken.json", `{
  "type": "object",
  "required": ["ghost"],
  "properties": {
    "mode": {"type": "string", "enum": ["a", "b"], "enumTitles": ["A"]},
    "detail": {"type": "string", "requiredWhen": ["missing", "like", "x"], "pattern": "("}
  }
}`)

	out, err := run(t, "lint", path)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	for _, want := range []string{
		`required property "ghost" is not declared`,
		"enumTitles has 1 entries for 2 enum values",
		`requiredWhen refers to undeclared property "missing"`,
		`requiredWhen uses unknown operator "like"`,
		"invalid pattern",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in lint output:\n%s", want, out)
		}
	}

	clean := writeFixture(t, dir, "clean.yaml", profileSchema)
	if _, err := run(t, "lint", clean); err != nil {
		t.Fatalf("expected clean schema to pass, got %v", err)
	}
}

func TestRoot_RejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "profile.yaml", profileSchema)
	if _, err := run(t, "--log-level", "loud", "defaults", "--schema", schemaPath); err == nil {
		t.Fatalf("expected invalid log level error")
	}
}
