package defaults

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/value"
)

func TestResolve_InitialValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		schema  schema.Schema
		initial any
		want    any
	}{
		{name: "raw string", schema: schema.Schema{Type: schema.TypeString}, initial: "x", want: "x"},
		{name: "boxed string", schema: schema.Schema{Type: schema.TypeString}, initial: value.Box("x"), want: "x"},
		{name: "boxed number", schema: schema.Schema{Type: schema.TypeInteger}, initial: value.Box(4.0), want: 4.0},
		{name: "raw bool", schema: schema.Schema{Type: schema.TypeBoolean}, initial: true, want: true},
		{name: "raw array", schema: schema.Schema{Type: schema.TypeArray}, initial: []any{1.0}, want: []any{1.0}},
		{name: "boxed array", schema: schema.Schema{Type: schema.TypeArray}, initial: value.Box([]any{"a"}), want: []any{"a"}},
		{name: "raw object", schema: schema.Schema{Type: schema.TypeObject}, initial: map[string]any{"a": 1.0}, want: map[string]any{"a": 1.0}},
		{name: "boxed object", schema: schema.Schema{Type: schema.TypeObject}, initial: value.Box(map[string]any{"b": "c"}), want: map[string]any{"b": "c"}},
		{name: "any unboxes", schema: schema.Schema{}, initial: value.Box("anything"), want: "anything"},
		{name: "any keeps raw", schema: schema.Schema{}, initial: 3.0, want: 3.0},
		{name: "null", schema: schema.Schema{Type: schema.TypeNull}, initial: nil, want: nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(false, tc.schema, tc.initial)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_MismatchedInitialFallsThrough(t *testing.T) {
	t.Parallel()

	s := schema.Schema{Type: schema.TypeString, Default: "fallback"}
	if got := Resolve(true, s, 42.0); got != "fallback" {
		t.Fatalf("expected schema default after mismatch, got %v", got)
	}
	if got := Resolve(false, s, value.Box(42.0)); !value.IsUndefined(got) {
		t.Fatalf("expected undefined for optional node after mismatch, got %v", got)
	}
	if got := Resolve(true, schema.Schema{Type: schema.TypeObject}, value.Box("x")); cmp.Diff(map[string]any{}, got) != "" {
		t.Fatalf("expected object fallback for boxed scalar, got %#v", got)
	}
}

func TestResolve_NotRequiredIsUndefined(t *testing.T) {
	t.Parallel()

	for _, s := range []schema.Schema{
		{Type: schema.TypeString, Default: "x"},
		{Type: schema.TypeObject},
		{},
	} {
		if got := Resolve(false, s, value.Undefined); !value.IsUndefined(got) {
			t.Fatalf("expected undefined for %q, got %#v", s.Type, got)
		}
	}
}

func TestResolve_SchemaDefault(t *testing.T) {
	t.Parallel()

	if got := Resolve(true, schema.Schema{Type: schema.TypeNumber, Default: 7.0}, value.Undefined); got != 7.0 {
		t.Fatalf("expected default 7, got %v", got)
	}
	if got := Resolve(true, schema.Schema{Type: schema.TypeNumber, Default: "7"}, value.Undefined); got != 0.0 {
		t.Fatalf("expected mistyped default to be ignored, got %v", got)
	}
	if got := Resolve(true, schema.Schema{Default: "x"}, value.Undefined); got != nil {
		t.Fatalf("expected any schema to ignore non-null default, got %v", got)
	}
}

func TestResolve_Fallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema schema.Schema
		want   any
	}{
		{name: "string enum", schema: schema.Schema{Type: schema.TypeString, Enum: []any{"a", "b"}}, want: "a"},
		{name: "string", schema: schema.Schema{Type: schema.TypeString}, want: ""},
		{name: "number enum", schema: schema.Schema{Type: schema.TypeNumber, Enum: []any{3.0}}, want: 3.0},
		{name: "integer", schema: schema.Schema{Type: schema.TypeInteger}, want: 0.0},
		{name: "boolean", schema: schema.Schema{Type: schema.TypeBoolean}, want: false},
		{name: "array", schema: schema.Schema{Type: schema.TypeArray}, want: []any{}},
		{name: "null", schema: schema.Schema{Type: schema.TypeNull}, want: nil},
		{name: "unknown", schema: schema.Schema{Type: "date"}, want: nil},
	}
	for _, tc := range cases {
		got := Resolve(true, tc.schema, value.Undefined)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("%s: fallback mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestResolve_ObjectFallbackUsesPropertyNames(t *testing.T) {
	t.Parallel()

	s := schema.Schema{
		Type: schema.TypeObject,
		Properties: []schema.Property{
			{Name: "first", Schema: schema.Schema{Type: schema.TypeString}},
			{Name: "second", Schema: schema.Schema{Type: schema.TypeString, PropertyName: "2nd"}},
		},
	}
	got := Resolve(true, s, value.Undefined)
	want := map[string]any{"first": value.Undefined, "2nd": value.Undefined}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("object fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	s := schema.Schema{Type: schema.TypeBoolean}
	if got := Toggle(value.Undefined, s, value.Undefined); got != false {
		t.Fatalf("expected toggle on to materialise false, got %v", got)
	}
	if got := Toggle(true, s, value.Undefined); !value.IsUndefined(got) {
		t.Fatalf("expected toggle off to clear value, got %v", got)
	}
}
