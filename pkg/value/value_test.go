package value

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   any
		want Kind
	}{
		"null":      {in: nil, want: KindNull},
		"undefined": {in: Undefined, want: KindUndefined},
		"bool":      {in: true, want: KindBool},
		"int":       {in: 4, want: KindNumber},
		"json":      {in: json.Number("1.5"), want: KindNumber},
		"string":    {in: "x", want: KindString},
		"array":     {in: []any{}, want: KindArray},
		"object":    {in: map[string]any{}, want: KindObject},
		"boxed":     {in: Box(1), want: KindBoxed},
		"unknown":   {in: struct{}{}, want: KindUnknown},
	}
	for name, tc := range cases {
		if got := KindOf(tc.in); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", name, tc.want, got)
		}
	}
}

func TestFromHost(t *testing.T) {
	t.Parallel()

	got := FromHost(map[string]any{"value": "x", "isValid": true})
	want := Boxed{Value: "x", Meta: map[string]any{"isValid": true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromHost mismatch (-want +got):\n%s", diff)
	}

	plain := map[string]any{"name": "x"}
	if diff := cmp.Diff(any(plain), FromHost(plain)); diff != "" {
		t.Fatalf("expected plain object to pass through (-want +got):\n%s", diff)
	}
	if got := Unbox(Box(3.0)); got != 3.0 {
		t.Fatalf("expected unboxed 3, got %v", got)
	}
	if got := Unbox("raw"); got != "raw" {
		t.Fatalf("expected raw passthrough, got %v", got)
	}
}

func TestFromHostTree(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"mode": map[string]any{"value": "x", "isValid": true},
		"rows": []any{
			map[string]any{"value": map[string]any{"name": map[string]any{"value": "a"}}},
			"raw",
		},
		"plain": map[string]any{"name": "y"},
	}
	want := map[string]any{
		"mode": Boxed{Value: "x", Meta: map[string]any{"isValid": true}},
		"rows": []any{
			Boxed{Value: map[string]any{"name": Boxed{Value: "a"}}},
			"raw",
		},
		"plain": map[string]any{"name": "y"},
	}
	if diff := cmp.Diff(any(want), FromHostTree(in)); diff != "" {
		t.Fatalf("FromHostTree mismatch (-want +got):\n%s", diff)
	}
	if got := FromHostTree(3.0); got != 3.0 {
		t.Fatalf("expected scalar passthrough, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if !IsUndefined(Lookup(nil, "a")) {
		t.Fatalf("expected undefined for nil object")
	}
	obj := map[string]any{"a": nil}
	if Lookup(obj, "a") != nil {
		t.Fatalf("expected explicit null to be preserved")
	}
	if !IsUndefined(Lookup(obj, "b")) {
		t.Fatalf("expected undefined for missing key")
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want string
	}{
		{in: 5.0, want: "5"},
		{in: 0.1, want: "0.1"},
		{in: -2, want: "-2"},
		{in: true, want: "true"},
		{in: nil, want: "null"},
		{in: Undefined, want: "undefined"},
		{in: "x", want: "x"},
		{in: []any{1.0, nil, "a"}, want: "1,,a"},
		{in: map[string]any{"a": 1}, want: "[object Object]"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestMediaHelpers(t *testing.T) {
	t.Parallel()

	if !IsBase64Image("data:image/png;base64,AAAA") {
		t.Fatalf("expected base64 png to be detected")
	}
	if IsBase64Image("data:text/plain;base64,AAAA") {
		t.Fatalf("expected text payload to be rejected")
	}
	if !IsImageURL("https://example.com/logo.png") {
		t.Fatalf("expected image url to be detected")
	}
	if IsImageURL("ftp://example.com/logo.png") {
		t.Fatalf("expected non-http url to be rejected")
	}
	if IsImageURL("https://example.com/logo.svg") {
		t.Fatalf("expected unknown extension to be rejected")
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"name":  Box("Ada"),
		"gone":  Undefined,
		"tags":  []any{"a", Undefined},
		"inner": map[string]any{"x": Undefined, "y": nil},
	}
	want := map[string]any{
		"name":  "Ada",
		"tags":  []any{"a", nil},
		"inner": map[string]any{"y": nil},
	}
	if diff := cmp.Diff(want, Plain(in)); diff != "" {
		t.Fatalf("Plain mismatch (-want +got):\n%s", diff)
	}
	if Plain(Undefined) != nil {
		t.Fatalf("expected undefined root to become null")
	}
}
