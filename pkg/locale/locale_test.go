package locale

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestMessage_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	custom := New("es", map[string]string{KeyMinLength: "Mínimo {0} caracteres."})
	if got := custom.Format(KeyMinLength, "3"); got != "Mínimo 3 caracteres." {
		t.Fatalf("expected custom message, got %q", got)
	}
	if got := custom.Format(KeyMaxLength, "9"); got != "Value must be at most 9 characters long." {
		t.Fatalf("expected default fallback, got %q", got)
	}

	var missing *Locale
	if got := missing.Message(KeySearch); got != "Search" {
		t.Fatalf("expected nil locale to use default, got %q", got)
	}
	if got := Default.Message("unknown.key"); got != "unknown.key" {
		t.Fatalf("expected unknown key echoed, got %q", got)
	}
}

func TestSubstitute_ReplacesFirstOccurrenceOnly(t *testing.T) {
	t.Parallel()

	got := Substitute("{0} and {1}, again {0}", "a", "b")
	if got != "a and b, again {0}" {
		t.Fatalf("unexpected substitution %q", got)
	}
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/de.yaml": {Data: []byte("error:\n  minimum: \"Wert muss >= {0} sein.\"\ninfo:\n  search: Suche\n")},
		"locales/fr.json": {Data: []byte(`{"error":{"maximum":"La valeur doit être <= {0}."}}`)},
		"locales/README":  {Data: []byte("ignored")},
	}

	catalog, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"de", "fr"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	de := catalog.Lookup("de")
	if got := de.Format(KeyMinimum, "5"); got != "Wert muss >= 5 sein." {
		t.Fatalf("unexpected de message %q", got)
	}
	if got := de.Message(KeySearch); got != "Suche" {
		t.Fatalf("unexpected de search label %q", got)
	}
	if catalog.Lookup("xx") != Default {
		t.Fatalf("expected unknown locale to resolve to Default")
	}
}

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	t.Parallel()

	fromJSON, err := Parse("json", []byte(`{"error": {"minimum": "min {0}", "maximum": "max {0}"}, "info": {"search": "find"}}`))
	if err != nil {
		t.Fatalf("parse JSON: %v", err)
	}
	fromYAML, err := Parse("yaml", []byte("error:\n  minimum: min {0}\n  maximum: max {0}\ninfo:\n  search: find\n"))
	if err != nil {
		t.Fatalf("parse YAML: %v", err)
	}
	if diff := cmp.Diff(fromYAML.Messages, fromJSON.Messages); diff != "" {
		t.Fatalf("messages mismatch (-yaml +json):\n%s", diff)
	}
	if _, err := Parse("broken", []byte(`{"error": {"minimum": "x"`)); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestParse_RejectsNonStringMessages(t *testing.T) {
	t.Parallel()

	if _, err := Parse("bad", []byte(`{"error":{"minimum":5}}`)); err == nil {
		t.Fatalf("expected error for non-string message")
	}
	if _, err := Parse("empty", []byte("   ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
