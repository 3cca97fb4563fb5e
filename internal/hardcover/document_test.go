package hardcover

import (
	"encoding/json"
	"testing"
)

func decodeDocument(t *testing.T, raw string) Document {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("Failed to decode test document: %v", err)
	}
	return Document(v)
}

func TestDocumentGet(t *testing.T) {
	doc := decodeDocument(t, `{"a": {"b": {"c": 42}}, "s": "x"}`)

	v, ok := doc.Get("a", "b", "c")
	if !ok || v.(float64) != 42 {
		t.Fatalf("Expected 42, got %v (ok=%v)", v, ok)
	}

	if _, ok := doc.Get("a", "missing"); ok {
		t.Fatal("Expected missing key to report not found")
	}

	// Descending through a scalar is not an error, just a miss.
	if _, ok := doc.Get("s", "b"); ok {
		t.Fatal("Expected descent through a string to report not found")
	}
}

func TestFirstStringFallbackOrder(t *testing.T) {
	doc := decodeDocument(t, `{"title": "   ", "name": "Dune", "n": 7}`)

	s, ok := doc.FirstString([]string{"title"}, []string{"name"})
	if !ok || s != "Dune" {
		t.Fatalf("Expected blank title to fall through to name, got %q (ok=%v)", s, ok)
	}

	if _, ok := doc.FirstString([]string{"n"}); ok {
		t.Fatal("Expected a number value to not satisfy FirstString")
	}
}

func TestFirstNumber(t *testing.T) {
	doc := decodeDocument(t, `{"a": "not a number", "b": " 3.5 ", "c": 2}`)

	n, ok := doc.FirstNumber([]string{"a"}, []string{"b"}, []string{"c"})
	if !ok || n != 3.5 {
		t.Fatalf("Expected 3.5 from the numeric string, got %v (ok=%v)", n, ok)
	}

	if _, ok := doc.FirstNumber([]string{"a"}); ok {
		t.Fatal("Expected an unparseable string to report not found")
	}
}

func TestFirstIDStringifiesNumbers(t *testing.T) {
	doc := decodeDocument(t, `{"id": 12345}`)

	id, ok := doc.FirstID([]string{"id"})
	if !ok || id != "12345" {
		t.Fatalf("Expected numeric id to stringify without a fraction, got %q (ok=%v)", id, ok)
	}
}

func TestStringList(t *testing.T) {
	doc := decodeDocument(t, `{"names": ["a", " ", 3, "b"], "scalar": "x"}`)

	v, _ := doc.Get("names")
	names := StringList(v)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("Expected [a b], got %v", names)
	}

	v, _ = doc.Get("scalar")
	if StringList(v) != nil {
		t.Fatal("Expected nil for a non-array value")
	}
}

func TestParseYear(t *testing.T) {
	cases := []struct {
		input string
		year  int
		ok    bool
	}{
		{"1965-08-01", 1965, true},
		{"Published 2003 in the US", 2003, true},
		{"12345", 0, false},
		{"", 0, false},
		{"no digits here", 0, false},
	}
	for _, tc := range cases {
		year, ok := parseYear(tc.input)
		if ok != tc.ok || year != tc.year {
			t.Errorf("parseYear(%q) = (%d, %v), expected (%d, %v)", tc.input, year, ok, tc.year, tc.ok)
		}
	}
}

func TestAggregateCount(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`{"aggregate": {"count": 37}}`), &v); err != nil {
		t.Fatal(err)
	}
	if n := aggregateCount(v); n != 37 {
		t.Fatalf("Expected 37, got %d", n)
	}
	if n := aggregateCount(nil); n != 0 {
		t.Fatalf("Expected 0 for a missing aggregate, got %d", n)
	}
}
