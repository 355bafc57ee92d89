// Package testutil provides testing helpers for generated schema documents.
//
// The helpers parse serialized documents and navigate them so tests can make
// assertions about individual nodes without hand-writing unmarshal plumbing:
//
//	doc := testutil.Parse(t, out)
//	props := testutil.At(t, doc, "function", "parameters", "properties")
//	testutil.JSONEq(t, `{"type":"string"}`, out)
package testutil

import (
	"encoding/json"
	"reflect"
	"testing"
)

// Parse unmarshals a serialized document and fails the test on malformed
// JSON.
func Parse(t testing.TB, doc string) map[string]any {
	t.Helper()

	var parsed map[string]any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("failed to parse document: %v\n%s", err, doc)
	}
	return parsed
}

// At descends into nested objects by key and fails the test when a key is
// missing or a non-object is traversed.
func At(t testing.TB, doc map[string]any, path ...string) map[string]any {
	t.Helper()

	current := doc
	for _, key := range path {
		next, ok := current[key]
		if !ok {
			t.Fatalf("missing key %q in path %v", key, path)
		}
		obj, ok := next.(map[string]any)
		if !ok {
			t.Fatalf("key %q in path %v is %T, not an object", key, path, next)
		}
		current = obj
	}
	return current
}

// Strings extracts a string array value by key and fails the test when the
// key is absent or holds non-strings.
func Strings(t testing.TB, doc map[string]any, key string) []string {
	t.Helper()

	raw, ok := doc[key]
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	arr, ok := raw.([]any)
	if !ok {
		t.Fatalf("key %q is %T, not an array", key, raw)
	}

	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			t.Fatalf("key %q contains %T, not a string", key, v)
		}
		out = append(out, s)
	}
	return out
}

// JSONEq asserts that two JSON texts describe the same value, ignoring
// formatting and key order.
func JSONEq(t testing.TB, want, got string) {
	t.Helper()

	var wantVal, gotVal any
	if err := json.Unmarshal([]byte(want), &wantVal); err != nil {
		t.Fatalf("invalid want JSON: %v\n%s", err, want)
	}
	if err := json.Unmarshal([]byte(got), &gotVal); err != nil {
		t.Fatalf("invalid got JSON: %v\n%s", err, got)
	}

	if !reflect.DeepEqual(wantVal, gotVal) {
		t.Errorf("JSON mismatch\nwant: %s\ngot:  %s", want, got)
	}
}
