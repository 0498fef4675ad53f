package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"tiny/interpreter-go/pkg/ast"
)

func checkSpan(t testing.TB, label string, span ast.Span, startLine, startCol, endLine, endCol int) {
	t.Helper()
	if span.Start.Line != startLine || span.Start.Column != startCol {
		t.Fatalf("%s start span mismatch: got (%d,%d), want (%d,%d)", label, span.Start.Line, span.Start.Column, startLine, startCol)
	}
	if span.End.Line != endLine || span.End.Column != endCol {
		t.Fatalf("%s end span mismatch: got (%d,%d), want (%d,%d)", label, span.End.Line, span.End.Column, endLine, endCol)
	}
}

// assertModulesEqual compares structure only; spans are not serialised, so the
// JSON fallback ignores them when the expected tree was built with the DSL.
func assertModulesEqual(t testing.TB, expected interface{}, actual interface{}) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return
	}
	wantJSON, _ := json.Marshal(expected)
	gotJSON, _ := json.Marshal(actual)
	var wantAny interface{}
	var gotAny interface{}
	_ = json.Unmarshal(wantJSON, &wantAny)
	_ = json.Unmarshal(gotJSON, &gotAny)
	if reflect.DeepEqual(wantAny, gotAny) {
		return
	}
	wantPretty, _ := json.MarshalIndent(wantAny, "", "  ")
	gotPretty, _ := json.MarshalIndent(gotAny, "", "  ")
	t.Fatalf("module mismatch\nexpected: %s\n   actual: %s", wantPretty, gotPretty)
}

func mustParse(t testing.TB, source string) *ast.Module {
	t.Helper()
	mod, err := ParseModule(source)
	if err != nil {
		t.Fatalf("ParseModule(%q) error: %v", source, err)
	}
	return mod
}
