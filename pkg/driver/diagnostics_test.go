package driver

import (
	"errors"
	"testing"

	"tiny/interpreter-go/pkg/parser"
)

func TestDescribeDiagnostic(t *testing.T) {
	cases := []struct {
		diag Diagnostic
		want string
	}{
		{
			Diagnostic{Kind: "NameError", Message: "undefined variable 'x'", Location: DiagnosticLocation{Path: "main.tiny", Line: 2, Column: 3}},
			"main.tiny:2:3: NameError: undefined variable 'x'",
		},
		{
			Diagnostic{Kind: "TypeError", Message: " bad ", Location: DiagnosticLocation{Line: 1, Column: 4}},
			"line 1, column 4: TypeError: bad",
		},
		{
			Diagnostic{Message: "boom"},
			"Error: boom",
		},
		{
			Diagnostic{Kind: "LexError", Message: "odd", Location: DiagnosticLocation{Path: "a.tiny"}},
			"a.tiny: LexError: odd",
		},
	}
	for _, tc := range cases {
		if got := DescribeDiagnostic(tc.diag); got != tc.want {
			t.Fatalf("DescribeDiagnostic = %q, want %q", got, tc.want)
		}
	}
}

func TestSyntaxDiagnostic(t *testing.T) {
	_, err := ParseProgram("main.tiny", "var x = 1;\nvar y = %;")
	diag, ok := SyntaxDiagnostic("main.tiny", err)
	if !ok {
		t.Fatalf("expected syntax diagnostic for %v", err)
	}
	if got, want := DescribeDiagnostic(diag), "main.tiny:2:9: LexError: unexpected character '%'"; got != want {
		t.Fatalf("lex diagnostic = %q, want %q", got, want)
	}

	_, err = ParseProgram("main.tiny", "print(1)")
	diag, ok = SyntaxDiagnostic("main.tiny", err)
	if !ok || diag.Kind != KindParseError {
		t.Fatalf("expected parse diagnostic, got %#v", diag)
	}
	if got, want := DescribeDiagnostic(diag), "main.tiny:1:9: ParseError: expected ';' or '=' after expression, found end of input"; got != want {
		t.Fatalf("parse diagnostic = %q, want %q", got, want)
	}

	if _, ok := SyntaxDiagnostic("main.tiny", errors.New("other")); ok {
		t.Fatalf("unexpected diagnostic for plain error")
	}

	wrapped := &DiagnosticError{Diagnostic: diag}
	var perr *parser.Error
	if errors.As(wrapped, &perr) {
		t.Fatalf("DiagnosticError should not expose the parser error")
	}
	if wrapped.Error() != DescribeDiagnostic(diag) {
		t.Fatalf("DiagnosticError.Error mismatch")
	}
}
