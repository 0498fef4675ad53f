package driver

import (
	"errors"
	"fmt"
	"strings"

	"tiny/interpreter-go/pkg/lexer"
	"tiny/interpreter-go/pkg/parser"
)

// Stage-level diagnostic kinds. Runtime kinds are supplied by the interpreter.
const (
	KindLexError   = "LexError"
	KindParseError = "ParseError"
	KindError      = "Error"
)

// DiagnosticLocation references a source span for diagnostics.
type DiagnosticLocation struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Diagnostic is a structured, renderable failure of a Tiny run.
type Diagnostic struct {
	Kind     string
	Message  string
	Location DiagnosticLocation
}

// DiagnosticError wraps a diagnostic for error handling.
type DiagnosticError struct {
	Diagnostic Diagnostic
}

func (e *DiagnosticError) Error() string {
	return DescribeDiagnostic(e.Diagnostic)
}

// DescribeDiagnostic formats a diagnostic for CLI output as
// "path:line:col: Kind: message".
func DescribeDiagnostic(diag Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	kind := diag.Kind
	if kind == "" {
		kind = KindError
	}
	location := formatDiagnosticLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s: %s: %s", location, kind, message)
	}
	return fmt.Sprintf("%s: %s", kind, message)
}

// LocationString renders the location part of the diagnostic, or "" when
// it has none.
func (d Diagnostic) LocationString() string {
	return formatDiagnosticLocation(d.Location)
}

// SyntaxDiagnostic converts lexer and parser failures. The bool result is
// false for any other error.
func SyntaxDiagnostic(path string, err error) (Diagnostic, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		msg := lexErr.Msg
		if msg == "" {
			msg = fmt.Sprintf("unexpected character %q", lexErr.Char)
		}
		return Diagnostic{
			Kind:     KindLexError,
			Message:  msg,
			Location: DiagnosticLocation{Path: path, Line: lexErr.Pos.Line, Column: lexErr.Pos.Column},
		}, true
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		span := parseErr.Found.Span
		return Diagnostic{
			Kind:     KindParseError,
			Message:  parseErr.Message(),
			Location: DiagnosticLocation{
				Path:      path,
				Line:      span.Start.Line,
				Column:    span.Start.Column,
				EndLine:   span.End.Line,
				EndColumn: span.End.Column,
			},
		}, true
	}
	return Diagnostic{}, false
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}
