package interpreter

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/driver"
	"tiny/interpreter-go/pkg/parser"
)

// FixtureResult records the outcome of one fixture run.
type FixtureResult struct {
	Fixture *driver.Fixture
	Stdout  []string
	Kind    ErrorKind
	Err     error
	// Failures lists every mismatch against the fixture's expectations.
	Failures []string
}

// Passed reports whether the run matched every expectation.
func (r FixtureResult) Passed() bool {
	return len(r.Failures) == 0
}

// RunFixture evaluates a fixture in a fresh interpreter and compares output,
// error kind and, when given, the parsed tree against its expectations.
func RunFixture(fixture *driver.Fixture, logger *slog.Logger) FixtureResult {
	var stdout bytes.Buffer
	opts := []Option{WithOutput(&stdout)}
	if logger != nil {
		opts = append(opts, WithLogger(logger.With("fixture", fixture.Name)))
	}
	interp := New(opts...)
	err := interp.EvaluateSource(fixture.Source)

	result := FixtureResult{
		Fixture: fixture,
		Stdout:  driver.SplitOutputLines(stdout.String()),
		Kind:    KindOf(err),
		Err:     err,
	}
	if expected := fixture.Expect.Stdout; !reflect.DeepEqual(result.Stdout, expected) {
		result.Failures = append(result.Failures, fmt.Sprintf("stdout mismatch: got [%s], want [%s]",
			strings.Join(result.Stdout, ", "), strings.Join(expected, ", ")))
	}
	switch want := ErrorKind(strings.TrimSpace(fixture.Expect.Error)); {
	case want == KindNone && err != nil:
		result.Failures = append(result.Failures, fmt.Sprintf("unexpected error: %v", err))
	case want != KindNone && result.Kind != want:
		got := string(result.Kind)
		if got == "" {
			got = "no error"
		}
		result.Failures = append(result.Failures, fmt.Sprintf("error kind mismatch: got %s, want %s", got, want))
	}
	if expected := strings.TrimSpace(fixture.Expect.AST); expected != "" {
		if failure := compareFixtureAST(fixture.Source, expected); failure != "" {
			result.Failures = append(result.Failures, failure)
		}
	}
	return result
}

// compareFixtureAST parses both programs and compares the trees. Spans are
// copied from the actual parse first, since the expected text sits at
// different columns.
func compareFixtureAST(source, expected string) string {
	want, err := parser.ParseModule(expected)
	if err != nil {
		return fmt.Sprintf("expected ast does not parse: %v", err)
	}
	got, err := parser.ParseModule(source)
	if err != nil {
		return fmt.Sprintf("ast mismatch: source does not parse: %v", err)
	}
	ast.CopySpans(want, got)
	if !reflect.DeepEqual(want, got) {
		return fmt.Sprintf("ast mismatch: got %q, want %q", ast.Format(got), ast.Format(want))
	}
	return ""
}
