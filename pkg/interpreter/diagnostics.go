package interpreter

import (
	"errors"

	"tiny/interpreter-go/pkg/driver"
)

// BuildDiagnostic converts any pipeline error into a driver diagnostic
// located in path.
func BuildDiagnostic(path string, err error) driver.Diagnostic {
	if diag, ok := driver.SyntaxDiagnostic(path, err); ok {
		return diag
	}
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return driver.Diagnostic{
			Kind:     string(rtErr.Kind),
			Message:  rtErr.Message,
			Location: driver.DiagnosticLocation{
				Path:      path,
				Line:      rtErr.Span.Start.Line,
				Column:    rtErr.Span.Start.Column,
				EndLine:   rtErr.Span.End.Line,
				EndColumn: rtErr.Span.End.Column,
			},
		}
	}
	message := "<nil>"
	if err != nil {
		message = err.Error()
	}
	return driver.Diagnostic{
		Kind:     string(KindUnknown),
		Message:  message,
		Location: driver.DiagnosticLocation{Path: path},
	}
}
