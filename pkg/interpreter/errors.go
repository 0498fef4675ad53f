package interpreter

import (
	"errors"
	"fmt"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
	"tiny/interpreter-go/pkg/parser"
)

// ErrorKind classifies failures of the lex, parse and evaluate pipeline.
type ErrorKind string

const (
	KindNone                      ErrorKind = ""
	KindLexError                  ErrorKind = "LexError"
	KindParseError                ErrorKind = "ParseError"
	KindNameError                 ErrorKind = "NameError"
	KindTypeError                 ErrorKind = "TypeError"
	KindUnsupportedOperationError ErrorKind = "UnsupportedOperationError"
	KindMissingResultError        ErrorKind = "MissingResultError"
	KindArithmeticError           ErrorKind = "ArithmeticError"
	KindUnknown                   ErrorKind = "Error"
)

// RuntimeError is raised while evaluating a module.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Span    ast.Span
	Err     error
}

func (e *RuntimeError) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Span.Start, e.Kind, e.Message)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func newRuntimeError(kind ErrorKind, node ast.Node, format string, args ...any) *RuntimeError {
	err := &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		err.Span = node.Span()
	}
	return err
}

// KindOf classifies an error returned by the lexer, parser or interpreter.
// A nil error yields KindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.Kind
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return KindLexError
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return KindParseError
	}
	return KindUnknown
}
