package parser

import (
	"fmt"
	"strings"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
)

// Error reports a token whose kind does not fit the grammar at its position.
type Error struct {
	Expected []lexer.Kind
	Found    lexer.Token
	Context  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos(), e.Message())
}

// Message renders the error without its position.
func (e *Error) Message() string {
	var b strings.Builder
	b.WriteString("expected ")
	b.WriteString(describeExpected(e.Expected))
	if e.Context != "" {
		b.WriteString(" ")
		b.WriteString(e.Context)
	}
	b.WriteString(", found ")
	b.WriteString(e.Found.String())
	return b.String()
}

// Pos is the start of the offending token.
func (e *Error) Pos() ast.Position {
	return e.Found.Pos()
}

func describeExpected(kinds []lexer.Kind) string {
	switch len(kinds) {
	case 0:
		return "token"
	case 1:
		return kinds[0].String()
	}
	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = kind.String()
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
