package lexer

import (
	"fmt"

	"tiny/interpreter-go/pkg/ast"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota

	// Operators and punctuation
	Plus       // "+"
	Minus      // "-"
	Star       // "*"
	Slash      // "/"
	Assign     // "="
	EqualEqual // "=="
	LParen     // "("
	RParen     // ")"
	Semicolon  // ";"

	// Literals & identifiers
	Name
	Number

	// Keywords
	Var
)

var kindNames = map[Kind]string{
	EOF:        "end of input",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Assign:     "'='",
	EqualEqual: "'=='",
	LParen:     "'('",
	RParen:     "')'",
	Semicolon:  "';'",
	Name:       "name",
	Number:     "number",
	Var:        "'var'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a classified lexeme. Number tokens carry their parsed value.
type Token struct {
	Kind   Kind
	Text   string
	Number uint64
	Span   ast.Span
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return t.Kind.String()
	case Name:
		return fmt.Sprintf("name %q", t.Text)
	case Number:
		return fmt.Sprintf("number %d", t.Number)
	default:
		return t.Kind.String()
	}
}

// Pos returns the start position of the token.
func (t Token) Pos() ast.Position {
	return t.Span.Start
}

var keywords = map[string]Kind{
	"var": Var,
}

var singleCharOperators = map[byte]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'=': Assign,
	'(': LParen,
	')': RParen,
	';': Semicolon,
}
