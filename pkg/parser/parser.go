// Package parser builds Tiny ASTs with recursive descent and precedence
// climbing for binary operators.
package parser

import (
	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
)

var binaryOperators = map[lexer.Kind]ast.BinaryOperator{
	lexer.Plus:       ast.OperatorPlus,
	lexer.Minus:      ast.OperatorMinus,
	lexer.Star:       ast.OperatorTimes,
	lexer.Slash:      ast.OperatorDivide,
	lexer.EqualEqual: ast.OperatorEquality,
}

var atomStarts = []lexer.Kind{lexer.Number, lexer.Name, lexer.LParen}

// Parser consumes tokens from a cursor. A Parser is single-use; ParseModule and
// ParseTokens create a fresh one per call so no state survives between runs.
type Parser struct {
	cursor *lexer.Cursor
}

// New wraps an existing cursor.
func New(cursor *lexer.Cursor) *Parser {
	return &Parser{cursor: cursor}
}

// ParseModule tokenizes and parses source into a module.
func ParseModule(source string) (*ast.Module, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an already tokenized program.
func ParseTokens(tokens []lexer.Token) (*ast.Module, error) {
	return New(lexer.NewCursor(tokens)).ParseModule()
}

// ParseModule parses statements until the cursor is exhausted.
func (p *Parser) ParseModule() (*ast.Module, error) {
	body := make([]ast.Statement, 0)
	var span ast.Span
	for !p.cursor.AtEnd() {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		span = ast.Cover(span, stmt.Span())
	}
	module := ast.NewModule(body)
	ast.SetSpan(module, span)
	return module, nil
}

func (p *Parser) expect(kind lexer.Kind, context string) (lexer.Token, error) {
	tok := p.cursor.Next()
	if tok.Kind != kind {
		return tok, &Error{Expected: []lexer.Kind{kind}, Found: tok, Context: context}
	}
	return tok, nil
}
