package parser

import (
	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
)

// ParseExpression parses a full expression.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseBinary(0)
}

// parseBinary folds operators that bind tighter than callerPrecedence. Recursing
// at the operator's own precedence keeps equal-precedence chains left-associative.
func (p *Parser) parseBinary(callerPrecedence int) (ast.Expression, error) {
	lhs, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOperators[p.cursor.PeekKind()]
		if !ok {
			return lhs, nil
		}
		precedence := op.Precedence()
		if precedence <= callerPrecedence {
			return lhs, nil
		}
		p.cursor.Next()
		rhs, err := p.parseBinary(precedence)
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpression(op, lhs, rhs)
		ast.SetSpan(bin, ast.Cover(lhs.Span(), rhs.Span()))
		lhs = bin
	}
}

// parsePostfix parses an atom followed by any number of single-argument calls.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.cursor.PeekKind() == lexer.LParen {
		p.cursor.Next()
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(lexer.RParen, "to close call")
		if err != nil {
			return nil, err
		}
		call := ast.NewFunctionCall(expr, arg)
		ast.SetSpan(call, ast.Cover(expr.Span(), closing.Span))
		expr = call
	}
	return expr, nil
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.cursor.Next()
	switch tok.Kind {
	case lexer.Number:
		lit := ast.NewIntegerLiteral(tok.Number)
		ast.SetSpan(lit, tok.Span)
		return lit, nil
	case lexer.Name:
		id := ast.NewIdentifier(tok.Text)
		ast.SetSpan(id, tok.Span)
		return id, nil
	case lexer.LParen:
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(lexer.RParen, "to close parenthesised expression")
		if err != nil {
			return nil, err
		}
		ast.SetSpan(inner, ast.Cover(tok.Span, closing.Span))
		return inner, nil
	default:
		return nil, &Error{Expected: atomStarts, Found: tok, Context: "to start expression"}
	}
}
