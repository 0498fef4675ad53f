package parser

import (
	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
)

// ParseStatement parses one declaration, assignment or expression statement.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	if p.cursor.PeekKind() == lexer.Var {
		return p.parseDeclaration()
	}

	lhs, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	switch p.cursor.PeekKind() {
	case lexer.Semicolon:
		semi := p.cursor.Next()
		stmt := ast.NewExpressionStatement(lhs)
		ast.SetSpan(stmt, ast.Cover(lhs.Span(), semi.Span))
		return stmt, nil
	case lexer.Assign:
		p.cursor.Next()
		rhs, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		semi, err := p.expect(lexer.Semicolon, "after assignment")
		if err != nil {
			return nil, err
		}
		stmt := ast.NewAssignment(lhs, rhs)
		ast.SetSpan(stmt, ast.Cover(lhs.Span(), semi.Span))
		return stmt, nil
	default:
		return nil, &Error{
			Expected: []lexer.Kind{lexer.Semicolon, lexer.Assign},
			Found:    p.cursor.Peek(),
			Context:  "after expression",
		}
	}
}

func (p *Parser) parseDeclaration() (ast.Statement, error) {
	keyword := p.cursor.Next()
	nameTok, err := p.expect(lexer.Name, "after 'var'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Assign, "in declaration"); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.Semicolon, "after declaration")
	if err != nil {
		return nil, err
	}

	name := ast.NewIdentifier(nameTok.Text)
	ast.SetSpan(name, nameTok.Span)
	stmt := ast.NewDeclaration(name, value)
	ast.SetSpan(stmt, ast.Cover(keyword.Span, semi.Span))
	return stmt, nil
}
