package lexer

import "tiny/interpreter-go/pkg/ast"

// Cursor walks a token sequence. Reads past the end yield an EOF token
// positioned just after the last real token.
type Cursor struct {
	tokens []Token
	pos    int
	end    ast.Position
}

// NewCursor wraps tokens. The slice is not copied and must not be mutated
// while the cursor is in use.
func NewCursor(tokens []Token) *Cursor {
	c := &Cursor{tokens: tokens, end: ast.Position{Line: 1, Column: 1}}
	if n := len(tokens); n > 0 {
		c.end = tokens[n-1].Span.End
	}
	return c
}

func (c *Cursor) eof() Token {
	return Token{Kind: EOF, Span: ast.Span{Start: c.end, End: c.end}}
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	if c.pos >= len(c.tokens) {
		return c.eof()
	}
	return c.tokens[c.pos]
}

// PeekKind returns the kind of the current token.
func (c *Cursor) PeekKind() Kind {
	return c.Peek().Kind
}

// Lookahead returns the token after the current one.
func (c *Cursor) Lookahead() Token {
	if c.pos+1 >= len(c.tokens) {
		return c.eof()
	}
	return c.tokens[c.pos+1]
}

// Next consumes and returns the current token.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

// AtEnd reports whether every token has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens)
}
