// Package lexer turns Tiny source text into a token sequence.
package lexer

import (
	"fmt"
	"strconv"

	"tiny/interpreter-go/pkg/ast"
)

// Error reports a character that starts no valid token, or a numeric literal
// that does not fit the integer domain.
type Error struct {
	Pos  ast.Position
	Char rune
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

type scanner struct {
	src    string
	cur    int
	line   int
	col    int
	tokens []Token
}

// Tokenize scans the complete source before any parsing happens.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{src: source, line: 1, col: 1}
	for {
		s.skipWhitespace()
		if s.atEnd() {
			return s.tokens, nil
		}
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
}

func (s *scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *scanner) pos() ast.Position {
	return ast.Position{Line: s.line, Column: s.col}
}

func (s *scanner) advance() byte {
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.src[s.cur] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *scanner) scanToken() error {
	start := s.cur
	startPos := s.pos()
	ch := s.src[s.cur]

	emit := func(kind Kind) {
		s.tokens = append(s.tokens, Token{
			Kind: kind,
			Text: s.src[start:s.cur],
			Span: ast.Span{Start: startPos, End: s.pos()},
		})
	}

	switch {
	case isAlpha(ch):
		for !s.atEnd() && isAlnum(s.src[s.cur]) {
			s.advance()
		}
		text := s.src[start:s.cur]
		if kind, ok := keywords[text]; ok {
			emit(kind)
			return nil
		}
		emit(Name)
		return nil
	case isDigit(ch):
		for !s.atEnd() && isDigit(s.src[s.cur]) {
			s.advance()
		}
		text := s.src[start:s.cur]
		value, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return &Error{Pos: startPos, Char: rune(ch), Msg: fmt.Sprintf("integer literal %s out of range", text)}
		}
		emit(Number)
		s.tokens[len(s.tokens)-1].Number = value
		return nil
	}

	if ch == '=' && s.cur+1 < len(s.src) && s.src[s.cur+1] == '=' {
		s.advance()
		s.advance()
		emit(EqualEqual)
		return nil
	}
	if kind, ok := singleCharOperators[ch]; ok {
		s.advance()
		emit(kind)
		return nil
	}
	return &Error{Pos: startPos, Char: s.peekRune()}
}

func (s *scanner) peekRune() rune {
	for _, r := range s.src[s.cur:] {
		return r
	}
	return 0
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
