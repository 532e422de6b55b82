package token

import (
	"fmt"
)

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Literal
	Line    int
}

func NewToken(t TokenType, lexeme string, literal Literal, line int) Token {
	if literal == nil {
		literal = None
	}
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal Literal, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.literal().GoString())
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %s, Line: %d}", t.Type, t.Lexeme, t.literal().GoString(), t.Line)
}

func (t Token) literal() Literal {
	if t.Literal == nil {
		return None
	}
	return t.Literal
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
