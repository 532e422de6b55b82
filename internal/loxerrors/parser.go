package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxfront/internal/token"
)

var (
	ErrParseExpectedExpression      = errors.New("Expect expression.")
	ErrParseUnexpectedEndOfInput    = fmt.Errorf("%w", ErrParseExpectedExpression)
	ErrParseExpectedRightParenToken = errors.New("Expect ')' after expression.")
	ErrParseExpectedEndOfExpression = errors.New("Expect end of expression.")
	ErrParseExpectedSemicolon       = errors.New("Expect ';' after expression.")
)

func NewParseError(tok *token.Token, cause error) *ParserError {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

// Line implements LineError.
func (p *ParserError) Line() int {
	return p.tok.Line
}

// Token returns the token the parser stopped at.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
var _ LineError = (*ParserError)(nil)
