package parser

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/token"
)

var (
	nilExpr     Expr   = nil
	nilExprList []Expr = nil
)

type Parser interface {
	// Parse parses a single expression spanning the whole token sequence.
	// On error no tree is returned.
	Parse() (Expr, error)

	// ParseAll parses a sequence of `;` terminated expressions (the last
	// terminator may be omitted), recovering after each error so that every
	// error is reported. On any error no trees are returned.
	ParseAll() ([]Expr, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
	diag    *loxerrors.Diagnostics
}

// NewParser returns a Parser over tokens reporting into diag.
// A nil diag gets a private Diagnostics.
func NewParser(tokens []token.Token, diag *loxerrors.Diagnostics) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}
	if diag == nil {
		diag = loxerrors.NewDiagnostics()
	}

	return &parser{
		tokens:  tokens,
		current: 0,
		diag:    diag,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Expr, error) {
	expr := p.expression()

	if !p.isDone() {
		p.reportExprError(loxerrors.ErrParseExpectedEndOfExpression)
	}

	if p.err != nil {
		return nilExpr, p.err
	}

	return expr, nil
}

// ParseAll implements Parser.
func (p *parser) ParseAll() (exprs []Expr, err error) {
	var errs []error
	for !p.isAtEnd() {
		if p.match(token.SEMICOLON) {
			continue
		}

		expr := p.expression()
		if !p.isDone() && !p.match(token.SEMICOLON) {
			p.reportExprError(loxerrors.ErrParseExpectedSemicolon)
		}

		if p.err != nil {
			errs = append(errs, p.err)
			p.synchronize()
			p.err = nil
			continue
		}

		exprs = append(exprs, expr)
	}

	// if we are at error state, we do not return invalid ast tree
	if len(errs) > 0 {
		return nilExprList, errors.Join(errs...)
	}

	return exprs, nil
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	expr := p.comparison()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()

	for p.anyMatch(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &Unary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &Literal{Value: token.BoolLiteral(false)}
	}
	if p.match(token.TRUE) {
		return &Literal{Value: token.BoolLiteral(true)}
	}
	if p.match(token.NIL) {
		return &Literal{Value: token.None}
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		tok := p.previous()
		return &Literal{Value: tok.Literal}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(loxerrors.ErrParseExpectedRightParenToken)
		}
		return &Grouping{Expression: expr}
	}

	if p.isAtEnd() {
		return p.reportExprError(loxerrors.ErrParseUnexpectedEndOfInput)
	}
	return p.reportExprError(loxerrors.ErrParseExpectedExpression)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be carefull with isAtEnd, it does not check for parse errors.
// Use isDone instead.
// isAtEnd is used from top level Parse, synchronize and advance ony.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	perr := loxerrors.NewParseError(tok, err)
	p.err = perr
	p.diag.ReportError(perr)
	return nilExpr
}

func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUN,
			token.VAR,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
