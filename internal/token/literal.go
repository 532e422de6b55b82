package token

import (
	"fmt"
	"strconv"
)

type LiteralKind uint8

const (
	LiteralNone LiteralKind = iota
	LiteralIdentifier
	LiteralString
	LiteralNumber
	LiteralBool
)

// Literal is the payload a token (or an AST literal node) carries.
//
// The set of implementations is closed: NoneLiteral, IdentifierLiteral,
// StringLiteral, NumberLiteral and BoolLiteral. Tokens never carry a
// BoolLiteral, it only appears in parsed `true`/`false` expressions.
type Literal interface {
	Kind() LiteralKind
	fmt.Stringer
	fmt.GoStringer

	literal()
}

type (
	NoneLiteral       struct{}
	IdentifierLiteral string
	StringLiteral     string
	NumberLiteral     float64
	BoolLiteral       bool
)

var None Literal = NoneLiteral{}

func (NoneLiteral) Kind() LiteralKind       { return LiteralNone }
func (IdentifierLiteral) Kind() LiteralKind { return LiteralIdentifier }
func (StringLiteral) Kind() LiteralKind     { return LiteralString }
func (NumberLiteral) Kind() LiteralKind     { return LiteralNumber }
func (BoolLiteral) Kind() LiteralKind       { return LiteralBool }

func (NoneLiteral) String() string         { return "nil" }
func (l IdentifierLiteral) String() string { return string(l) }
func (l StringLiteral) String() string     { return string(l) }
func (l BoolLiteral) String() string       { return strconv.FormatBool(bool(l)) }

// String renders the shortest decimal form, so 10 prints as "10", not "10.0".
func (l NumberLiteral) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

func (NoneLiteral) GoString() string         { return "<nil>" }
func (l IdentifierLiteral) GoString() string { return strconv.Quote(string(l)) }
func (l StringLiteral) GoString() string     { return strconv.Quote(string(l)) }
func (l NumberLiteral) GoString() string     { return l.String() }
func (l BoolLiteral) GoString() string       { return l.String() }

func (NoneLiteral) literal()       {}
func (IdentifierLiteral) literal() {}
func (StringLiteral) literal()     {}
func (NumberLiteral) literal()     {}
func (BoolLiteral) literal()       {}

var (
	_ Literal = NoneLiteral{}
	_ Literal = IdentifierLiteral("")
	_ Literal = StringLiteral("")
	_ Literal = NumberLiteral(0)
	_ Literal = BoolLiteral(false)
)
