package parser

import (
	"fmt"

	"github.com/leonardinius/loxfront/internal/token"
)

// Visitor is the interface that wraps the per-node Visit methods.
//
// An operation over the tree (printing, evaluating) implements Visitor once
// per result type; Accept dispatches a node to the matching method.
type Visitor[R any] interface {
	VisitBinary(expr *Binary) R
	VisitGrouping(expr *Grouping) R
	VisitLiteral(expr *Literal) R
	VisitUnary(expr *Unary) R
}

// Expr is an expression node. The set of nodes is closed: *Binary, *Grouping,
// *Literal and *Unary.
type Expr interface {
	expr()
}

// Accept dispatches expr to the visitor method for its concrete node type.
func Accept[R any](expr Expr, v Visitor[R]) R {
	switch e := expr.(type) {
	case *Binary:
		return v.VisitBinary(e)
	case *Grouping:
		return v.VisitGrouping(e)
	case *Literal:
		return v.VisitLiteral(e)
	case *Unary:
		return v.VisitUnary(e)
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

type Binary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type Grouping struct {
	Expression Expr
}

type Literal struct {
	Value token.Literal
}

type Unary struct {
	Operator *token.Token
	Right    Expr
}

func (*Binary) expr()   {}
func (*Grouping) expr() {}
func (*Literal) expr()  {}
func (*Unary) expr()    {}

var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
)
