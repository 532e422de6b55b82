package parser

import (
	"strings"

	"github.com/leonardinius/loxfront/internal/token"
)

// RPNPrinter renders an expression in reverse polish notation.
// Groupings leave no trace and unary minus is written as `~`.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) string {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *Grouping) string {
	return p.reverse("", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) string {
	if expr.Value == nil {
		return "nil"
	}
	return expr.Value.String()
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *Unary) string {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(Accept[string](expr, p))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return Accept[string](expr, p)
}

var _ Visitor[string] = (*RPNPrinter)(nil)
