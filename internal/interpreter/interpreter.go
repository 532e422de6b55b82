package interpreter

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/parser"
	"github.com/leonardinius/loxfront/internal/token"
)

type Interpreter interface {
	// Interpret interprets the given expression.
	// Returns the stringified result of the expression and an error if any.
	// The error is nil if the expression is valid.
	//
	// Not thread safe.
	// Resets internal state on Interpret.
	Interpret(expr parser.Expr) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result of the expression and an error if any.
	// The error is nil if the expression is valid.
	//
	// Not thread safe.
	// Resets internal state on Evaluate.
	Evaluate(expr parser.Expr) (Value, error)
}

type interpreter struct {
	err    error
	logger zerolog.Logger
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{logger: opts.logger}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(expr parser.Expr) (string, error) {
	if value, err := i.Evaluate(expr); err != nil {
		return "", err
	} else {
		return i.stringify(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	i.reset()

	value, err := i.evaluate(expr)
	if err != nil {
		return nil, err
	}
	i.logger.Debug().Stringer("value", value).Msg("evaluated")
	return value, nil
}

func (i *interpreter) stringify(v Value) string {
	if v == nil {
		return NilValue.String()
	}
	return v.String()
}

// VisitBinary implements parser.Visitor.
func (i *interpreter) VisitBinary(expr *parser.Binary) Value {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	switch expr.Operator.Type {
	case token.GREATER:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) > right.(ValueFloat))
	case token.GREATER_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) >= right.(ValueFloat))
	case token.LESS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) < right.(ValueFloat))
	case token.LESS_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) <= right.(ValueFloat))
	case token.BANG_EQUAL:
		return ValueBool(!i.isEqual(left, right))
	case token.EQUAL_EQUAL:
		return ValueBool(i.isEqual(left, right))
	case token.MINUS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(ValueFloat) - right.(ValueFloat)
	case token.PLUS:
		if left, ok := left.(ValueString); ok {
			if right, ok := right.(ValueString); ok {
				return left + right
			}
		}
		if left, ok := left.(ValueFloat); ok {
			if right, ok := right.(ValueFloat); ok {
				return left + right
			}
		}
		return i.reportError(expr.Operator, loxerrors.ErrRuntimeOperandsMustNumbersOrStrings)
	case token.SLASH:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(ValueFloat) / right.(ValueFloat)
	case token.STAR:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(ValueFloat) * right.(ValueFloat)
	}

	return i.unreachable(expr.Operator)
}

// VisitGrouping implements parser.Visitor.
func (i *interpreter) VisitGrouping(expr *parser.Grouping) Value {
	if v, err := i.evaluate(expr.Expression); err == nil {
		return v
	}
	return nil
}

// VisitLiteral implements parser.Visitor.
func (i *interpreter) VisitLiteral(expr *parser.Literal) Value {
	switch v := expr.Value.(type) {
	case nil, token.NoneLiteral:
		return NilValue
	case token.BoolLiteral:
		return ValueBool(v)
	case token.NumberLiteral:
		return ValueFloat(v)
	case token.StringLiteral:
		return ValueString(v)
	}

	i.err = fmt.Errorf("%w literal %#v", loxerrors.ErrRuntimeUnsupportedExpression, expr.Value)
	return nil
}

// VisitUnary implements parser.Visitor.
func (i *interpreter) VisitUnary(expr *parser.Unary) Value {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	switch expr.Operator.Type {
	case token.MINUS:
		if ok := i.checkNumberOperand(expr.Operator, right); !ok {
			return nil
		}
		return -right.(ValueFloat)
	case token.BANG:
		return ValueBool(!i.isTruthy(right))
	}

	return i.unreachable(expr.Operator)
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	if i.hasErr() {
		return nil, i.err
	}

	value := parser.Accept[Value](expr, i)

	return value, i.err
}

func (i *interpreter) isTruthy(value Value) bool {
	switch v := value.(type) {
	case nil, ValueNil:
		return false
	case ValueBool:
		return bool(v)
	}

	return true
}

func (i *interpreter) isEqual(left, right Value) bool {
	return left == right
}

func (i *interpreter) unreachable(tok *token.Token) Value {
	panic(fmt.Sprintf("unreachable: unexpected operator %s", tok.Type))
}

func (i *interpreter) hasErr() bool {
	return i.err != nil
}

func (i *interpreter) checkNumberOperands(tok *token.Token, left, right Value) bool {
	if _, ok := left.(ValueFloat); !ok {
		i.reportError(tok, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	} else if _, ok := right.(ValueFloat); !ok {
		i.reportError(tok, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}
	return !i.hasErr()
}

func (i *interpreter) checkNumberOperand(tok *token.Token, val Value) bool {
	if _, ok := val.(ValueFloat); !ok {
		i.reportError(tok, loxerrors.ErrRuntimeOperandMustBeNumber)
	}

	return !i.hasErr()
}

func (i *interpreter) reportError(tok *token.Token, cause error) Value {
	i.err = loxerrors.NewRuntimeError(tok, cause)
	return nil
}

func (i *interpreter) reset() {
	i.err = nil
}

var _ parser.Visitor[Value] = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
