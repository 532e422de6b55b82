package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxfront/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber          = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
	ErrRuntimeUnsupportedExpression        = errors.New("Unsupported expression.")
)

func NewRuntimeError(tok *token.Token, cause error) *RuntimeError {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d]", r.cause, r.tok.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

// Line implements LineError.
func (r *RuntimeError) Line() int {
	return r.tok.Line
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
var _ LineError = (*RuntimeError)(nil)
