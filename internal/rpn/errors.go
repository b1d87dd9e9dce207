package rpn

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when `/` meets a zero right-hand operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformedExpression is returned when the token sequence underflows
	// the stack or does not leave exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")
)

// EvalError locates a failure within the token sequence.
type EvalError struct {
	Pos    int // zero-based token index, -1 when the sequence as a whole is at fault
	Symbol string
	Err    error
}

func (e *EvalError) Error() string {
	if e.Pos < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("token %d %q: %v", e.Pos, e.Symbol, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
