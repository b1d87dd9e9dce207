package rpn

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/token"
)

// Resolver supplies the value of a referenced cell.
type Resolver interface {
	Resolve(ctx context.Context, at cellref.Coord) (float64, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, at cellref.Coord) (float64, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, at cellref.Coord) (float64, error) {
	return f(ctx, at)
}

// Eval runs the token sequence and returns the single remaining value.
// Errors from the resolver are returned unchanged.
func Eval(ctx context.Context, tokens []token.Token, r Resolver) (float64, error) {
	stack := make([]float64, 0, len(tokens))

	for i, tok := range tokens {
		switch tok.Kind {
		case token.Literal:
			stack = append(stack, tok.Value)

		case token.Reference:
			if r == nil {
				return 0, &EvalError{Pos: i, Symbol: tok.Text, Err: fmt.Errorf("%w: no resolver for reference", ErrMalformedExpression)}
			}
			v, err := r.Resolve(ctx, tok.Ref)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case token.Operator:
			arity := tok.Op.Arity()
			if len(stack) < arity {
				return 0, &EvalError{Pos: i, Symbol: tok.Text, Err: fmt.Errorf("%w: stack underflow", ErrMalformedExpression)}
			}

			var result float64
			if arity == 1 {
				operand := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				result = applyUnary(tok.Op, operand)
			} else {
				right := stack[len(stack)-1]
				left := stack[len(stack)-2]
				stack = stack[:len(stack)-2]

				var err error
				result, err = applyBinary(tok.Op, left, right)
				if err != nil {
					return 0, &EvalError{Pos: i, Symbol: tok.Text, Err: err}
				}
			}
			stack = append(stack, result)

		default:
			return 0, &EvalError{Pos: i, Symbol: tok.Text, Err: fmt.Errorf("%w: unknown token kind %s", ErrMalformedExpression, tok.Kind)}
		}
	}

	if len(stack) != 1 {
		return 0, &EvalError{Pos: -1, Err: fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(stack))}
	}
	return stack[0], nil
}

func applyUnary(op token.Op, operand float64) float64 {
	if op == token.Inc {
		return operand + 1
	}
	return operand - 1
}

func applyBinary(op token.Op, left, right float64) (float64, error) {
	switch op {
	case token.Add:
		return left + right, nil
	case token.Sub:
		return left - right, nil
	case token.Mul:
		return left * right, nil
	case token.Div:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: operator %s is not binary", ErrMalformedExpression, op)
	}
}
