package token

import (
	"fmt"

	"github.com/specialistvlad/rpngrid/internal/cellref"
)

// Kind tags the variant held by a Token.
type Kind int

const (
	Literal Kind = iota
	Operator
	Reference
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Operator:
		return "operator"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one of the six arithmetic operators.
type Op int

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	Inc
	Dec
)

var opSymbols = map[Op]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Inc: "++",
	Dec: "--",
}

var symbolOps = func() map[string]Op {
	m := make(map[string]Op, len(opSymbols))
	for op, sym := range opSymbols {
		m[sym] = op
	}
	return m
}()

// LookupOp returns the operator spelled by sym, if any.
func LookupOp(sym string) (Op, bool) {
	op, ok := symbolOps[sym]
	return op, ok
}

// Symbol returns the textual form of the operator.
func (o Op) Symbol() string {
	return opSymbols[o]
}

// Arity is the number of operands the operator pops.
func (o Op) Arity() int {
	switch o {
	case Inc, Dec:
		return 1
	default:
		return 2
	}
}

func (o Op) String() string {
	if sym, ok := opSymbols[o]; ok {
		return sym
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Token is a single lexed symbol. Which of Value, Op and Ref is meaningful
// depends on Kind.
type Token struct {
	Kind  Kind
	Text  string
	Value float64
	Op    Op
	Ref   cellref.Coord
}

func (t Token) String() string {
	return t.Text
}

// IsReference reports whether the token refers to another cell.
func (t Token) IsReference() bool {
	return t.Kind == Reference
}
