package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/cellref"
)

// ErrInvalidToken is returned for a symbol that is neither an operator, a
// reference nor a signed integer literal.
var ErrInvalidToken = errors.New("invalid token")

var literalRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Lex classifies a single symbol. Operators are tried first, then the
// reference grammar, then signed integer literals.
func Lex(sym string) (Token, error) {
	if op, ok := LookupOp(sym); ok {
		return Token{Kind: Operator, Text: sym, Op: op}, nil
	}

	if cellref.IsRef(sym) {
		coord, err := cellref.ParseRef(sym)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return Token{Kind: Reference, Text: sym, Ref: coord}, nil
	}

	if literalRegex.MatchString(sym) {
		v, err := strconv.ParseFloat(sym, 64)
		// Out-of-range literals saturate to ±Inf.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, sym)
		}
		return Token{Kind: Literal, Text: sym, Value: v}, nil
	}

	return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, sym)
}

// Split breaks a formula on runs of whitespace and lexes every symbol. A
// formula without any symbol is rejected the same way an unknown symbol is.
func Split(formula string) ([]Token, error) {
	fields := strings.Fields(formula)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidToken, formula)
	}

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tok, err := Lex(f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// References returns the reference tokens of a sequence, in order.
func References(tokens []Token) []Token {
	var refs []Token
	for _, tok := range tokens {
		if tok.IsReference() {
			refs = append(refs, tok)
		}
	}
	return refs
}
