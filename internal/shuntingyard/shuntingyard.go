// Package shuntingyard turns an infix regular expression into postfix
// form, inserting the explicit concatenation operator the rest of the
// pipeline requires before running the classic Shunting Yard algorithm
// over the fixed operator table spec.md defines.
package shuntingyard

import (
	"strings"

	"github.com/dekarrin/rexfa/internal/rexerr"
)

// ConcatOperator is the marker inserted between adjacent tokens that imply
// concatenation. It is reserved: a literal occurrence of this rune in
// caller input is treated identically to the inserted operator, and so
// can never be matched as a literal character. It is a multi-byte rune
// (U+00B7), so every pass over a regex in this package works rune by
// rune, never byte by byte.
const ConcatOperator = '·'

// reserved holds every rune the operator table itself uses; anything else
// is an operand.
var reserved = map[rune]bool{
	'|': true, '*': true, '+': true, '?': true,
	'(': true, ')': true, ConcatOperator: true,
}

// isOperand reports whether r is an operand, i.e. not one of the seven
// reserved operator/grouping runes.
func isOperand(r rune) bool {
	return !reserved[r]
}

// precedence gives the binding power of each binary/postfix operator.
// Higher binds tighter. Parentheses never appear here; they're handled
// structurally by the caller.
var precedence = map[rune]int{
	'*': 3, '+': 3, '?': 3,
	ConcatOperator: 2,
	'|':            1,
}

// isUnaryPostfix reports whether op is one of the postfix unary operators
// (* + ?), which the builder pops exactly one operand for instead of two.
func isUnaryPostfix(op rune) bool {
	return op == '*' || op == '+' || op == '?'
}

// InsertConcatenation scans infix left to right and inserts ConcatOperator
// between every adjacent pair of runes x, y where concatenation is
// implicit: x is an operand, ')', '*', '+', or '?', and y is an operand or
// '('. Every original rune is preserved in order; only ConcatOperator is
// added.
func InsertConcatenation(infix string) string {
	runes := []rune(infix)
	if len(runes) < 2 {
		return infix
	}

	var out strings.Builder
	out.Grow(len(infix) * 2)

	for i := 0; i < len(runes); i++ {
		x := runes[i]
		out.WriteRune(x)

		if i+1 >= len(runes) {
			break
		}
		y := runes[i+1]

		xEndsOperand := isOperand(x) || x == ')' || x == '*' || x == '+' || x == '?'
		yStartsOperand := isOperand(y) || y == '('

		if xEndsOperand && yStartsOperand {
			out.WriteRune(ConcatOperator)
		}
	}

	return out.String()
}

// ToPostfix converts an infix regular expression to postfix form: it first
// calls InsertConcatenation, then runs the Shunting Yard algorithm over the
// operator table in spec.md §4.1 (all five operators left-associative,
// '*'/'+'/'?' at precedence 3, '·' at 2, '|' at 1).
//
// The empty string maps to the empty string: see DESIGN.md's Open
// Questions for why this, rather than an error, is the chosen behavior for
// an empty pattern.
func ToPostfix(infix string) (string, error) {
	explicit := []rune(InsertConcatenation(infix))

	var out strings.Builder
	var ops []rune

	popToOutput := func() {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		out.WriteRune(top)
	}

	for i := 0; i < len(explicit); i++ {
		c := explicit[i]

		switch {
		case isOperand(c):
			out.WriteRune(c)

		case c == '(':
			ops = append(ops, c)

		case c == ')':
			found := false
			for len(ops) > 0 {
				if ops[len(ops)-1] == '(' {
					ops = ops[:len(ops)-1]
					found = true
					break
				}
				popToOutput()
			}
			if !found {
				return "", rexerr.NewAt(rexerr.ErrUnbalancedParen, "no matching '(' for this ')'", ')', i)
			}

		default:
			prec, ok := precedence[c]
			if !ok {
				return "", rexerr.NewAt(rexerr.ErrUnknownOperator, "not a recognized operator", c, i)
			}
			for len(ops) > 0 && ops[len(ops)-1] != '(' && precedence[ops[len(ops)-1]] >= prec {
				popToOutput()
			}
			ops = append(ops, c)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top == '(' || top == ')' {
			return "", rexerr.New(rexerr.ErrUnbalancedParen, "unclosed '(' remained on operator stack")
		}
		popToOutput()
	}

	return out.String(), nil
}

// IsUnaryPostfix reports whether r is one of the postfix unary operators
// ('*', '+', '?'). Exported for internal/thompson, which needs the same
// classification to decide how many operands a postfix token consumes.
func IsUnaryPostfix(r rune) bool {
	return isUnaryPostfix(r)
}

// IsBinary reports whether r is the infix concatenation or union
// operator. Exported for internal/thompson for the same reason as
// IsUnaryPostfix.
func IsBinary(r rune) bool {
	return r == ConcatOperator || r == '|'
}
