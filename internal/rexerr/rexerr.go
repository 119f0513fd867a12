// Package rexerr holds the error taxonomy for the regex-to-automaton
// pipeline: one concrete error type carrying enough context to diagnose a
// malformed pattern, plus a sentinel per failure category for errors.Is.
package rexerr

import (
	"errors"
	"fmt"
)

// Sentinels identifying the broad category of a CompileError. Compare
// against these with errors.Is rather than inspecting CompileError fields
// directly.
var (
	// ErrUnbalancedParen is returned when a ')' has no matching '(', or
	// input is exhausted with an unclosed '(' still on the operator stack.
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")

	// ErrDanglingOperator is returned when a postfix unary or binary
	// operator has no preceding operand(s) to act on.
	ErrDanglingOperator = errors.New("operator with no preceding operand")

	// ErrUnknownOperator is returned when a postfix token is neither a
	// recognized operator nor classifiable as an operand.
	ErrUnknownOperator = errors.New("unrecognized operator")

	// ErrStackInvariant is returned when the NFA builder's working stack
	// does not end with exactly one NFA on it.
	ErrStackInvariant = errors.New("build stack invariant violated")

	// ErrLimitExceeded is returned when a configured Limits bound
	// (internal/rexconfig) would be exceeded by the requested build.
	ErrLimitExceeded = errors.New("automaton size limit exceeded")

	// ErrInvalidConfig is returned when an internal/rexconfig Limits file
	// can't be read or parsed.
	ErrInvalidConfig = errors.New("invalid rexfa configuration")
)

// CompileError is a fatal error encountered while translating a regex into
// postfix, building an NFA from postfix, or converting an NFA to a DFA. It
// carries the offending rune (if any) and its position (if known) for
// diagnosis. Offset is a rune index into the string the failing stage was
// scanning: the concatenation-expanded infix for ToPostfix errors, the
// postfix string for Build errors. It is -1 when no position is known.
type CompileError struct {
	sentinel error
	detail   string
	Rune     rune
	Offset   int
	wrapped  error
}

// Error implements error.
func (e *CompileError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d, %q)", e.sentinel, e.detail, e.Offset, e.Rune)
	}
	return fmt.Sprintf("%s: %s", e.sentinel, e.detail)
}

// Unwrap allows errors.Is(err, rexerr.ErrUnbalancedParen) and friends to
// match against the sentinel this error was constructed from, even when a
// lower-level cause is also wrapped (errors.Is walks every target an
// Unwrap() []error returns, per Go 1.20's multi-error unwrapping).
func (e *CompileError) Unwrap() []error {
	if e.wrapped != nil {
		return []error{e.sentinel, e.wrapped}
	}
	return []error{e.sentinel}
}

// New builds a CompileError categorized by sentinel, with a human-readable
// detail and no rune/offset context.
func New(sentinel error, detail string) *CompileError {
	return &CompileError{sentinel: sentinel, detail: detail, Offset: -1}
}

// NewAt builds a CompileError categorized by sentinel, with the rune that
// triggered it and that rune's index (see CompileError).
func NewAt(sentinel error, detail string, r rune, offset int) *CompileError {
	return &CompileError{sentinel: sentinel, detail: detail, Rune: r, Offset: offset}
}

// Wrap builds a CompileError categorized by sentinel that also wraps a
// lower-level cause.
func Wrap(sentinel error, detail string, cause error) *CompileError {
	return &CompileError{sentinel: sentinel, detail: detail, Offset: -1, wrapped: cause}
}
