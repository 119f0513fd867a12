package thompson

import (
	"errors"
	"testing"

	"github.com/dekarrin/rexfa/internal/automaton"
	"github.com/dekarrin/rexfa/internal/rexerr"
	"github.com/dekarrin/rexfa/internal/shuntingyard"
	"github.com/dekarrin/rexfa/internal/util"
	"github.com/stretchr/testify/assert"
)

// acceptsNFA is a small local simulator so these tests don't depend on
// internal/simulate, keeping the two packages' tests independent of each
// other's correctness.
func acceptsNFA(nfa *automaton.NFA, input string) bool {
	current := nfa.EpsilonClosure(util.NewIntSet(nfa.Start))
	for _, c := range input {
		moved := nfa.Move(current, c)
		current = nfa.EpsilonClosure(moved)
		if len(current) == 0 {
			return false
		}
	}
	for id := range current {
		if s := nfa.State(id); s != nil && s.IsFinal {
			return true
		}
	}
	return false
}

func Test_Build_accepts(t *testing.T) {
	testCases := []struct {
		name    string
		infix   string
		accept  []string
		reject  []string
	}{
		{
			name:   "empty pattern accepts only empty string",
			infix:  "",
			accept: []string{""},
			reject: []string{"a"},
		},
		{
			name:   "single literal",
			infix:  "a",
			accept: []string{"a"},
			reject: []string{"", "aa", "b"},
		},
		{
			name:   "concatenation",
			infix:  "ab",
			accept: []string{"ab"},
			reject: []string{"a", "b", "ba"},
		},
		{
			name:   "union",
			infix:  "a|b",
			accept: []string{"a", "b"},
			reject: []string{"", "ab", "c"},
		},
		{
			name:   "star",
			infix:  "a*",
			accept: []string{"", "a", "aaaa"},
			reject: []string{"b", "aab"},
		},
		{
			name:   "plus",
			infix:  "a+",
			accept: []string{"a", "aaaa"},
			reject: []string{"", "b"},
		},
		{
			name:   "optional",
			infix:  "a?",
			accept: []string{"", "a"},
			reject: []string{"aa", "b"},
		},
		{
			name:   "worked example from spec",
			infix:  "(a|b)*(c)+",
			accept: []string{"ababababac", "abc", "c", "cc"},
			reject: []string{"ab", "ccca"},
		},
		{
			name:   "nested star",
			infix:  "(a*)*",
			accept: []string{"", "a", "aaaa"},
			reject: []string{"b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			postfix, err := shuntingyard.ToPostfix(tc.infix)
			if !assert.NoError(err) {
				return
			}

			nfa, err := Build(postfix, automaton.NewIDGen())
			if !assert.NoError(err) {
				return
			}

			for _, in := range tc.accept {
				assert.Truef(acceptsNFA(nfa, in), "expected %q to be accepted", in)
			}
			for _, in := range tc.reject {
				assert.Falsef(acceptsNFA(nfa, in), "expected %q to be rejected", in)
			}
		})
	}
}

func Test_Build_errors(t *testing.T) {
	testCases := []struct {
		name        string
		postfix     string
		expectErrIs error
	}{
		{name: "dangling unary", postfix: "*", expectErrIs: rexerr.ErrDanglingOperator},
		{name: "dangling binary", postfix: "a·", expectErrIs: rexerr.ErrDanglingOperator},
		{name: "leftover stack", postfix: "ab", expectErrIs: rexerr.ErrStackInvariant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Build(tc.postfix, automaton.NewIDGen())

			if !assert.Error(err) {
				return
			}
			assert.True(errors.Is(err, tc.expectErrIs))
		})
	}
}
