package rexfa

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/dekarrin/rexfa/internal/rexerr"
	"github.com/stretchr/testify/assert"
)

func Test_EndToEnd(t *testing.T) {
	testCases := []struct {
		name   string
		infix  string
		accept []string
		reject []string
	}{
		{
			name:   "worked example from spec",
			infix:  "(a|b)*(c)+",
			accept: []string{"ababababac", "abc", "c", "ccc"},
			reject: []string{"ab", "", "ccc.a"},
		},
		{
			name:   "star of star collapses",
			infix:  "(a*)*",
			accept: []string{"aaaa", ""},
			reject: []string{"b"},
		},
		{
			name:   "optional",
			infix:  "a?b",
			accept: []string{"b", "ab"},
			reject: []string{"aab"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			nfa, err := Parse(tc.infix)
			if !assert.NoError(err) {
				return
			}

			dfa, err := ConvertNFAToDFA(nfa, nil)
			if !assert.NoError(err) {
				return
			}

			for _, in := range tc.accept {
				assert.Truef(SimulateNFA(nfa, in), "NFA: expected %q to be accepted", in)
				assert.Truef(SimulateDFA(dfa, in), "DFA: expected %q to be accepted", in)
			}
			for _, in := range tc.reject {
				assert.Falsef(SimulateNFA(nfa, in), "NFA: expected %q to be rejected", in)
				assert.Falsef(SimulateDFA(dfa, in), "DFA: expected %q to be rejected", in)
			}
		})
	}
}

// Test_NFA_DFA_agreeOnSamples is Testable Property 1 from spec.md §8:
// for a sample of inputs, the NFA and DFA built from the same pattern must
// agree on every one of them.
func Test_NFA_DFA_agreeOnSamples(t *testing.T) {
	assert := assert.New(t)

	nfa, err := Parse("(a|b)*(c)+")
	if !assert.NoError(err) {
		return
	}
	dfa, err := ConvertNFAToDFA(nfa, nil)
	if !assert.NoError(err) {
		return
	}

	samples := []string{"", "a", "b", "c", "ac", "bc", "abc", "cccc", "aabbcc", "abcabc"}
	for _, s := range samples {
		assert.Equalf(SimulateNFA(nfa, s), SimulateDFA(dfa, s), "NFA/DFA disagreed on %q", s)
	}
}

// Test_ConvertNFAToDFA_isDeterministic is Testable Property 2: two separate
// builds of the same pattern over the same (derived) alphabet produce DFAs
// with identical start/state-count shape.
func Test_ConvertNFAToDFA_isDeterministic(t *testing.T) {
	assert := assert.New(t)

	nfaA, err := Parse("(a|b)*(c)+")
	if !assert.NoError(err) {
		return
	}
	dfaA, err := ConvertNFAToDFA(nfaA, nil)
	if !assert.NoError(err) {
		return
	}

	nfaB, err := Parse("(a|b)*(c)+")
	if !assert.NoError(err) {
		return
	}
	dfaB, err := ConvertNFAToDFA(nfaB, nil)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(len(dfaA.States), len(dfaB.States))
	assert.Equal(dfaA.Start, dfaB.Start)
}

func Test_Parse_malformedPattern(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("(a|b")

	if !assert.Error(err) {
		return
	}
	assert.True(errors.Is(err, rexerr.ErrUnbalancedParen))
}

func Test_Options_Logger_receivesMilestones(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	opts := Options{Logger: log.New(&buf, "", 0)}

	nfa, err := Parse("a|b", opts)
	if !assert.NoError(err) {
		return
	}
	_, err = ConvertNFAToDFA(nfa, nil, opts)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(buf.String(), "postfix form")
	assert.Contains(buf.String(), "built DFA")
}

func Test_Options_nilLogger_isSilent(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("a|b", Options{})

	assert.NoError(err)
}
