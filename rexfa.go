// Package rexfa compiles a regular expression over a finite character
// alphabet into a deterministic finite automaton, and simulates both the
// intermediate nondeterministic automaton and the final deterministic one
// against input strings.
//
// The pipeline is four stages: Parse turns an infix pattern into an NFA
// by way of an internal infix-to-postfix translation and a Thompson
// construction; ConvertNFAToDFA determinizes that NFA via subset
// construction; SimulateNFA and SimulateDFA walk the two automata against
// an input string. None of the four stages touch shared mutable state, so
// independent goroutines may call them concurrently as long as each
// passes its own NFA/DFA values around.
package rexfa

import (
	"log"

	"github.com/dekarrin/rexfa/internal/automaton"
	"github.com/dekarrin/rexfa/internal/rexconfig"
	"github.com/dekarrin/rexfa/internal/rexerr"
	"github.com/dekarrin/rexfa/internal/shuntingyard"
	"github.com/dekarrin/rexfa/internal/simulate"
	"github.com/dekarrin/rexfa/internal/subset"
	"github.com/dekarrin/rexfa/internal/thompson"
)

// NFA is the nondeterministic automaton produced by Parse. It is an alias
// of the internal representation so callers can hold and pass it around
// without this module exposing internal/automaton directly.
type NFA = automaton.NFA

// DFA is the deterministic automaton produced by ConvertNFAToDFA.
type DFA = automaton.DFA

// Options configures a single Parse/ConvertNFAToDFA call. The zero value
// is a silent, generously-limited configuration suitable for almost all
// callers.
type Options struct {
	// Limits bounds NFA/DFA size. The zero value is rexconfig.Default().
	Limits rexconfig.Limits

	// Logger, if non-nil, receives DEBUG-level milestones (postfix form
	// produced, DFA state count) tagged with the build's correlation id.
	// A library must not write to stderr on a caller's behalf by
	// default, so this is nil (silent) unless set.
	Logger *log.Logger
}

func (o Options) limits() rexconfig.Limits {
	if o.Limits == (rexconfig.Limits{}) {
		return rexconfig.Default()
	}
	return o.Limits
}

func (o Options) logf(buildID string, format string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf("DEBUG[%s]: "+format, append([]any{buildID}, args...)...)
}

// Parse compiles infix into an NFA: InsertConcatenation + ToPostfix,
// followed by a Thompson construction over the result. It returns a
// *rexerr.CompileError (wrapped in the returned error) on any malformed
// pattern.
func Parse(infix string, opts ...Options) (*NFA, error) {
	o := firstOr(opts, Options{})

	postfix, err := shuntingyard.ToPostfix(infix)
	if err != nil {
		return nil, err
	}

	ids := automaton.NewIDGen()
	o.logf(ids.BuildID.String(), "postfix form of %q is %q", infix, postfix)

	nfa, err := thompson.Build(postfix, ids)
	if err != nil {
		return nil, err
	}
	if len(nfa.States) > o.limits().MaxNFAStates {
		return nil, rexerr.New(rexerr.ErrLimitExceeded, "Thompson construction exceeded the configured MaxNFAStates")
	}

	o.logf(ids.BuildID.String(), "built NFA with %d states", len(nfa.States))
	return nfa, nil
}

// ConvertNFAToDFA determinizes nfa via subset construction. If alphabet is
// nil, it is derived from nfa's own transitions (sorted ascending); a
// caller-supplied alphabet is sorted the same way, since DfaState
// discovery order (and therefore DfaState ids) depends on alphabet
// iteration order (spec.md §4.3).
func ConvertNFAToDFA(nfa *NFA, alphabet []rune, opts ...Options) (*DFA, error) {
	o := firstOr(opts, Options{})

	sigma := alphabet
	if sigma == nil {
		sigma = nfa.Alphabet()
	} else {
		sigma = sortedCopy(sigma)
	}

	dfa, err := subset.Convert(nfa, sigma, o.limits())
	if err != nil {
		return nil, err
	}

	o.logf(dfa.BuildID.String(), "built DFA with %d states over alphabet %q", len(dfa.States), string(sigma))
	return dfa, nil
}

// SimulateNFA reports whether input is in the language recognized by nfa.
func SimulateNFA(nfa *NFA, input string) bool {
	return simulate.NFA(nfa, input)
}

// SimulateDFA reports whether input is in the language recognized by dfa.
func SimulateDFA(dfa *DFA, input string) bool {
	return simulate.DFA(dfa, input)
}

func firstOr(opts []Options, fallback Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return fallback
}

func sortedCopy(rs []rune) []rune {
	out := make([]rune, len(rs))
	copy(out, rs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
