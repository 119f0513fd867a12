// Package simulate runs the two deterministic simulators spec.md defines:
// a multi-state ε-closure walk over an NFA, and a single-state
// deterministic walk over a DFA. Neither ever fails: both always return
// a bool.
package simulate

import (
	"github.com/dekarrin/rexfa/internal/automaton"
	"github.com/dekarrin/rexfa/internal/util"
)

// NFA reports whether input is accepted by nfa. ε-closure is applied to
// both the initial state set and to every post-move set; skipping either
// would reject patterns whose only accepting path ends on an ε-edge.
func NFA(nfa *automaton.NFA, input string) bool {
	current := nfa.EpsilonClosure(util.NewIntSet(nfa.Start))

	for _, c := range input {
		moved := nfa.Move(current, c)
		next := nfa.EpsilonClosure(moved)
		if len(next) == 0 {
			return false
		}
		current = next
	}

	for id := range current {
		if s := nfa.State(id); s != nil && s.IsFinal {
			return true
		}
	}
	return false
}

// DFA reports whether input is accepted by dfa. A missing transition for
// the current symbol is an immediate reject, per the implicit dead-state
// rule in spec.md §4.5.
func DFA(dfa *automaton.DFA, input string) bool {
	current := dfa.StartState()

	for _, c := range input {
		next, ok := current.Transitions[c]
		if !ok {
			return false
		}
		current = dfa.State(next)
	}

	return current.IsFinal
}
