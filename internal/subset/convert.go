// Package subset implements subset construction: determinizing an NFA
// into a DFA whose states are canonicalized by NFA-subset identity, over
// a caller-supplied or NFA-derived alphabet.
package subset

import (
	"github.com/dekarrin/rexfa/internal/automaton"
	"github.com/dekarrin/rexfa/internal/rexconfig"
	"github.com/dekarrin/rexfa/internal/rexerr"
	"github.com/dekarrin/rexfa/internal/util"
)

// Convert runs subset construction over nfa and alphabet, bounded by
// limits.MaxDFAStates. alphabet is iterated in the order given; callers
// that want reproducible DfaState ids across runs (Testable Property 2 in
// spec.md) should pass a sorted alphabet; ConvertNFAToDFA at the rexfa
// package boundary always does.
//
// DFA state ids are minted from a counter scoped to this one conversion,
// independent of whatever IDGen built nfa: per spec.md §9, NFA and DFA id
// spaces are deliberately not shared.
func Convert(nfa *automaton.NFA, alphabet []rune, limits rexconfig.Limits) (*automaton.DFA, error) {
	ids := automaton.NewIDGen()
	dfa := &automaton.DFA{
		BuildID:  ids.BuildID,
		States:   map[int]*automaton.DFAState{},
		Alphabet: alphabet,
	}

	bySubset := map[string]*automaton.DFAState{}

	start := nfa.EpsilonClosure(util.NewIntSet(nfa.Start))
	startState, err := newDFAState(dfa, ids, start, bySubset, limits)
	if err != nil {
		return nil, err
	}
	dfa.Start = startState.ID

	queue := []int{startState.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		current := dfa.States[id]

		for _, c := range alphabet {
			moved := nfa.Move(current.Subset, c)
			closed := nfa.EpsilonClosure(moved)
			if len(closed) == 0 {
				continue
			}

			key := closed.Key()
			target, exists := bySubset[key]
			if !exists {
				target, err = newDFAState(dfa, ids, closed, bySubset, limits)
				if err != nil {
					return nil, err
				}
				queue = append(queue, target.ID)
			}

			current.Transitions[c] = target.ID
		}
	}

	for _, id := range dfa.Order {
		st := dfa.States[id]
		st.IsFinal = subsetHasFinal(nfa, st.Subset)
	}

	return dfa, nil
}

func newDFAState(dfa *automaton.DFA, ids *automaton.IDGen, subset util.IntSet, bySubset map[string]*automaton.DFAState, limits rexconfig.Limits) (*automaton.DFAState, error) {
	if len(dfa.Order) >= limits.MaxDFAStates {
		return nil, rexerr.New(rexerr.ErrLimitExceeded, "subset construction exceeded the configured MaxDFAStates")
	}

	st := &automaton.DFAState{
		ID:          ids.Next(),
		Subset:      subset,
		Transitions: map[rune]int{},
	}
	dfa.States[st.ID] = st
	dfa.Order = append(dfa.Order, st.ID)
	bySubset[subset.Key()] = st
	return st, nil
}

func subsetHasFinal(nfa *automaton.NFA, subset util.IntSet) bool {
	for id := range subset {
		if s := nfa.State(id); s != nil && s.IsFinal {
			return true
		}
	}
	return false
}
