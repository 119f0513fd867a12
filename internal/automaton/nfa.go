package automaton

import (
	"sort"

	"github.com/dekarrin/rexfa/internal/util"
	"github.com/google/uuid"
)

// NFA is a two-terminal nondeterministic finite automaton: an arena of
// States reachable from Start, with End marking the designated accepting
// terminal set up by the construction that produced this NFA (see
// internal/thompson). The arena is a map keyed by state id rather than a
// slice since ids are assigned by a shared IDGen and aren't guaranteed to
// stay densely packed if a future combinator ever discards a fragment.
type NFA struct {
	BuildID uuid.UUID
	States  map[int]*State
	Start   int
	End     int
}

// NewNFA returns an NFA with no states. AddState must be called at least
// once before Start/End are meaningful.
func NewNFA(ids *IDGen) *NFA {
	return &NFA{BuildID: ids.BuildID, States: map[int]*State{}}
}

// AddState allocates a new state with a fresh id, adds it to the arena,
// and returns it.
func (n *NFA) AddState(ids *IDGen) *State {
	s := &State{ID: ids.Next()}
	n.States[s.ID] = s
	return s
}

// State returns the state with the given id, or nil if it isn't in this
// NFA's arena.
func (n *NFA) State(id int) *State {
	return n.States[id]
}

// EpsilonClosure computes the smallest set of state ids containing seed
// and closed under ε-transitions, using a worklist stack so each state is
// visited at most once regardless of how many ε-edges point back into
// already-seen territory (this is what makes star/plus cycles safe).
func (n *NFA) EpsilonClosure(seed util.IntSet) util.IntSet {
	closure := util.NewIntSet()
	var pending util.Stack[int]

	for id := range seed {
		pending.Push(id)
	}

	for pending.Len() > 0 {
		id := pending.Pop()
		if closure.Has(id) {
			continue
		}
		closure.Add(id)

		state := n.States[id]
		if state == nil {
			continue
		}
		for _, t := range state.Transitions {
			if t.Symbol == Epsilon && !closure.Has(t.Target) {
				pending.Push(t.Target)
			}
		}
	}

	return closure
}

// Move returns the set of state ids reachable from some state in from by
// a single transition on symbol. ε-transitions are never followed here;
// callers that want the closed move should call EpsilonClosure on the
// result.
func (n *NFA) Move(from util.IntSet, symbol rune) util.IntSet {
	out := util.NewIntSet()
	for id := range from {
		state := n.States[id]
		if state == nil {
			continue
		}
		for _, t := range state.Transitions {
			if t.Symbol == symbol {
				out.Add(t.Target)
			}
		}
	}
	return out
}

// Alphabet returns the sorted set of concrete (non-ε) symbols appearing on
// any transition in this NFA, used when the caller doesn't supply an
// explicit alphabet to ConvertNFAToDFA.
func (n *NFA) Alphabet() []rune {
	seen := map[rune]bool{}
	for _, s := range n.States {
		for _, t := range s.Transitions {
			if t.Symbol != Epsilon {
				seen[t.Symbol] = true
			}
		}
	}

	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
