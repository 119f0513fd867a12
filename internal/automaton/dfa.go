package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rexfa/internal/util"
	"github.com/google/uuid"
)

// DFAState is one state of a determinized automaton. Its identity as "the
// same automaton state" is the set of NFA state ids in Subset: two
// DFAStates with equal Subsets (as sets, not as the slices they happen to
// be canonicalized to) are the same state and must never both exist in
// one DFA.
type DFAState struct {
	ID          int
	Subset      util.IntSet
	Transitions map[rune]int
	IsFinal     bool
}

// DFA is the determinized automaton produced by subset construction: a
// start state, every DFAState reached during construction (in the order
// they were discovered, start first), and the alphabet subset construction
// ran over.
//
// A DFA borrows the NFA state ids in its DFAStates' Subsets read-only; it
// never mutates the NFA that produced it. Dropping the DFA has no effect
// on that NFA. Dropping the NFA first and then using the DFA is a caller
// error; the DFA keeps no reference to the NFA itself, only to ids that
// were meaningful in it.
type DFA struct {
	BuildID  uuid.UUID
	Start    int
	States   map[int]*DFAState
	Order    []int
	Alphabet []rune
}

// State returns the DFAState with the given id, or nil if none exists.
func (d *DFA) State(id int) *DFAState {
	return d.States[id]
}

// StartState returns the DFA's start state.
func (d *DFA) StartState() *DFAState {
	return d.States[d.Start]
}

// String renders the DFA in a form useful for debugging and test failure
// messages: one line per state, in discovery order, listing its
// transitions and whether it accepts.
func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<START: %d, STATES:", d.Start)

	for i, id := range d.Order {
		st := d.States[id]
		sb.WriteString("\n\t")
		sb.WriteString(dfaStateString(st))
		if i+1 < len(d.Order) {
			sb.WriteByte(',')
		}
	}
	sb.WriteString("\n>")
	return sb.String()
}

func dfaStateString(st *DFAState) string {
	syms := make([]rune, 0, len(st.Transitions))
	for sym := range st.Transitions {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	var moves strings.Builder
	for i, sym := range syms {
		fmt.Fprintf(&moves, "=(%c)=> %d", sym, st.Transitions[sym])
		if i+1 < len(syms) {
			moves.WriteString(", ")
		}
	}

	str := fmt.Sprintf("(%d:%s [%s])", st.ID, st.Subset.Key(), moves.String())
	if st.IsFinal {
		str = "(" + str + ")"
	}
	return str
}
