// Package automaton holds the primitive data types for the pipeline: NFA
// states and transitions, the two-terminal NFA itself, and the
// subset-canonicalized DFA that subset construction produces from one.
//
// State ids are process-unique only within the scope of one IDGen, not
// across the whole program (see IDGen's doc comment). This is a deliberate
// re-architecture away from the module-level counter a naively-ported
// version of this algorithm would reach for.
package automaton

import "github.com/google/uuid"

// Epsilon is the sentinel Transition.Symbol value denoting an ε-transition,
// i.e. one followed without consuming input. It is not a valid rune any
// caller-supplied alphabet may contain.
const Epsilon rune = -1

// IDGen is a monotonic, process-unique-within-itself id generator. One
// IDGen is owned by exactly one NFA builder for the duration of one
// Parse/Build call; ids it produces are guaranteed unique only against
// other ids from the same IDGen. Two concurrent builds, each with its own
// IDGen, may legally mint colliding ids without any race, since neither
// build's states are ever compared against the other's.
//
// BuildID exists purely so log lines from concurrent builds can be told
// apart; it plays no part in state identity or equality.
type IDGen struct {
	next    int
	BuildID uuid.UUID
}

// NewIDGen returns a ready-to-use IDGen starting its count at 0.
func NewIDGen() *IDGen {
	return &IDGen{BuildID: uuid.New()}
}

// Next returns the next unused id and advances the counter.
func (g *IDGen) Next() int {
	id := g.next
	g.next++
	return id
}

// Transition is a single outgoing edge from a State: Symbol is either a
// concrete alphabet character or Epsilon, and Target is the id of the
// destination state. A Transition is owned by exactly one source State;
// Target is a non-owning reference into whatever arena holds that id,
// since the graph it names may be cyclic.
type Transition struct {
	Symbol rune
	Target int
}

// State is a single NFA node: a process-unique id, its outgoing
// transitions in the order they were added, and whether it is a final
// (accepting) state in the NFA it currently belongs to.
type State struct {
	ID          int
	Transitions []Transition
	IsFinal     bool
}

// AddTransition appends a new outgoing edge from s to target on symbol
// (Epsilon for an ε-edge).
func (s *State) AddTransition(symbol rune, target int) {
	s.Transitions = append(s.Transitions, Transition{Symbol: symbol, Target: target})
}
