// Package thompson implements the Thompson-style NFA construction: it
// consumes a postfix regular expression and emits a single two-terminal
// automaton by running the postfix tokens over a working stack of
// fragments, applying one combinator per operator exactly as spec.md
// §4.2 describes them.
package thompson

import (
	"github.com/dekarrin/rexfa/internal/automaton"
	"github.com/dekarrin/rexfa/internal/rexerr"
	"github.com/dekarrin/rexfa/internal/shuntingyard"
)

// Build lifts postfix (as produced by shuntingyard.ToPostfix) into an NFA.
// ids must be fresh for this build; every state the construction
// allocates comes from it, so two Builds sharing one ids would corrupt
// each other's state-id uniqueness.
//
// An empty postfix string is the resolved empty-regex case (see
// DESIGN.md): it produces the two-state, single-ε-edge NFA that accepts
// only the empty string, rather than an error.
func Build(postfix string, ids *automaton.IDGen) (*automaton.NFA, error) {
	nfa := automaton.NewNFA(ids)

	if postfix == "" {
		start := nfa.AddState(ids)
		end := nfa.AddState(ids)
		end.IsFinal = true
		start.AddTransition(automaton.Epsilon, end.ID)
		nfa.Start, nfa.End = start.ID, end.ID
		return nfa, nil
	}

	var stack []frag

	for i, c := range []rune(postfix) {
		switch {
		case shuntingyard.IsUnaryPostfix(c):
			if len(stack) < 1 {
				return nil, rexerr.NewAt(rexerr.ErrDanglingOperator, "postfix operator with no preceding operand", c, i)
			}
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var result frag
			switch c {
			case '*':
				result = star(nfa, ids, a)
			case '+':
				result = plus(nfa, ids, a)
			case '?':
				result = optional(nfa, ids, a)
			}
			stack = append(stack, result)

		case shuntingyard.IsBinary(c):
			if len(stack) < 2 {
				return nil, rexerr.NewAt(rexerr.ErrDanglingOperator, "binary operator with fewer than two preceding operands", c, i)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var result frag
			if c == shuntingyard.ConcatOperator {
				result = concat(nfa, a, b)
			} else {
				result = union(nfa, ids, a, b)
			}
			stack = append(stack, result)

		case c == '(' || c == ')':
			return nil, rexerr.NewAt(rexerr.ErrUnknownOperator, "stray parenthesis in postfix input", c, i)

		default:
			stack = append(stack, atomic(nfa, ids, c))
		}
	}

	if len(stack) != 1 {
		return nil, rexerr.New(rexerr.ErrStackInvariant, "build did not end with exactly one fragment on the stack")
	}

	result := stack[0]
	nfa.Start, nfa.End = result.start, result.end
	return nfa, nil
}

// frag is a fragment of the NFA under construction: the id of its start
// and end states, both already present in the shared nfa arena. It is
// the Thompson-construction analogue of the spec's "a two-terminal NFA"
// before it's been wired into a larger expression.
type frag struct {
	start, end int
}

func atomic(nfa *automaton.NFA, ids *automaton.IDGen, symbol rune) frag {
	s := nfa.AddState(ids)
	e := nfa.AddState(ids)
	e.IsFinal = true
	s.AddTransition(symbol, e.ID)
	return frag{start: s.ID, end: e.ID}
}

func concat(nfa *automaton.NFA, a, b frag) frag {
	nfa.State(a.end).AddTransition(automaton.Epsilon, b.start)
	nfa.State(a.end).IsFinal = false
	return frag{start: a.start, end: b.end}
}

func union(nfa *automaton.NFA, ids *automaton.IDGen, a, b frag) frag {
	s := nfa.AddState(ids)
	e := nfa.AddState(ids)
	e.IsFinal = true

	s.AddTransition(automaton.Epsilon, a.start)
	s.AddTransition(automaton.Epsilon, b.start)
	nfa.State(a.end).AddTransition(automaton.Epsilon, e.ID)
	nfa.State(b.end).AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).IsFinal = false
	nfa.State(b.end).IsFinal = false

	return frag{start: s.ID, end: e.ID}
}

func star(nfa *automaton.NFA, ids *automaton.IDGen, a frag) frag {
	s := nfa.AddState(ids)
	e := nfa.AddState(ids)
	e.IsFinal = true

	s.AddTransition(automaton.Epsilon, a.start)
	s.AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).AddTransition(automaton.Epsilon, a.start)
	nfa.State(a.end).AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).IsFinal = false

	return frag{start: s.ID, end: e.ID}
}

func plus(nfa *automaton.NFA, ids *automaton.IDGen, a frag) frag {
	s := nfa.AddState(ids)
	e := nfa.AddState(ids)
	e.IsFinal = true

	s.AddTransition(automaton.Epsilon, a.start)
	nfa.State(a.end).AddTransition(automaton.Epsilon, a.start)
	nfa.State(a.end).AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).IsFinal = false

	return frag{start: s.ID, end: e.ID}
}

func optional(nfa *automaton.NFA, ids *automaton.IDGen, a frag) frag {
	s := nfa.AddState(ids)
	e := nfa.AddState(ids)
	e.IsFinal = true

	s.AddTransition(automaton.Epsilon, a.start)
	s.AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).AddTransition(automaton.Epsilon, e.ID)
	nfa.State(a.end).IsFinal = false

	return frag{start: s.ID, end: e.ID}
}
