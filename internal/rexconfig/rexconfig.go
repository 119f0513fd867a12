// Package rexconfig loads the size limits that bound an automaton build,
// in the TQW-manifest shape the teacher toolkit uses for its own
// TOML-based configuration: a small struct with toml tags, a sane
// zero-config default, and a loader that wraps decode errors with context.
package rexconfig

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/rexfa/internal/rexerr"
)

// defaultMaxNFAStates and defaultMaxDFAStates are generous enough for any
// pattern a human would type by hand, while still catching a runaway
// build (e.g. deeply nested star-of-star expressions) before it exhausts
// memory.
const (
	defaultMaxNFAStates = 1 << 16
	defaultMaxDFAStates = 1 << 16
)

// Limits bounds the number of states the pipeline will allocate while
// building an NFA or determinizing it into a DFA. Exceeding either is a
// fatal, reported error rather than an unbounded allocation loop.
type Limits struct {
	MaxNFAStates int `toml:"max_nfa_states"`
	MaxDFAStates int `toml:"max_dfa_states"`
}

// Default returns the zero-config Limits used when no configuration file
// is supplied.
func Default() Limits {
	return Limits{
		MaxNFAStates: defaultMaxNFAStates,
		MaxDFAStates: defaultMaxDFAStates,
	}
}

// Load reads a TOML file of the form:
//
//	max_nfa_states = 4096
//	max_dfa_states = 4096
//
// Any field left unset in the file keeps its Default() value.
func Load(path string) (Limits, error) {
	lim := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, rexerr.Wrap(rexerr.ErrInvalidConfig, "reading rexfa config "+path, err)
	}

	if err := toml.Unmarshal(data, &lim); err != nil {
		return Limits{}, rexerr.Wrap(rexerr.ErrInvalidConfig, "parsing rexfa config "+path, err)
	}

	return lim, nil
}
