package fsa

import "fmt"

// --- Identifiers -----------------------------------------------------------

// StateID is the canonical identifier of an automaton state. States are
// numbered in declaration order, starting at 0.
type StateID int

// SymbolID is the canonical identifier of an alphabet symbol. Symbols are
// numbered in declaration order, starting at 0.
type SymbolID int

// NoState is returned by lookups which fail to resolve a state.
const NoState StateID = -1

// NoSymbol is returned by lookups which fail to resolve a symbol.
const NoSymbol SymbolID = -1

// --- Verdicts --------------------------------------------------------------

// Verdict is the three-way outcome of running an input string through an
// automaton. It is a first-class result, not an error: a rejected string or
// a string containing a foreign symbol is ordinary control flow for clients.
type Verdict int8

// The possible outcomes of a classification run.
const (
	Accepted      Verdict = iota // input consumed, automaton halted in a final state
	Rejected                     // input consumed or transition missing, not in a final state
	InvalidSymbol                // input contains a character outside the alphabet
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case InvalidSymbol:
		return "InvalidSymbol"
	}
	return fmt.Sprintf("Verdict(%d)", int8(v))
}
