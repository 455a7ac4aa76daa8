package dfa

import (
	"github.com/npillmayer/fsa"
)

// Classify runs an input string through the automaton and reports one of the
// three verdicts:
//
//   fsa.InvalidSymbol   input contains a character outside the alphabet
//   fsa.Accepted        input consumed, run halted in a final state
//   fsa.Rejected        run halted in a non-final state, or ran off the
//                       transition graph (a missing transition is a normal
//                       classification outcome, not an error)
//
// The empty string is a valid input: it is accepted iff the start state is
// final; no transition is consulted.
//
// Classify is a pure function of its inputs, runs in time linear in the
// length of the input, and is safe for concurrent use.
func (a *Automaton) Classify(input string) fsa.Verdict {
	// Check if every character belongs to the automaton's alphabet
	symbols := make([]fsa.SymbolID, 0, len(input))
	for _, r := range input {
		sym, ok := a.symbols[r]
		if !ok {
			tracer().Debugf("%q: symbol %q not in alphabet", input, r)
			return fsa.InvalidSymbol
		}
		symbols = append(symbols, sym)
	}
	current := a.start
	for _, sym := range symbols {
		next, ok := a.Next(current, sym)
		if !ok {
			// no edge for this symbol from this state: the input simply
			// is not part of the accepted language
			tracer().Debugf("%q: stuck in state %q", input, a.StateName(current))
			return fsa.Rejected
		}
		current = next
	}
	if a.IsFinal(current) {
		return fsa.Accepted
	}
	return fsa.Rejected
}
