package dfa

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/dfa/sparse"
)

// noTransition is the null-value of the transition table: the (state, symbol)
// pair has no outgoing edge.
const noTransition int32 = -1

// Automaton is a validated deterministic finite automaton. It is constructed
// exactly once, by a Builder or by the loader, and never mutated afterwards.
// All methods are safe for concurrent use.
type Automaton struct {
	name     string                  // identifier for diagnostics, e.g. the file name
	states   *arraylist.List         // state names, in declaration order
	index    map[string]fsa.StateID  // state name -> canonical ID
	alphabet []rune                  // symbols, in declaration order
	symbols  map[rune]fsa.SymbolID   // symbol -> canonical ID
	start    fsa.StateID             // a valid index into states
	finals   *treeset.Set            // set of final state IDs (int)
	trans    *sparse.IntMatrix       // (state, symbol) -> state, partial
}

// Name returns the automaton's identifier (usually the definition file name).
func (a *Automaton) Name() string {
	return a.name
}

// StateCount returns the number of states.
func (a *Automaton) StateCount() int {
	return a.states.Size()
}

// SymbolCount returns the size of the alphabet.
func (a *Automaton) SymbolCount() int {
	return len(a.alphabet)
}

// StateName returns the declared name of a state, or "" for an invalid ID.
func (a *Automaton) StateName(id fsa.StateID) string {
	if v, ok := a.states.Get(int(id)); ok {
		return v.(string)
	}
	return ""
}

// State resolves a state name to its canonical ID.
func (a *Automaton) State(name string) (fsa.StateID, bool) {
	id, ok := a.index[name]
	if !ok {
		return fsa.NoState, false
	}
	return id, true
}

// Symbol resolves an alphabet symbol to its canonical ID.
func (a *Automaton) Symbol(r rune) (fsa.SymbolID, bool) {
	id, ok := a.symbols[r]
	if !ok {
		return fsa.NoSymbol, false
	}
	return id, true
}

// Start returns the ID of the start state.
func (a *Automaton) Start() fsa.StateID {
	return a.start
}

// IsFinal returns true iff a state is an accepting state.
func (a *Automaton) IsFinal(id fsa.StateID) bool {
	return a.finals.Contains(int(id))
}

// Next returns the successor of (state, symbol), if the transition function
// is defined for the pair. The automaton need not be total: ok = false is a
// normal condition, not a failure.
func (a *Automaton) Next(state fsa.StateID, symbol fsa.SymbolID) (fsa.StateID, bool) {
	to := a.trans.Value(int(state), int(symbol))
	if to == noTransition {
		return fsa.NoState, false
	}
	return fsa.StateID(to), true
}

// States returns the state names in declaration order.
func (a *Automaton) States() []string {
	names := make([]string, 0, a.states.Size())
	for _, v := range a.states.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Alphabet returns the alphabet symbols in declaration order.
func (a *Automaton) Alphabet() []rune {
	return append([]rune(nil), a.alphabet...)
}

// FinalStates returns the IDs of all final states, in ascending order.
func (a *Automaton) FinalStates() []fsa.StateID {
	ids := make([]fsa.StateID, 0, a.finals.Size())
	for _, v := range a.finals.Values() {
		ids = append(ids, fsa.StateID(v.(int)))
	}
	slices.Sort(ids)
	return ids
}

// newFinalsSet creates the set type used for final states. It sorts state
// IDs numerically.
func newFinalsSet() *treeset.Set {
	return treeset.NewWith(utils.IntComparator)
}
