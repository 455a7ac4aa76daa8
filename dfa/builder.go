package dfa

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/dfa/sparse"
)

// Limits bounds the size of an automaton under construction. A zero value
// means: unbounded. Limits replace silent fixed-capacity tables; hitting a
// limit is an explicit, checked build failure.
type Limits struct {
	MaxStates  int
	MaxSymbols int
}

// Builder assembles and validates an automaton step by step. Create one with
// NewBuilder, declare states and symbols, then the start state, final states
// and transitions, and finally call Automaton().
//
// The builder fails fast: the first validation error sticks, all subsequent
// calls become no-ops, and Automaton() reports the error. No partially built
// automaton ever escapes.
type Builder struct {
	name      string
	states    *arraylist.List
	index     map[string]fsa.StateID
	alphabet  []rune
	symbols   map[rune]fsa.SymbolID
	startName string
	hasStart  bool
	finals    map[fsa.StateID]bool
	edges     []edge
	defined   map[edgeKey]bool
	limits    Limits
	err       error
}

type edge struct {
	from fsa.StateID
	sym  fsa.SymbolID
	to   fsa.StateID
}

type edgeKey struct {
	from fsa.StateID
	sym  fsa.SymbolID
}

// NewBuilder creates an empty builder for an automaton with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:    name,
		states:  arraylist.New(),
		index:   make(map[string]fsa.StateID),
		symbols: make(map[rune]fsa.SymbolID),
		finals:  make(map[fsa.StateID]bool),
		defined: make(map[edgeKey]bool),
	}
}

// SetLimits bounds the automaton under construction (see Limits).
func (b *Builder) SetLimits(l Limits) *Builder {
	b.limits = l
	return b
}

// fail records the first error; later errors are dropped.
func (b *Builder) fail(err error) {
	if b.err == nil {
		tracer().Errorf("automaton %q: %v", b.name, err)
		b.err = err
	}
}

// Err returns the first validation error encountered so far, if any.
func (b *Builder) Err() error {
	return b.err
}

// State declares a state. Declaration order determines the canonical state
// IDs. A repeated name is a validation failure.
func (b *Builder) State(name string) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.index[name]; ok {
		b.fail(fmt.Errorf("%w: %q", ErrDuplicateState, name))
		return b
	}
	if b.limits.MaxStates > 0 && b.states.Size() >= b.limits.MaxStates {
		b.fail(fmt.Errorf("%w (%d)", ErrTooManyStates, b.limits.MaxStates))
		return b
	}
	b.index[name] = fsa.StateID(b.states.Size())
	b.states.Add(name)
	return b
}

// Symbol declares an alphabet symbol. Declaration order determines the
// canonical symbol IDs. A repeated symbol is a validation failure.
func (b *Builder) Symbol(r rune) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.symbols[r]; ok {
		b.fail(fmt.Errorf("%w: %q", ErrDuplicateSymbol, r))
		return b
	}
	if b.limits.MaxSymbols > 0 && len(b.alphabet) >= b.limits.MaxSymbols {
		b.fail(fmt.Errorf("%w (%d)", ErrTooManySymbols, b.limits.MaxSymbols))
		return b
	}
	b.symbols[r] = fsa.SymbolID(len(b.alphabet))
	b.alphabet = append(b.alphabet, r)
	return b
}

// Start names the start state. Resolution against the state set is deferred
// until Automaton() is called, so Start may be called before any State.
func (b *Builder) Start(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.startName = name
	b.hasStart = true
	return b
}

// HasState tells whether a state name has been declared.
func (b *Builder) HasState(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Final marks a declared state as accepting. An unknown name or a repeated
// mark is a validation failure.
func (b *Builder) Final(name string) *Builder {
	if b.err != nil {
		return b
	}
	id, ok := b.index[name]
	if !ok {
		b.fail(fmt.Errorf("%w: %q", ErrUnknownFinalState, name))
		return b
	}
	if b.finals[id] {
		b.fail(fmt.Errorf("%w: %q", ErrDuplicateFinalState, name))
		return b
	}
	b.finals[id] = true
	return b
}

// Transition adds an edge from --sym--> to. All three parts must have been
// declared; a second edge for the same (from, sym) pair is a validation
// failure, not an overwrite.
func (b *Builder) Transition(from string, sym rune, to string) *Builder {
	if b.err != nil {
		return b
	}
	fromID, ok1 := b.index[from]
	symID, ok2 := b.symbols[sym]
	toID, ok3 := b.index[to]
	if !ok1 || !ok2 || !ok3 {
		b.fail(fmt.Errorf("%w: %s %c %s", ErrInvalidTransition, from, sym, to))
		return b
	}
	key := edgeKey{from: fromID, sym: symID}
	if b.defined[key] {
		b.fail(fmt.Errorf("%w: %s %c %s", ErrDuplicateTransition, from, sym, to))
		return b
	}
	b.defined[key] = true
	b.edges = append(b.edges, edge{from: fromID, sym: symID, to: toID})
	return b
}

// Automaton validates the remaining deferred properties and returns the
// finished, immutable automaton. After a failure no automaton is returned.
func (b *Builder) Automaton() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.hasStart {
		b.fail(fmt.Errorf("%w: no start state", ErrMissingSection))
		return nil, b.err
	}
	startID, ok := b.index[b.startName]
	if !ok {
		b.fail(fmt.Errorf("%w: %q", ErrUnknownStartState, b.startName))
		return nil, b.err
	}
	trans := sparse.NewIntMatrix(b.states.Size(), len(b.alphabet), noTransition)
	for _, e := range b.edges {
		trans.Set(int(e.from), int(e.sym), int32(e.to))
	}
	finals := newFinalsSet()
	for id := range b.finals {
		finals.Add(int(id))
	}
	a := &Automaton{
		name:     b.name,
		states:   b.states,
		index:    b.index,
		alphabet: b.alphabet,
		symbols:  b.symbols,
		start:    startID,
		finals:   finals,
		trans:    trans,
	}
	tracer().Infof("automaton %q: %d states, %d symbols, %d transitions",
		a.name, a.StateCount(), a.SymbolCount(), trans.ValueCount())
	return a, nil
}
