package dfa

import "errors"

// Validation failures during construction of an automaton. The builder and
// the loader wrap these with the offending token or line, so clients should
// test with errors.Is.
//
// Classification outcomes (rejected input, foreign symbol) are not errors;
// they are ordinary fsa.Verdict values.
var (
	// ErrMissingSection: the definition ended before all mandatory sections
	// were present.
	ErrMissingSection = errors.New("definition ends prematurely")

	// ErrDuplicateState: a state name was declared twice.
	ErrDuplicateState = errors.New("duplicate state name")

	// ErrUnknownStartState: the start-state name does not appear in the
	// declared state set.
	ErrUnknownStartState = errors.New("start state is not listed in state set")

	// ErrDuplicateSymbol: an alphabet symbol was declared twice.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")

	// ErrUnknownFinalState: a final-state name does not appear in the
	// declared state set.
	ErrUnknownFinalState = errors.New("final state is not listed in state set")

	// ErrDuplicateFinalState: a state was marked final twice.
	ErrDuplicateFinalState = errors.New("duplicate final state")

	// ErrInvalidTransition: a transition names an unknown state or symbol,
	// or a transition line is malformed.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrDuplicateTransition: a (state, symbol) pair was given a successor
	// twice. Redefinition is a failure, not an overwrite.
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrTooManyStates, ErrTooManySymbols: a configured size limit was hit.
	ErrTooManyStates  = errors.New("state limit exceeded")
	ErrTooManySymbols = errors.New("symbol limit exceeded")
)
