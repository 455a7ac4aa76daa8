/*
Package dfa implements deterministic finite automata over single-character
alphabets: an immutable automaton model, a builder with full consistency
validation, a loader for a line-oriented text format, and a simulation
engine classifying input strings.

Loading an Automaton

Automata are usually read from a definition file:

    a, err := dfa.LoadFile("even-ones.dfa")
    if err != nil {
        ...               // definition was inconsistent, no automaton exists
    }
    verdict := a.Classify("1101")   // fsa.Accepted, fsa.Rejected or fsa.InvalidSymbol

The definition format is line-oriented; blank lines and lines starting
with '#' are ignored everywhere:

    <start-state-name>
    <state-name> <state-name> ...
    <symbol> <symbol> ...
    <final-state-name> ...             (a whitespace-only line means: none)
    <from-state> <symbol> <to-state>
    ...                                (transitions run to end of file)

A symbol token contributes its first character only. The transition
function may be partial and states may be unreachable; both load fine.
Any inconsistency (unknown or duplicate names, redefined transitions,
missing sections) aborts the load with a descriptive error and no
partial automaton is handed out.

Building an Automaton

Clients may also assemble an automaton programmatically, using a builder
object:

    b := dfa.NewBuilder("even-ones")
    b.State("even").State("odd")
    b.Symbol('0').Symbol('1')
    b.Start("even")
    b.Final("even")
    b.Transition("even", '0', "even")
    b.Transition("even", '1', "odd")
    b.Transition("odd", '0', "odd")
    b.Transition("odd", '1', "even")
    a, err := b.Automaton()

Once constructed, an automaton is never mutated. Classify is a pure
function of the automaton and the input and is safe to call concurrently
from multiple goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.dfa")
}
