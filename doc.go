/*
Package fsa is a toolkit for loading and running finite-state automata.

FSA reads deterministic finite automata (DFAs) from a simple line-oriented
text format, validates them, and runs input strings against them.
Package structure is as follows:

■ dfa: Package dfa implements the automaton model, a builder with full
validation, a loader for the text format, and the simulation engine.

■ dfa/scan: Package scan provides the line source and word tokenizers
which feed the loader.

■ cmd/dfarun: A small CLI which loads an automaton and classifies a batch
of candidate strings.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsa
