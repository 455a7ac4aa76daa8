package dfa

import (
	"fmt"
	"io"

	"github.com/cnf/structhash"

	"github.com/npillmayer/fsa"
)

// Dump is a debugging helper. It traces the automaton's tables at debug
// level: start state, final states, state list, alphabet, and the complete
// transition table, undefined pairs included.
func (a *Automaton) Dump() {
	tracer().Debugf("--- automaton %q -----------", a.name)
	tracer().Debugf("start state: %s", a.StateName(a.start))
	finals := ""
	for _, id := range a.FinalStates() {
		finals += a.StateName(id) + " "
	}
	tracer().Debugf("end states:  %s", finals)
	tracer().Debugf("all states:  %v", a.States())
	tracer().Debugf("symbols:     %q", string(a.alphabet))
	for i := 0; i < a.StateCount(); i++ {
		for j, sym := range a.alphabet {
			to, ok := a.Next(fsa.StateID(i), fsa.SymbolID(j))
			if ok {
				tracer().Debugf("%6s %c %-6s", a.StateName(fsa.StateID(i)), sym, a.StateName(to))
			} else {
				tracer().Debugf("%6s %c ??????", a.StateName(fsa.StateID(i)), sym)
			}
		}
	}
	tracer().Debugf("-------------------------")
}

// GraphViz exports the automaton to the Graphviz Dot format. Final states
// are filled gray, the start state is marked with an incoming arrow.
func (a *Automaton) GraphViz(w io.Writer) error {
	_, err := io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

start [shape=point];
`)
	if err != nil {
		return err
	}
	for i, name := range a.States() {
		if _, err = fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"%s\"]\n",
			i, nodecolor(a.IsFinal(fsa.StateID(i))), name); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintf(w, "start -> s%03d\n", int(a.start)); err != nil {
		return err
	}
	var werr error
	a.trans.Each(func(i, j int, to int32) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, "s%03d -> s%03d [label=\"%c\"]\n", i, to, a.alphabet[j])
	})
	if werr != nil {
		return werr
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodecolor(final bool) string {
	if final {
		return "lightgray"
	}
	return "white"
}

// definition is a hashable snapshot of everything that makes up an
// automaton. Two automata with equal definitions behave identically.
type definition struct {
	States   []string
	Alphabet string
	Start    int
	Finals   []int
	Edges    [][3]int
}

// Fingerprint returns a stable hash over the automaton's definition,
// independent of the name it was loaded under. Loading the same definition
// twice yields the same fingerprint.
func (a *Automaton) Fingerprint() string {
	d := definition{
		States:   a.States(),
		Alphabet: string(a.alphabet),
		Start:    int(a.start),
	}
	for _, id := range a.FinalStates() {
		d.Finals = append(d.Finals, int(id))
	}
	a.trans.Each(func(i, j int, to int32) {
		d.Edges = append(d.Edges, [3]int{i, j, int(to)})
	})
	hash, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash automaton definition: %v", err)
		return ""
	}
	return hash
}
