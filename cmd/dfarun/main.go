package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/dfa"
	"github.com/npillmayer/fsa/dfa/scan"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'fsa.dfarun'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.dfarun")
}

// config carries environment-backed defaults. The size limits bound
// definitions read from untrusted files; 0 means unbounded.
type config struct {
	Trace      string `env:"DFARUN_TRACE" envDefault:"Info"`
	MaxStates  int    `env:"DFARUN_MAX_STATES" envDefault:"0"`
	MaxSymbols int    `env:"DFARUN_MAX_SYMBOLS" envDefault:"0"`
}

// main() loads a DFA from a definition file and classifies a batch of
// candidate strings, one per line, printing one verdict line each. File
// paths are taken from flags or, in the original interactive fashion,
// prompted for. With no strings file, dfarun classifies lines typed at an
// interactive prompt.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	automatonPath := flag.String("automaton", "", "Automaton definition file")
	stringsPath := flag.String("strings", "", "Candidate strings file (empty: interactive)")
	tlevel := flag.String("trace", cfg.Trace, "Trace level [Debug|Info|Error]")
	dump := flag.Bool("dump", false, "Dump the automaton's tables after loading")
	dotfile := flag.String("dot", "", "Export the automaton to a Graphviz Dot file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	if *automatonPath == "" {
		*automatonPath = prompt("Enter automaton file path: ")
	}
	a, err := dfa.LoadFile(*automatonPath, dfa.WithLimits(cfg.MaxStates, cfg.MaxSymbols))
	if err != nil {
		pterm.Error.Println("Could not load automaton: " + err.Error())
		os.Exit(1)
	}
	tracer().Infof("Loaded automaton %q (fingerprint %s)", a.Name(), a.Fingerprint())
	if *dump {
		a.Dump() // tables, only visible in debug mode
		displayAutomaton(a)
	}
	if *dotfile != "" {
		if err := exportDot(a, *dotfile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}
	//
	if *stringsPath == "" {
		*stringsPath = prompt("Enter strings file path (empty: interactive): ")
	}
	if *stringsPath == "" {
		classifyInteractively(a)
		return
	}
	f, err := os.Open(*stringsPath)
	if err != nil {
		pterm.Error.Println("Cannot open strings file: " + err.Error())
		os.Exit(1)
	}
	defer f.Close()
	if err := classifyBatch(a, f, os.Stdout); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// prompt asks the user for a single line of input.
func prompt(msg string) string {
	rl, err := readline.New(msg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()
	line, err := rl.Readline()
	if err != nil { // io.EOF or interrupt
		os.Exit(1)
	}
	return strings.TrimSpace(line)
}

// classifyBatch reads candidate strings, one per meaningful line, and writes
// one verdict line for each. A rejected or wrong-symbol line never aborts the
// batch; every line is classified independently.
func classifyBatch(a *dfa.Automaton, r io.Reader, w io.Writer) error {
	lines := scan.NewLineSource(r)
	for {
		line, err := lines.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, renderVerdict(a.Classify(line), line))
	}
}

// classifyInteractively classifies lines typed at a prompt, until EOF.
func classifyInteractively(a *dfa.Automaton) {
	rl, err := readline.New("dfarun> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line == "" || line[0] == scan.CommentMarker {
			continue
		}
		pterm.Info.Println(renderVerdict(a.Classify(line), line))
	}
	println("Good bye!")
}

// renderVerdict formats one verdict line, preserving the classic labels.
func renderVerdict(v fsa.Verdict, line string) string {
	switch v {
	case fsa.Accepted:
		return "ACCEPTED LINE " + line
	case fsa.Rejected:
		return "REJECTED LINE " + line
	case fsa.InvalidSymbol:
		return "WRONG SYMBOL: " + line
	}
	return "UNKNOWN ERROR " + line
}

// displayAutomaton renders the automaton's structure as a tree on the
// terminal: one node per state, one child per outgoing edge.
func displayAutomaton(a *dfa.Automaton) {
	ll := pterm.LeveledList{}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: a.Name()})
	for _, name := range a.States() {
		id, _ := a.State(name)
		label := name
		if id == a.Start() {
			label += " (start)"
		}
		if a.IsFinal(id) {
			label += " (final)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: label})
		for j, sym := range a.Alphabet() {
			if to, ok := a.Next(id, fsa.SymbolID(j)); ok {
				ll = append(ll, pterm.LeveledListItem{
					Level: 2,
					Text:  fmt.Sprintf("--%c--> %s", sym, a.StateName(to)),
				})
			}
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// exportDot writes the automaton in Graphviz Dot format.
func exportDot(a *dfa.Automaton, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return a.GraphViz(f)
}
