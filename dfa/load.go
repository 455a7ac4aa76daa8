package dfa

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fsa/dfa/scan"
)

// The loader turns a definition stream into an automaton, using a Builder
// for all consistency checks. It walks through five sections in fixed order:
//
//   1. start state      one line, taken whole (trimmed)
//   2. state set        one line of words
//   3. alphabet         one line of words; first character of each word
//   4. final states     one line of words, possibly none
//   5. transitions      all remaining lines, "from symbol to" each
//
// Blank and comment lines never reach the loader; the line source filters
// them, wherever they occur.

// Option configures a load run.
type Option func(*loaderOptions)

type loaderOptions struct {
	limits Limits
	words  scan.WordScannerFactory
}

// WithLimits bounds the number of states and symbols a definition may
// declare. Zero means unbounded.
func WithLimits(maxStates, maxSymbols int) Option {
	return func(o *loaderOptions) {
		o.limits = Limits{MaxStates: maxStates, MaxSymbols: maxSymbols}
	}
}

// WithWordScanner replaces the default word scanner, e.g. with the
// lexmachine-backed one from package scan/lexmach.
func WithWordScanner(f scan.WordScannerFactory) Option {
	return func(o *loaderOptions) {
		if f != nil {
			o.words = f
		}
	}
}

// LoadFile loads an automaton definition from a file. A file which cannot be
// opened is reported as-is, before any parsing starts.
func LoadFile(path string, opts ...Option) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		tracer().Errorf("cannot open automaton definition: %v", err)
		return nil, err
	}
	defer f.Close()
	return Load(f, filepath.Base(path), opts...)
}

// Load loads an automaton definition from a reader. name is used for
// diagnostics only. The load fails fast: the first inconsistency aborts it
// and no partial automaton is returned.
func Load(r io.Reader, name string, opts ...Option) (*Automaton, error) {
	o := loaderOptions{words: scan.NewWordScanner}
	for _, opt := range opts {
		opt(&o)
	}
	lines := scan.NewLineSource(r)
	b := NewBuilder(name).SetLimits(o.limits)
	//
	// Section 1: the start-state name, deferred until the state set is known
	startLine, err := nextSection(lines, "start state")
	if err != nil {
		return nil, err
	}
	start := strings.TrimSpace(startLine)
	b.Start(start)
	//
	// Section 2: the state set
	stateLine, err := nextSection(lines, "state set")
	if err != nil {
		return nil, err
	}
	for ws := o.words(stateLine); ; {
		w, ok := ws.NextWord()
		if !ok {
			break
		}
		b.State(w)
	}
	if b.Err() != nil {
		return nil, b.Err()
	}
	if !b.HasState(start) {
		tracer().Errorf("start state %q is not listed in state set", start)
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartState, start)
	}
	//
	// Section 3: the alphabet; a symbol is the first character of its word
	symbolLine, err := nextSection(lines, "alphabet")
	if err != nil {
		return nil, err
	}
	for ws := o.words(symbolLine); ; {
		w, ok := ws.NextWord()
		if !ok {
			break
		}
		b.Symbol(firstRune(w))
	}
	if b.Err() != nil {
		return nil, b.Err()
	}
	//
	// Section 4: final states; a whitespace-only line declares none
	finalLine, err := nextSection(lines, "final states")
	if err != nil {
		return nil, err
	}
	for ws := o.words(finalLine); ; {
		w, ok := ws.NextWord()
		if !ok {
			break
		}
		b.Final(w)
	}
	if b.Err() != nil {
		return nil, b.Err()
	}
	//
	// Section 5: transitions, until end of stream
	for {
		line, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var triple [3]string
		cnt := 0
		for ws := o.words(line); ; {
			w, ok := ws.NextWord()
			if !ok {
				break
			}
			if cnt < 3 {
				triple[cnt] = w
			}
			cnt++
		}
		if cnt != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTransition, line)
		}
		b.Transition(triple[0], firstRune(triple[1]), triple[2])
		if b.Err() != nil {
			return nil, b.Err()
		}
	}
	return b.Automaton()
}

// nextSection reads one mandatory line; running out of input here means the
// definition is structurally incomplete.
func nextSection(lines *scan.LineSource, section string) (string, error) {
	line, err := lines.Next()
	if err == io.EOF {
		tracer().Errorf("cannot read %s (line %d)", section, lines.LineNo())
		return "", fmt.Errorf("%w: cannot read %s", ErrMissingSection, section)
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func firstRune(word string) rune {
	for _, r := range word {
		return r
	}
	return 0 // unreachable: word scanners never produce empty words
}
