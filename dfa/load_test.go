package dfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/fsa/dfa/scan/lexmach"
)

// A binary automaton accepting strings with an even count of 1s.
const evenOnes = `even
even odd
0 1
even
even 0 even
even 1 odd
odd 0 odd
odd 1 even
`

func TestLoadEvenOnes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	a, err := Load(strings.NewReader(evenOnes), "even-ones")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if a.StateCount() != 2 || a.SymbolCount() != 2 {
		t.Errorf("expected 2 states and 2 symbols, have %d and %d",
			a.StateCount(), a.SymbolCount())
	}
	if a.StateName(a.Start()) != "even" {
		t.Errorf("expected start state 'even', is %q", a.StateName(a.Start()))
	}
	if finals := a.FinalStates(); len(finals) != 1 || a.StateName(finals[0]) != "even" {
		t.Errorf("expected single final state 'even', have %v", finals)
	}
}

func TestLoadWithCommentsAndBlankLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	input := `# an automaton over {a}

s0

# states
s0 s1
a
# finals on the next line
s0
s0 a s1

# trailing comment
`
	a, err := Load(strings.NewReader(input), "commented")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if a.StateCount() != 2 {
		t.Errorf("expected 2 states, have %d", a.StateCount())
	}
}

func TestLoadNoFinalStates(t *testing.T) {
	input := "s0\ns0\na\n \ns0 a s0\n"
	a, err := Load(strings.NewReader(input), "no-finals")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(a.FinalStates()) != 0 {
		t.Errorf("expected no final states, have %v", a.FinalStates())
	}
}

var badInputs = []struct {
	name  string
	input string
	want  error
}{
	{"empty", "", ErrMissingSection},
	{"only start", "s0\n", ErrMissingSection},
	{"no alphabet", "s0\ns0 s1\n", ErrMissingSection},
	{"no finals line", "s0\ns0 s1\na\n", ErrMissingSection},
	{"unknown start", "s9\ns0 s1\na\ns0\n", ErrUnknownStartState},
	{"duplicate state", "s0\ns0 s1 s0\na\ns0\n", ErrDuplicateState},
	{"duplicate symbol", "s0\ns0 s1\na b a\ns0\n", ErrDuplicateSymbol},
	{"unknown final", "s0\ns0 s1\na\ns2\n", ErrUnknownFinalState},
	{"duplicate final", "s0\ns0 s1\na\ns0 s1 s0\n", ErrDuplicateFinalState},
	{"unknown from", "s0\ns0 s1\na\ns0\ns2 a s1\n", ErrInvalidTransition},
	{"unknown symbol", "s0\ns0 s1\na\ns0\ns0 b s1\n", ErrInvalidTransition},
	{"unknown to", "s0\ns0 s1\na\ns0\ns0 a s2\n", ErrInvalidTransition},
	{"short transition", "s0\ns0 s1\na\ns0\ns0 a\n", ErrInvalidTransition},
	{"long transition", "s0\ns0 s1\na\ns0\ns0 a s1 s1\n", ErrInvalidTransition},
	{"duplicate transition", "s0\ns0 s1\na\ns0\ns0 a s1\ns0 a s0\n", ErrDuplicateTransition},
}

func TestLoadFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	for _, tc := range badInputs {
		a, err := Load(strings.NewReader(tc.input), tc.name)
		if err == nil {
			t.Errorf("%s: expected load to fail, it did not", tc.name)
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected error %q, got %q", tc.name, tc.want, err)
		}
		if a != nil {
			t.Errorf("%s: failed load must not return an automaton", tc.name)
		}
	}
}

func TestLoadUnreachableStateIsFine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	input := `s0
s0 s1 s2
a
s0
s0 a s1
s1 a s1
`
	a, err := Load(strings.NewReader(input), "dead-end")
	if err != nil {
		t.Fatalf("unreachable states are permitted, load failed: %v", err)
	}
	if a.StateCount() != 3 {
		t.Errorf("expected 3 states, have %d", a.StateCount())
	}
}

func TestLoadPartialTransitionFunction(t *testing.T) {
	input := "s0\ns0 s1\na b\ns1\ns0 a s1\n"
	a, err := Load(strings.NewReader(input), "partial")
	if err != nil {
		t.Fatalf("partial transition functions are permitted, load failed: %v", err)
	}
	sym, _ := a.Symbol('b')
	if _, ok := a.Next(a.Start(), sym); ok {
		t.Errorf("expected no transition for (s0, b)")
	}
}

func TestLoadSymbolWordUsesFirstCharacter(t *testing.T) {
	// a symbol word's semantic value is its first character only
	input := "s0\ns0\nabc\ns0\ns0 a s0\n"
	a, err := Load(strings.NewReader(input), "first-char")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := a.Symbol('a'); !ok {
		t.Errorf("expected symbol 'a' in alphabet")
	}
	if _, ok := a.Symbol('b'); ok {
		t.Errorf("'b' must not be in the alphabet")
	}
}

func TestLoadWithLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	_, err := Load(strings.NewReader(evenOnes), "limited", WithLimits(1, 0))
	if !errors.Is(err, ErrTooManyStates) {
		t.Errorf("expected state limit to trip, got %v", err)
	}
	_, err = Load(strings.NewReader(evenOnes), "limited", WithLimits(0, 1))
	if !errors.Is(err, ErrTooManySymbols) {
		t.Errorf("expected symbol limit to trip, got %v", err)
	}
	if _, err = Load(strings.NewReader(evenOnes), "limited", WithLimits(2, 2)); err != nil {
		t.Errorf("limits equal to actual size must pass, got %v", err)
	}
}

func TestLoadWithLexmachineScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	lm, err := lexmach.NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	a, err := Load(strings.NewReader(evenOnes), "even-ones", WithWordScanner(lm.WordScanner))
	if err != nil {
		t.Fatalf("load with lexmachine scanner failed: %v", err)
	}
	b, err := Load(strings.NewReader(evenOnes), "even-ones")
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("word scanners disagree: %s vs %s", a.Fingerprint(), b.Fingerprint())
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	a, err := LoadFile("testdata/even-ones.dfa")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if a.Name() != "even-ones.dfa" {
		t.Errorf("expected automaton name from file name, is %q", a.Name())
	}
	b, err := Load(strings.NewReader(evenOnes), "even-ones")
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("file and in-memory definition differ")
	}
}

func TestLoadFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfa")
	defer teardown()
	//
	if _, err := LoadFile("testdata/no-such-file.dfa"); err == nil {
		t.Error("expected open failure for missing file")
	}
}
