package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/fsa/dfa"
)

const evenOnes = `even
even odd
0 1
even
even 0 even
even 1 odd
odd 0 odd
odd 1 even
`

func TestClassifyBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsa.dfarun")
	defer teardown()
	//
	a, err := dfa.Load(strings.NewReader(evenOnes), "even-ones")
	if err != nil {
		t.Fatal(err)
	}
	candidates := "11\n1\n# skipped\n\n102\n"
	var out bytes.Buffer
	if err := classifyBatch(a, strings.NewReader(candidates), &out); err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	want := "ACCEPTED LINE 11\nREJECTED LINE 1\nWRONG SYMBOL: 102\n"
	if out.String() != want {
		t.Errorf("expected output\n%q\ngot\n%q", want, out.String())
	}
}
