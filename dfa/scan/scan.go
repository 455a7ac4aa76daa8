/*
Package scan provides the input plumbing for automaton definition files.

Definition files are line-oriented. A LineSource produces the semantically
meaningful lines of a text stream, silently dropping blank lines and comment
lines, wherever they appear. Individual lines are split into whitespace-
delimited words by a WordScanner.

Two WordScanner implementations are provided: (1) a thin wrapper over the Go
std lib 'strings.Fields', and (2) an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsa.scan'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.scan")
}

// CommentMarker starts a comment line. A line whose first character is the
// marker is skipped as a whole; there are no in-line comments.
const CommentMarker = '#'

// --- Line source ------------------------------------------------------------

// LineSource produces the meaningful lines of a text stream, one at a time.
// It is lazy, finite and non-restartable. Lines are handed out with their
// trailing line terminator stripped; a final line without terminator is
// returned like any other. Empty lines and comment lines never show up.
//
// Create one with NewLineSource.
type LineSource struct {
	scanner *bufio.Scanner
	lineno  int
}

// NewLineSource wraps a reader into a line source.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next meaningful line. The end of the stream is signalled
// with io.EOF; a read failure of the underlying stream is returned as a
// different, non-EOF error. After a non-nil error the source is exhausted.
func (ls *LineSource) Next() (string, error) {
	for ls.scanner.Scan() {
		ls.lineno++
		line := ls.scanner.Text()
		if line == "" || line[0] == CommentMarker {
			continue
		}
		tracer().Debugf("line %d: %q", ls.lineno, line)
		return line, nil
	}
	if err := ls.scanner.Err(); err != nil {
		tracer().Errorf("reading input failed: %v", err)
		return "", err
	}
	return "", io.EOF
}

// LineNo returns the physical line number of the most recently produced line,
// counting skipped lines as well. Intended for diagnostics.
func (ls *LineSource) LineNo() int {
	return ls.lineno
}

// --- Word scanners ----------------------------------------------------------

// WordScanner hands out the whitespace-delimited words of a single line,
// in left-to-right order.
type WordScanner interface {
	NextWord() (string, bool)
}

// WordScannerFactory creates a word scanner for a line. The loader is
// parameterized with one of these; NewWordScanner is the default.
type WordScannerFactory func(line string) WordScanner

// Words splits a line into its whitespace-delimited words. Consecutive
// whitespace is collapsed and never produces empty words; an all-whitespace
// line yields a nil slice.
func Words(line string) []string {
	return strings.Fields(line)
}

// fieldScanner is the default WordScanner, backed by strings.Fields.
type fieldScanner struct {
	words []string
	pos   int
}

// NewWordScanner creates the default word scanner for a line.
func NewWordScanner(line string) WordScanner {
	return &fieldScanner{words: Words(line)}
}

var _ WordScanner = (*fieldScanner)(nil)

// NextWord is part of the WordScanner interface.
func (fs *fieldScanner) NextWord() (string, bool) {
	if fs.pos >= len(fs.words) {
		return "", false
	}
	w := fs.words[fs.pos]
	fs.pos++
	return w, true
}
