package lexmach

import (
	"github.com/npillmayer/fsa/dfa/scan"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'fsa.scan'.
func tracer() tracing.Trace {
	return tracing.Select("fsa.scan")
}

const wordTokenID = 1

// LMAdapter is a lexmachine adapter to use lexmachine as a word scanner for
// definition lines. The default field scanner is perfectly adequate for the
// file format; this adapter exists for clients which already carry a
// lexmachine lexer around and want a single tokenizing path.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. The compiled lexer
// recognizes whitespace-delimited words, identical in behavior to
// scan.NewWordScanner.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`[^ \t\n\r]+`), makeWord)
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// WordScanner creates a word scanner for a single line. It implements the
// scan.WordScanner interface and may be handed to the loader as a
// scan.WordScannerFactory (errors during setup degrade to an empty scanner,
// which the loader reports as a format failure).
func (lm *LMAdapter) WordScanner(line string) scan.WordScanner {
	s, err := lm.Lexer.Scanner([]byte(line))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return &LMScanner{}
	}
	return &LMScanner{scanner: s}
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// scan.WordScanner interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
}

var _ scan.WordScanner = (*LMScanner)(nil)

// NextWord is part of the WordScanner interface.
func (lms *LMScanner) NextWord() (string, bool) {
	if lms.scanner == nil {
		return "", false
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		tracer().Errorf("scanner error: " + err.Error())
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return "", false
	}
	token := tok.(*lexmachine.Token)
	return string(token.Lexeme), true
}

// ---------------------------------------------------------------------------

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeWord wraps a scanned match into a word token.
func makeWord(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(wordTokenID, string(m.Bytes), m), nil
}
