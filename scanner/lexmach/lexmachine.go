package lexmach

import (
	"errors"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'pgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their token types.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, Error: logError, size: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	size    uint64 // length of input, position of EOF
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumable input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() pgen.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			lms.scanner.TC = ui.FailTC
		} else {
			eof = true // unknown error, we cannot go on
			break
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", pgen.Span{lms.size, lms.size})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("lexmachine token %d | %q", token.Type, token.Lexeme)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		pgen.TokType(token.Type),
		string(token.Lexeme),
		pgen.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
