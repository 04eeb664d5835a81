package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/pgen"
)

// DefaultTokenizer scans Go-like input. Create one with GoTokenizer.
type DefaultTokenizer struct {
	sc           scanner.Scanner
	onError      func(error)
	unifyStrings bool              // deliver chars and raw strings as strings
	operators    map[rune][]string // multi-character operators by first character
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a tokenizer accepting tokens similar to the Go language.
// sourceID is used in error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{onError: logError}
	t.sc.Init(input)
	t.sc.Filename = sourceID
	t.sc.Error = func(s *scanner.Scanner, msg string) {
		t.onError(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler is part of the Tokenizer interface.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.onError = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() pgen.Token {
	typ := t.sc.Scan()
	from := t.sc.Position.Offset
	lexeme := t.sc.TokenText()
	switch typ {
	case scanner.EOF:
		tracer().Debugf("Go tokenizer reached end of input")
		from = t.sc.Pos().Offset
	case scanner.RawString, scanner.Char:
		if t.unifyStrings {
			typ = scanner.String
		}
	default:
		lexeme = t.operator(typ, lexeme)
	}
	return DefaultToken{
		kind:   pgen.TokType(typ),
		lexeme: lexeme,
		span:   pgen.Span{uint64(from), uint64(t.sc.Pos().Offset)},
	}
}

// operator extends a single character token to an announced two-character
// operator, if the second character follows immediately.
func (t *DefaultTokenizer) operator(first rune, lexeme string) string {
	for _, op := range t.operators[first] {
		if second := []rune(op)[1]; t.sc.Peek() == second {
			t.sc.Next()
			return op
		}
	}
	return lexeme
}

// --- Options for the Go tokenizer ------------------------------------------

// Option configures a Go tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments. Comments are skipped
// by default; with SkipComments(false) they are delivered as tokens of type Comment.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.sc.Mode |= scanner.ScanComments | scanner.SkipComments
		} else {
			t.sc.Mode = t.sc.Mode&^scanner.SkipComments | scanner.ScanComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Operators announces two-character operators like "<=" or "&&". Each one is
// delivered as a single token, with the type of its first character and the
// operator as lexeme, to be matched by a keyword label of the grammar. Other
// operator lengths are ignored.
func Operators(ops ...string) Option {
	return func(t *DefaultTokenizer) {
		if t.operators == nil {
			t.operators = make(map[rune][]string)
		}
		for _, op := range ops {
			r := []rune(op)
			if len(r) != 2 {
				tracer().Errorf("Go tokenizer: ignoring operator %q", op)
				continue
			}
			t.operators[r[0]] = append(t.operators[r[0]], op)
		}
	}
}
