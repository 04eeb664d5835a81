package scanner

import (
	"fmt"

	"github.com/npillmayer/pgen"
)

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the lexmachine scanner.
type DefaultToken struct {
	kind   pgen.TokType
	lexeme string
	span   pgen.Span
	Val    interface{}
}

var _ pgen.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ pgen.TokType, lexeme string, span pgen.Span) DefaultToken {
	return DefaultToken{kind: typ, lexeme: lexeme, span: span}
}

// TokType is part of the pgen.Token interface.
func (t DefaultToken) TokType() pgen.TokType { return t.kind }

// Lexeme is part of the pgen.Token interface. It is the input text of the token,
// exactly as matched by keyword labels.
func (t DefaultToken) Lexeme() string { return t.lexeme }

// Value is part of the pgen.Token interface.
func (t DefaultToken) Value() interface{} { return t.Val }

// Span is part of the pgen.Token interface.
func (t DefaultToken) Span() pgen.Span { return t.span }

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%s %q", TokenName(t.kind), t.lexeme)
}
