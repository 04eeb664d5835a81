/*
Package scanner defines an interface for scanners to be used with the parser driver.

Two default scanner implementations are provided: (1) a tokenizer for Go-like
input on top of the std lib 'text/scanner', and (2) an adapter for lexmachine,
living in sub-package `lexmach`.

Scanners produce pgen.Tokens. Token types must be agreed upon with the grammar
tables: the driver classifies every token with grammar.Classify, using its type
and lexeme. The lexeme therefore is part of a token's contract: a keyword label
(type, literal) matches a token only if the lexeme equals the literal
byte for byte. Operators consisting of more than one character (e.g. "<=") are
delivered by the Go tokenizer as a single token, typed by their first character,
if they have been announced with option Operators.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"text/scanner"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.scanner")
}

// Token types of the Go tokenizer. They are identical to the ones of
// text/scanner; single characters are typed by their rune value.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface. After the end of input, NextToken returns
// tokens of type EOF. Scanners report errors to the error handler and go on
// scanning; a nil handler selects the default handler, which traces errors.
type Tokenizer interface {
	NextToken() pgen.Token
	SetErrorHandler(func(error))
}

// TokenName returns a printable name for a token type, for diagnostics.
func TokenName(typ pgen.TokType) string {
	return scanner.TokenString(rune(typ))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}
