package pgen

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Token types below 256 are terminal
// symbols of a grammar; we do not define any constants here, as it is up to
// scanners and grammars to agree on them.
type TokType int

// Token represents an input token. Tokens are produced by a scanner and
// travel through the parser as the opaque payload of leaf nodes.
//
// An example would be a token for an integer number:
//
//    TokType = scanner.Int  // identifier for this kind of tokens
//    Lexeme  = "42"         // lexeme as it appeared in the input stream
//    Span    = 67…69        // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
