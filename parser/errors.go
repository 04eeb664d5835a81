package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse errors.
type ErrorKind int8

// There are exactly two kinds of parse errors, both unrecoverable.
const (
	BadInput     ErrorKind = iota + 1 // no transition and not in an accepting position
	TooMuchInput                      // start symbol completed, but a token is pending
)

func (k ErrorKind) String() string {
	switch k {
	case BadInput:
		return "bad input"
	case TooMuchInput:
		return "too much input"
	}
	return "unknown parse error"
}

// ParseError signals that the parser is stuck. It carries the offending token.
type ParseError struct {
	Kind    ErrorKind
	TokType int         // token type of the offending token
	Token   interface{} // token payload, as handed to AddToken
	Label   int         // label id of the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: type=%d, token=%v", e.Kind, e.TokType, e.Token)
}

// IsBadInput is true if err is a parse error of kind BadInput.
func IsBadInput(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == BadInput
}

// IsTooMuchInput is true if err is a parse error of kind TooMuchInput.
func IsTooMuchInput(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == TooMuchInput
}

// ErrUsage is wrapped by errors resulting from calling parser methods out of order,
// e.g. AddToken before Setup or after an error.
var ErrUsage = errors.New("parser used out of order")

// ErrConversion is wrapped by errors returned from a conversion callback.
var ErrConversion = errors.New("conversion failed")
