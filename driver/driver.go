/*
Package driver connects a scanner to a parser.

A Driver reads tokens from a scanner.Tokenizer, classifies each one with the
grammar's label table and feeds it into a parser.Parser, until the parse is
complete.

	d := driver.New(g, convert.Collapse, driver.MaxTokens(10000))
	tree, err := d.ParseString("1 + 2 * 3")

The end of input is signalled by a token of type scanner.EOF. Grammars may
include EOF as a terminal of their start symbol; if they do not, the EOF token is
not fed to the parser. A Driver reports input ending before the parse is
complete as ErrIncompleteInput. A token following a complete parse is handed to
the parser, which rejects it as too much input; the driver wraps that
*parser.ParseError into ErrTrailingInput.

A Driver carries a parser and therefore must not be used by more than one
goroutine at a time. Grammars may be shared between drivers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.driver'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.driver")
}

// Errors reported by the driver, in addition to errors of the parser.
var (
	ErrIncompleteInput = errors.New("incomplete input")
	ErrTrailingInput   = errors.New("trailing input after complete parse")
	ErrTooManyTokens   = errors.New("too many tokens")
	ErrScanner         = errors.New("scanner error")
)

// Driver reads tokens from a scanner and feeds them into a parser.
type Driver struct {
	G         *grammar.Grammar
	parser    *parser.Parser
	start     int
	maxTokens int
	skip      map[int]bool
	scan      func(input string) (scanner.Tokenizer, error)
}

// Option configures a driver.
type Option func(*Driver)

// Start sets an alternative start symbol.
func Start(sym int) Option {
	return func(d *Driver) {
		d.start = sym
	}
}

// MaxTokens limits the number of tokens fed into the parser for a single parse.
// 0 means no limit.
func MaxTokens(n int) Option {
	return func(d *Driver) {
		d.maxTokens = n
	}
}

// SkipTokens sets token types which are ignored, e.g. comments.
func SkipTokens(types ...int) Option {
	return func(d *Driver) {
		for _, t := range types {
			d.skip[t] = true
		}
	}
}

// ScanWith sets the scanner factory used by ParseString. The default is
// scanner.GoTokenizer.
func ScanWith(scan func(input string) (scanner.Tokenizer, error)) Option {
	return func(d *Driver) {
		d.scan = scan
	}
}

func goTokenizer(input string) (scanner.Tokenizer, error) {
	return scanner.GoTokenizer("input", strings.NewReader(input)), nil
}

// New creates a driver for a grammar. convert is handed to the parser; nil
// selects the identity conversion.
func New(g *grammar.Grammar, convert parser.Converter, opts ...Option) *Driver {
	d := &Driver{
		G:      g,
		parser: parser.NewParser(g, convert),
		start:  g.Start,
		skip:   make(map[int]bool),
		scan:   goTokenizer,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParseString parses an input string, using the driver's scanner factory.
func (d *Driver) ParseString(input string) (*parser.Node, error) {
	tok, err := d.scan(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanner, err)
	}
	return d.Parse(tok)
}

// Parse reads tokens from tok until the parse is complete, and returns the
// root of the (converted) syntax tree. The root may be nil if the converter
// discarded it.
//
// If the grammar consumes an EOF token, Parse returns as soon as the parse is
// complete. Otherwise, after completion it reads one more token, which has to
// be EOF.
func (d *Driver) Parse(tok scanner.Tokenizer) (*parser.Node, error) {
	if err := d.parser.SetupStart(d.start); err != nil {
		return nil, err
	}
	var scanErr error
	tok.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner: %v", e)
		if scanErr == nil {
			scanErr = e
		}
	})
	complete := false
	count := 0
	for {
		t := tok.NextToken()
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanner, scanErr)
		}
		typ := int(t.TokType())
		if d.skip[typ] {
			continue
		}
		if complete {
			if typ == scanner.EOF {
				return d.parser.Root()
			}
			// the parser reports any token after completion as too much input
			tracer().Errorf("trailing token %v", t)
			label, _ := d.G.Classify(typ, t.Lexeme()) // -1 for tokens without a label
			_, err := d.parser.AddToken(typ, t, label)
			return nil, fmt.Errorf("%w: %w", ErrTrailingInput, err)
		}
		count++
		if d.maxTokens > 0 && count > d.maxTokens {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyTokens, d.maxTokens)
		}
		done, err := d.feed(typ, t)
		if err != nil {
			return nil, err
		}
		if done {
			tracer().Infof("parse complete after %d tokens", count)
			if typ == scanner.EOF {
				return d.parser.Root()
			}
			complete = true
		} else if typ == scanner.EOF {
			// EOF has been consumed, but the start symbol is not complete
			return nil, fmt.Errorf("%w: at %s", ErrIncompleteInput, t.Span())
		}
	}
}

// feed classifies a token and adds it to the parser.
func (d *Driver) feed(typ int, t pgen.Token) (bool, error) {
	label, err := d.G.Classify(typ, t.Lexeme())
	if err != nil {
		if typ == scanner.EOF {
			return false, fmt.Errorf("%w: unexpected end of input", ErrIncompleteInput)
		}
		return false, err
	}
	tracer().Debugf("token %v at %s: label %d", t, t.Span(), label)
	done, err := d.parser.AddToken(typ, t, label)
	if err != nil && typ == scanner.EOF && parser.IsBadInput(err) {
		return false, fmt.Errorf("%w: %w", ErrIncompleteInput, err)
	}
	return done, err
}
