/*
Package parser implements the pushdown engine for grammar tables of package grammar.

The parser is non-recursive: it keeps an explicit stack of frames, one per
non-terminal currently being derived. It is fed classified tokens one at a time,
and builds a concrete syntax tree from the bottom up. A conversion callback is
invoked for every completed node and may replace or discard it, thus producing
an abstract syntax tree.

Usage

The proper usage sequence is:

	p := parser.NewParser(g, convert)     // create instance; convert may be nil
	err := p.Setup()                      // prepare for parsing
	for … {                               // for each input token
		done, err := p.AddToken(typ, token, label)
		if err != nil { … }               // syntax error, no recovery
		if done { break }
	}
	root, err := p.Root()                 // root of abstract syntax tree

Labels must be computed by the caller, usually with grammar.Classify. Package
driver wraps this loop around a scanner.

A parser instance may be re-used by calling Setup repeatedly. It holds state
pertaining to the current token sequence and must not be used concurrently for
different token sequences. Grammars, on the other hand, may be shared between
parsers freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.parser")
}
