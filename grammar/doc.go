/*
Package grammar holds pre-built grammar tables for the pushdown parser of package
parser.

A grammar is a set of deterministic finite automata, one per non-terminal symbol,
together with a label table. Arcs of the automata are keyed by label ids.
A label either stands for a token type (symbol values below NTOffset) or for a
non-terminal (symbol values of NTOffset and above). Each DFA carries the set of
label ids which may start a derivation of its non-terminal, its first set.

This package does not derive DFAs or first sets from a textual grammar. Tables
are supplied by a grammar compiler, assembled with a Builder, or read from a
JSON table file (see Load):

    b := grammar.NewBuilder("a^n c b^n")
    a := b.TokenLabel("a", 1)
    bb := b.TokenLabel("b", 2)
    c := b.TokenLabel("c", 3)
    S, s := b.NonTerminal("S")                  // symbol 256, label s
    b.State(S, false, grammar.Arc{a, 1}, grammar.Arc{c, 3})
    b.State(S, false, grammar.Arc{s, 2})
    b.State(S, false, grammar.Arc{bb, 3})
    b.State(S, true)                             // purely accepting
    b.First(S, a, c)
    g, err := b.Grammar()

Once created by New (which Builder and Load call), a Grammar is immutable and may be
shared between any number of parsers, concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.grammar")
}
