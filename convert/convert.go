/*
Package convert provides conversion callbacks for package parser.

A parser calls its converter for every node of the concrete syntax tree, as soon
as the node is complete. Converters in this package may be combined with Chain:

    conv := convert.Chain(
        convert.Discard(scanner.Comment), // drop comment tokens
        convert.Collapse,                 // remove pass-through non-terminals
    )
    p := parser.NewParser(g, conv)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/parser"
)

// Identity keeps every node. It is the converter parsers use by default.
var Identity parser.Converter = parser.Identity

// Collapse replaces a non-terminal node with exactly one child by that child.
// Chains of non-terminals which merely pass a single derivation through
// thereby vanish from the tree, and trees for grammars with and without such
// indirections are identical.
func Collapse(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
	if !n.IsLeaf() && len(n.Children) == 1 {
		return n.Children[0], nil
	}
	return n, nil
}

// Discard returns a converter which drops nodes of the given types, together
// with their subtrees. Types may be token types or non-terminal symbols.
func Discard(types ...int) parser.Converter {
	drop := make(map[int]bool, len(types))
	for _, t := range types {
		drop[t] = true
	}
	return func(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
		if drop[n.Type] {
			return nil, nil
		}
		return n, nil
	}
}

// Keep returns a converter which drops all leaves, except for tokens of the
// given types. Non-terminal nodes are not affected.
func Keep(types ...int) parser.Converter {
	keep := make(map[int]bool, len(types))
	for _, t := range types {
		keep[t] = true
	}
	return func(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
		if n.IsLeaf() && !keep[n.Type] {
			return nil, nil
		}
		return n, nil
	}
}

// Chain combines converters. They are applied in order; as soon as one
// discards the node or fails, the remaining converters are not called.
func Chain(converters ...parser.Converter) parser.Converter {
	return func(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
		var err error
		for _, c := range converters {
			if n, err = c(g, n); err != nil || n == nil {
				return nil, err
			}
		}
		return n, nil
	}
}
