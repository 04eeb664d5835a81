/*
Package pgen is a table-driven parsing toolbox for deterministic grammars
given as one finite automaton per non-terminal (the pgen table format).

The heart of the module is a non-recursive pushdown automaton which is fed one
classified token at a time and builds a concrete syntax tree, optionally
converting it bottom-up into an abstract syntax tree. Package structure is
as follows:

■ grammar: Package grammar holds the immutable grammar tables (DFAs, first sets,
labels), together with label classification and transition accelerators.

■ parser: Package parser implements the pushdown engine and the tree nodes it
produces.

■ convert: Package convert provides re-usable conversion callbacks.

■ scanner: Package scanner defines the tokenizer interface, with a default
implementation on top of text/scanner and an adapter for lexmachine.

■ driver: Package driver connects a tokenizer, a grammar and a parser.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pgen
