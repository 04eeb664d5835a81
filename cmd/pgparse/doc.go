/*
Command pgparse is a command line tool to try out grammar tables.

It loads grammar tables, either from a JSON table file (flag --tables) or one
of the built-in demo grammars (flag --demo), and parses input with them.

	pgparse parse "1 + 2 * 3"           # print the syntax tree
	pgparse parse --eval "(1 + 2) * 3"  # evaluate with the expression demo
	pgparse --demo anbn parse aacbb
	pgparse repl                        # interactive mode, quit with <ctrl>D
	pgparse dump --json > expr.json     # write the tables to a file

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("pgen.cli")
}
