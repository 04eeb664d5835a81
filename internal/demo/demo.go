/*
Package demo provides ready-made grammar tables for the command line tool and
for tests.

Tables have been written by hand, in the form a grammar compiler would emit
them. There are two grammars:

■ ANBN is the classic non-regular language

    S -> 'a' S 'b' | 'c'

with a, b and c being keywords (identifiers with fixed text).

■ Expr is a grammar for arithmetic expressions:

    eval_input -> expr EOF
    expr       -> term (('+'|'-') term)*
    term       -> factor (('*'|'/') factor)*
    factor     -> Int | Float | '(' expr ')' | '-' factor

Converter Evaluate folds the tree of an expression into its value while parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package demo

import (
	"strings"

	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/pgen/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Non-terminal symbols of grammar ANBN.
const (
	S = grammar.NTOffset + iota
)

// Non-terminal symbols of grammar Expr.
const (
	EvalInput = grammar.NTOffset + iota
	ExprSym
	Term
	Factor
)

// ANBN returns the tables for S -> 'a' S 'b' | 'c'.
func ANBN() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("anbn")
	a := b.KeywordLabel(scanner.Ident, "a")
	bb := b.KeywordLabel(scanner.Ident, "b")
	c := b.KeywordLabel(scanner.Ident, "c")
	sym, s := b.NonTerminal("S")
	b.State(sym, false, grammar.Arc{Label: a, Next: 1}, grammar.Arc{Label: c, Next: 3})
	b.State(sym, false, grammar.Arc{Label: s, Next: 2})
	b.State(sym, false, grammar.Arc{Label: bb, Next: 3})
	b.State(sym, true)
	b.First(sym, a, c)
	return b.Grammar()
}

// Expr returns the tables for the arithmetic expression grammar. The start
// symbol is EvalInput, which expects an EOF token after the expression.
// Starting with ExprSym parses an expression without EOF.
func Expr() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("expr")
	eof := b.TokenLabel(scanner.EOF)
	integer := b.TokenLabel(scanner.Int)
	float := b.TokenLabel(scanner.Float)
	plus, minus := b.TokenLabel('+'), b.TokenLabel('-')
	times, div := b.TokenLabel('*'), b.TokenLabel('/')
	lp, rp := b.TokenLabel('('), b.TokenLabel(')')
	evalInput, _ := b.NonTerminal("eval_input")
	expr, e := b.NonTerminal("expr")
	term, t := b.NonTerminal("term")
	factor, f := b.NonTerminal("factor")
	first := []int{integer, float, lp, minus}
	//
	b.State(evalInput, false, grammar.Arc{Label: e, Next: 1})
	b.State(evalInput, false, grammar.Arc{Label: eof, Next: 2})
	b.State(evalInput, true)
	b.First(evalInput, first...)
	//
	b.State(expr, false, grammar.Arc{Label: t, Next: 1})
	b.State(expr, true, grammar.Arc{Label: plus, Next: 0}, grammar.Arc{Label: minus, Next: 0})
	b.First(expr, first...)
	//
	b.State(term, false, grammar.Arc{Label: f, Next: 1})
	b.State(term, true, grammar.Arc{Label: times, Next: 0}, grammar.Arc{Label: div, Next: 0})
	b.First(term, first...)
	//
	b.State(factor, false,
		grammar.Arc{Label: integer, Next: 1},
		grammar.Arc{Label: float, Next: 1},
		grammar.Arc{Label: lp, Next: 2},
		grammar.Arc{Label: minus, Next: 3})
	b.State(factor, true)
	b.State(factor, false, grammar.Arc{Label: e, Next: 4})
	b.State(factor, false, grammar.Arc{Label: f, Next: 1})
	b.State(factor, false, grammar.Arc{Label: rp, Next: 1})
	b.First(factor, first...)
	return b.Grammar()
}

// ANBNLexer returns a lexmachine scanner generator for grammar ANBN. It does
// not need white space between tokens and delivers a, b and c as identifiers.
func ANBNLexer() (*lexmach.LMAdapter, error) {
	keywords := []string{"a", "b", "c"}
	ids := map[string]int{"a": scanner.Ident, "b": scanner.Ident, "c": scanner.Ident}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	return lexmach.NewLMAdapter(init, nil, keywords, ids)
}

// --- Demo registry ---------------------------------------------------------

// Example bundles a demo grammar with a matching tokenizer.
type Example struct {
	Name    string
	Grammar func() (*grammar.Grammar, error)
	Scan    func(input string) (scanner.Tokenizer, error)
}

// Examples lists the demo grammars by name.
var Examples = map[string]Example{
	"anbn": {
		Name:    "anbn",
		Grammar: ANBN,
		Scan: func(input string) (scanner.Tokenizer, error) {
			lm, err := ANBNLexer()
			if err != nil {
				return nil, err
			}
			sc, err := lm.Scanner(input)
			if err != nil {
				return nil, err
			}
			return sc, nil
		},
	},
	"expr": {
		Name:    "expr",
		Grammar: Expr,
		Scan: func(input string) (scanner.Tokenizer, error) {
			return scanner.GoTokenizer("expr", strings.NewReader(input)), nil
		},
	},
}
