package demo

import (
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.grammar")
	defer teardown()
	//
	g, err := Expr()
	if err != nil {
		t.Fatal(err)
	}
	syms := map[int]string{EvalInput: "eval_input", ExprSym: "expr", Term: "term", Factor: "factor"}
	for sym, name := range syms {
		if g.SymbolName(sym) != name {
			t.Errorf("expected symbol %d to be %s, is %s", sym, name, g.SymbolName(sym))
		}
	}
	if g.Start != EvalInput {
		t.Errorf("expected start symbol to be eval_input, is %s", g.SymbolName(g.Start))
	}
	a, err := ANBN()
	if err != nil {
		t.Fatal(err)
	}
	if a.SymbolName(S) != "S" {
		t.Errorf("expected symbol %d to be S, is %s", S, a.SymbolName(S))
	}
}

func TestEvaluateTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	g, err := Expr()
	if err != nil {
		t.Fatal(err)
	}
	p := parser.NewParser(g, Evaluate)
	if err = p.Setup(); err != nil {
		t.Fatal(err)
	}
	input := []pgen.Token{
		scanner.MakeDefaultToken(scanner.Float, "1.5", pgen.Span{0, 3}),
		scanner.MakeDefaultToken('*', "*", pgen.Span{3, 4}),
		scanner.MakeDefaultToken(scanner.Int, "4", pgen.Span{4, 5}),
		scanner.MakeDefaultToken(scanner.EOF, "", pgen.Span{5, 5}),
	}
	done := false
	for _, tok := range input {
		label, err := g.Classify(int(tok.TokType()), tok.Lexeme())
		if err != nil {
			t.Fatal(err)
		}
		if done, err = p.AddToken(int(tok.TokType()), tok, label); err != nil {
			t.Fatal(err)
		}
	}
	if !done {
		t.Fatalf("expected parse to be complete")
	}
	root, _ := p.Root()
	if !root.IsLeaf() || root.Token != 6.0 {
		t.Errorf("expected value 6, have %v", root)
	}
}

func TestANBNLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	lm, err := ANBNLexer()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := lm.Scanner("ac b")
	if err != nil {
		t.Fatal(err)
	}
	for _, lexeme := range []string{"a", "c", "b"} {
		tok := sc.NextToken()
		if tok.TokType() != scanner.Ident || tok.Lexeme() != lexeme {
			t.Errorf("expected identifier %q, have %d/%q", lexeme, tok.TokType(), tok.Lexeme())
		}
	}
}
