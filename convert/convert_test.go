package convert

import (
	"errors"
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/driver"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/internal/demo"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func names(g *grammar.Grammar) func(*parser.Node) string {
	return func(n *parser.Node) string {
		if !n.IsLeaf() {
			return g.SymbolName(n.Type)
		}
		if tok, ok := n.Token.(pgen.Token); ok && tok.TokType() != scanner.EOF {
			return tok.Lexeme()
		}
		return "$"
	}
}

func parse(t *testing.T, convert parser.Converter, input string) string {
	g, err := demo.Expr()
	if err != nil {
		t.Fatal(err)
	}
	tree, err := driver.New(g, convert).ParseString(input)
	if err != nil {
		t.Fatal(err)
	}
	if tree == nil {
		return "nil"
	}
	return tree.Sexpr(names(g))
}

func TestIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	expected := "(eval_input (expr (term (factor 7))) $)"
	if s := parse(t, Identity, "7"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
}

func TestCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	expected := "(eval_input 7 $)"
	if s := parse(t, Collapse, "((7))"); s == expected {
		t.Errorf("parentheses must not be collapsed, have %s", s)
	}
	if s := parse(t, Collapse, "7"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	expected = "(eval_input (expr 1 - (factor - 2)) $)"
	if s := parse(t, Collapse, "1 - -2"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
}

func TestDiscard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	expected := "(eval_input (expr (term (factor 1)) (term (factor 2))))"
	if s := parse(t, Discard('+', scanner.EOF), "1 + 2"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	if s := parse(t, Discard(demo.EvalInput), "1 + 2"); s != "nil" {
		t.Errorf("expected root to be discarded, have %s", s)
	}
}

func TestKeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	expected := "(eval_input (expr (term (factor 1)) (term (factor 2))))"
	if s := parse(t, Keep(scanner.Int), "1 + 2"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
}

func TestChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	expected := "(expr 1 2)"
	if s := parse(t, Chain(Keep(scanner.Int), Collapse), "1 + 2"); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	calls := 0
	count := func(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
		calls++
		return n, nil
	}
	if s := parse(t, Chain(Discard(demo.EvalInput), count), "1"); s != "nil" {
		t.Errorf("expected root to be discarded, have %s", s)
	}
	if calls != 5 { // 1 · $ · factor · term · expr
		t.Errorf("expected counter to be called for 5 nodes, was called %d times", calls)
	}
}

func TestChainError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.parser")
	defer teardown()
	//
	g, err := demo.Expr()
	if err != nil {
		t.Fatal(err)
	}
	fail := errors.New("fail")
	c := Chain(Collapse, func(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
		if n.Type == demo.Term && len(n.Children) > 1 {
			return nil, fail
		}
		return n, nil
	})
	if _, err := driver.New(g, c).ParseString("2 * 3"); !errors.Is(err, fail) {
		t.Errorf("expected converter error, have %v", err)
	}
}
