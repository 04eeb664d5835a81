package driver

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/convert"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/internal/demo"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	g, err := demo.Expr()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func anbnGrammar(t *testing.T) *grammar.Grammar {
	g, err := demo.ANBN()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func names(g *grammar.Grammar) func(*parser.Node) string {
	return func(n *parser.Node) string {
		if n.IsLeaf() {
			if tok, ok := n.Token.(pgen.Token); ok {
				if tok.TokType() == scanner.EOF {
					return "$"
				}
				return tok.Lexeme()
			}
			return "?"
		}
		return g.SymbolName(n.Type)
	}
}

func TestParseExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	g := exprGrammar(t)
	d := New(g, convert.Collapse)
	tree, err := d.ParseString("1 + 2 * x")
	if err == nil {
		t.Errorf("expected identifier to be rejected, have tree %v", tree)
	}
	tree, err = d.ParseString("1 + 2 * 3")
	if err != nil {
		t.Fatal(err)
	}
	expected := "(eval_input (expr 1 + (term 2 * 3)) $)"
	if s := tree.Sexpr(names(g)); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), demo.Evaluate)
	inputs := map[string]float64{
		"1":               1,
		"1 + 2 * 3":       7,
		"(1 + 2) * 3":     9,
		"10 - 4 - 3":      3,
		"-2 * -(3.5)":     7,
		"8 / 2 / 2":       2,
		"0x10 + 1":        17,
		"((((42))))":      42,
		"2 * (3 + 4) / 7": 2,
	}
	for input, expected := range inputs {
		tree, err := d.ParseString(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if v, ok := tree.Token.(float64); !ok || v != expected {
			t.Errorf("%q: expected %g, have %v", input, expected, tree.Token)
		}
	}
}

func TestConverterFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), demo.Evaluate)
	_, err := d.ParseString("1 / (2 - 2)")
	if !errors.Is(err, parser.ErrConversion) || !errors.Is(err, demo.ErrDivisionByZero) {
		t.Errorf("expected division by zero conversion error, have %v", err)
	} else if !strings.Contains(err.Error(), "starting at (0…1)") {
		t.Errorf("expected error to locate the term at the first token, have %v", err)
	}
	// driver must be usable again
	if _, err = d.ParseString("1 / 2"); err != nil {
		t.Errorf("expected driver to recover, have %v", err)
	}
}

func TestIncompleteInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), nil)
	for _, input := range []string{"1 +", "(1", "", "-"} {
		_, err := d.ParseString(input)
		if !errors.Is(err, ErrIncompleteInput) {
			t.Errorf("%q: expected incomplete input, have %v", input, err)
		}
	}
	// grammar without EOF label
	a := New(anbnGrammar(t), nil)
	if _, err := a.ParseString("a a c b"); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("expected incomplete input for a^2 c b, have %v", err)
	}
}

func TestBadInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), nil)
	_, err := d.ParseString("1 2")
	var perr *parser.ParseError
	if !errors.As(err, &perr) || perr.Kind != parser.BadInput {
		t.Fatalf("expected bad input, have %v", err)
	}
	if perr.TokType != scanner.Int {
		t.Errorf("expected offending token to be an integer, is %d", perr.TokType)
	}
	if errors.Is(err, ErrIncompleteInput) {
		t.Errorf("bad input in the middle of input reported as incomplete")
	}
}

func TestTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(anbnGrammar(t), nil)
	if _, err := d.ParseString("a c b b"); !errors.Is(err, ErrTrailingInput) {
		t.Errorf("expected trailing input, have %v", err)
	}
	_, err := d.ParseString("c c")
	var perr *parser.ParseError
	if !errors.Is(err, ErrTrailingInput) || !errors.As(err, &perr) || perr.Kind != parser.TooMuchInput {
		t.Fatalf("expected trailing input as too much input, have %v", err)
	}
	if tok, ok := perr.Token.(pgen.Token); !ok || tok.Lexeme() != "c" || tok.Span().From() != 2 {
		t.Errorf("expected second 'c' to be reported, have %v", perr.Token)
	}
	if _, err := d.ParseString("a c b"); err != nil {
		t.Errorf("expected a c b to be accepted, have %v", err)
	}
}

func TestMaxTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), nil, MaxTokens(4))
	if _, err := d.ParseString("1 + 2 + 3"); !errors.Is(err, ErrTooManyTokens) {
		t.Errorf("expected too many tokens, have %v", err)
	}
	if _, err := d.ParseString("1 + 2"); err != nil {
		t.Errorf("expected 4 tokens to be accepted, have %v", err)
	}
}

func TestStartOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	g := exprGrammar(t)
	d := New(g, nil, Start(demo.Factor))
	tree, err := d.ParseString("-(1)")
	if err != nil {
		t.Fatal(err)
	}
	expected := "(factor - (factor ( (expr (term (factor 1))) )))"
	if s := tree.Sexpr(names(g)); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	if _, err := New(g, nil, Start(4711)).ParseString("1"); !errors.Is(err, parser.ErrUsage) {
		t.Errorf("expected usage error for unknown start symbol, have %v", err)
	}
}

func TestSkipTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	g := exprGrammar(t)
	scan := func(input string) (scanner.Tokenizer, error) {
		return scanner.GoTokenizer("comments", strings.NewReader(input), scanner.SkipComments(false)), nil
	}
	d := New(g, demo.Evaluate, ScanWith(scan))
	if _, err := d.ParseString("1 /* one */ + 2"); err == nil {
		t.Errorf("expected comment token to be rejected")
	}
	d = New(g, demo.Evaluate, ScanWith(scan), SkipTokens(scanner.Comment))
	tree, err := d.ParseString("1 /* one */ + 2")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Token != 3.0 {
		t.Errorf("expected 3, have %v", tree.Token)
	}
}

func TestScannerError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	d := New(exprGrammar(t), nil)
	if _, err := d.ParseString(`1 + "2`); !errors.Is(err, ErrScanner) {
		t.Errorf("expected scanner error, have %v", err)
	}
}

func TestLexmachineScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.driver")
	defer teardown()
	//
	g := anbnGrammar(t)
	d := New(g, nil, ScanWith(demo.Examples["anbn"].Scan))
	tree, err := d.ParseString("aacbb")
	if err != nil {
		t.Fatal(err)
	}
	expected := "(S a (S a (S c) b) b)"
	if s := tree.Sexpr(names(g)); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	if _, err := d.ParseString("aacb"); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("expected incomplete input, have %v", err)
	}
}
