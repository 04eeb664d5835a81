package lexmach

import (
	"testing"

	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("12 + abc")
	if err != nil {
		t.Fatal(err)
	}
	expected := [][2]uint64{{0, 2}, {3, 4}, {5, 8}, {8, 8}}
	for i, span := range expected {
		token := sc.NextToken()
		if token.Span().From() != span[0] || token.Span().To() != span[1] {
			t.Errorf("token #%d %q: expected span %v, have %v", i, token.Lexeme(), span, token.Span())
		}
	}
	if token := sc.NextToken(); token.TokType() != scanner.EOF {
		t.Errorf("expected scanner to stay at EOF, have %v", token)
	}
}

func TestLMLiteralTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgen.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("(x)")
	types := []int{tokenIds["("], scanner.Ident, tokenIds[")"]}
	for i, typ := range types {
		if token := sc.NextToken(); int(token.TokType()) != typ {
			t.Errorf("token #%d: expected type %d, have %d", i, typ, token.TokType())
		}
	}
}

func lispInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
	lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
	lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
	lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
}

var literals = []string{"'", "(", ")", "[", "]", "=", "+", "-", "*", "/"}
var keywords = []string{"nil", "t"}
var tokenIds = func() map[string]int {
	ids := map[string]int{
		"COMMENT": scanner.Comment,
		"ID":      scanner.Ident,
		"NUM":     scanner.Int,
		"STRING":  scanner.String,
	}
	for i, tok := range append(append([]string{}, keywords...), literals...) {
		ids[tok] = i + 10
	}
	return ids
}()
