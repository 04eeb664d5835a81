package demo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
)

// ErrDivisionByZero is returned by Evaluate for divisions by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate is a converter for grammar Expr. It replaces every complete
// non-terminal by a leaf of type scanner.Float, holding the float64 value of
// the subexpression. The root of a completed parse is such a leaf.
func Evaluate(g *grammar.Grammar, n *parser.Node) (*parser.Node, error) {
	if n.IsLeaf() {
		return n, nil
	}
	var v float64
	var err error
	switch n.Type {
	case EvalInput:
		v, err = value(n.Children[0])
	case ExprSym, Term:
		if v, err = fold(n.Children); errors.Is(err, ErrDivisionByZero) {
			err = fmt.Errorf("%w in term starting at %s", err, startOf(n))
		}
	case Factor:
		switch len(n.Children) {
		case 1:
			v, err = value(n.Children[0])
		case 2: // '-' factor
			v, err = value(n.Children[1])
			v = -v
		case 3: // '(' expr ')'
			v, err = value(n.Children[1])
		}
	default:
		return nil, fmt.Errorf("cannot evaluate symbol %s", g.SymbolName(n.Type))
	}
	if err != nil {
		return nil, err
	}
	return parser.NewLeaf(scanner.Float, v), nil
}

// startOf returns the span of the first token of a non-terminal.
func startOf(n *parser.Node) string {
	if tok, ok := n.Token.(pgen.Token); ok {
		return tok.Span().String()
	}
	return "start of input"
}

// fold evaluates a sequence 'operand (operator operand)*' from left to right.
func fold(children []*parser.Node) (float64, error) {
	acc, err := value(children[0])
	if err != nil {
		return 0, err
	}
	for i := 1; i+1 < len(children); i += 2 {
		x, err := value(children[i+1])
		if err != nil {
			return 0, err
		}
		switch children[i].Type {
		case '+':
			acc += x
		case '-':
			acc -= x
		case '*':
			acc *= x
		case '/':
			if x == 0 {
				return 0, ErrDivisionByZero
			}
			acc /= x
		default:
			return 0, fmt.Errorf("unknown operator type %d", children[i].Type)
		}
	}
	return acc, nil
}

// value extracts the number of a leaf, either an already folded value or a
// numeric token.
func value(n *parser.Node) (float64, error) {
	switch v := n.Token.(type) {
	case float64:
		return v, nil
	case pgen.Token:
		if v.TokType() == scanner.Int {
			i, err := strconv.ParseInt(v.Lexeme(), 0, 64)
			return float64(i), err
		}
		return strconv.ParseFloat(v.Lexeme(), 64)
	}
	return 0, fmt.Errorf("not a number: %v", n)
}
