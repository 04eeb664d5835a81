package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/pgen"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func addParseFlags(cmd *cobra.Command, conf *settings) {
	cmd.Flags().BoolVar(&conf.collapse, "collapse", false, "collapse single-child non-terminals")
	cmd.Flags().BoolVar(&conf.sexpr, "sexpr", false, "print the tree as an s-expression")
	cmd.Flags().BoolVar(&conf.eval, "eval", false, "evaluate arithmetic expressions (expr demo)")
	cmd.Flags().IntVar(&conf.maxTokens, "max-tokens", 0, "maximum number of tokens per parse (0 = no limit)")
}

func newParseCmd(conf *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [input…]",
		Short: "Parse input and print the syntax tree; reads stdin without arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				input = string(data)
			}
			s, err := loadSession(conf)
			if err != nil {
				return err
			}
			d, err := s.newDriver(conf)
			if err != nil {
				return err
			}
			tree, err := d.ParseString(strings.TrimSpace(input))
			if err != nil {
				return err
			}
			printTree(s.G, tree, conf)
			return nil
		},
	}
	addParseFlags(cmd, conf)
	return cmd
}

// --- Output ----------------------------------------------------------------

func printTree(g *grammar.Grammar, tree *parser.Node, conf *settings) {
	switch {
	case tree == nil:
		pterm.Info.Println("nil")
	case tree.IsLeaf():
		pterm.Info.Println(nodeLabel(g)(tree))
	case conf.sexpr:
		pterm.Info.Println(tree.Sexpr(nodeLabel(g)))
	default:
		ll := leveledNode(g, tree, pterm.LeveledList{}, 0)
		tracer().Debugf("|ll| = %d", len(ll))
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	}
}

func leveledNode(g *grammar.Grammar, n *parser.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(g)(n),
	})
	for _, ch := range n.Children {
		ll = leveledNode(g, ch, ll, level+1)
	}
	return ll
}

// nodeLabel prints non-terminals by name and tokens by their text.
func nodeLabel(g *grammar.Grammar) func(*parser.Node) string {
	return func(n *parser.Node) string {
		if !n.IsLeaf() {
			return g.SymbolName(n.Type)
		}
		switch tok := n.Token.(type) {
		case pgen.Token:
			if tok.TokType() == scanner.EOF {
				return "<EOF>"
			}
			return tok.Lexeme()
		case float64:
			return fmt.Sprintf("%g", tok)
		}
		return fmt.Sprintf("%v", n.Token)
	}
}
