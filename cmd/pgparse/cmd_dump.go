package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pgen/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func newDumpCmd(conf *settings) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the grammar tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(conf)
			if err != nil {
				return err
			}
			if asJSON {
				return s.G.WriteJSON(os.Stdout)
			}
			s.G.Dump() // only visible in debug mode
			return dumpTables(s.G)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the tables as JSON")
	return cmd
}

func dumpTables(g *grammar.Grammar) error {
	pterm.Info.Printf("grammar %s, start symbol %s, fingerprint %s\n",
		g.Name, g.SymbolName(g.Start), g.Fingerprint())
	labels := pterm.TableData{{"label", "symbol", "literal"}}
	for id, l := range g.Labels {
		sym := fmt.Sprintf("%d", l.Symbol)
		if l.IsNonTerminal() {
			sym = g.SymbolName(l.Symbol)
		}
		labels = append(labels, []string{fmt.Sprintf("%d", id), sym, l.Literal})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(labels).Render(); err != nil {
		return err
	}
	syms := make([]int, 0, len(g.DFAs))
	for sym := range g.DFAs {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	for _, sym := range syms {
		dfa := g.DFA(sym)
		pterm.Println()
		pterm.Info.Printf("%s %s\n", dfa.Name, g.FirstString(dfa))
		states := pterm.TableData{{"state", "arcs", "moves"}}
		for s := range dfa.States {
			states = append(states, []string{fmt.Sprintf("%d", s), g.StateString(dfa, s), g.MovesString(dfa, s)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(states).Render(); err != nil {
			return err
		}
	}
	return nil
}
