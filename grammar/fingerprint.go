package grammar

import (
	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// fingerprintVersion is the structhash version of the table layout. Increment it
// whenever the hashed view changes.
const fingerprintVersion = 1

// tableView is a canonical, map-free view of the grammar tables, suitable
// for structural hashing.
type tableView struct {
	Start  int
	Labels []Label
	DFAs   []dfaView
}

type dfaView struct {
	Symbol int
	Name   string
	First  []int
	States []State
}

func fingerprint(g *Grammar) (string, error) {
	view := tableView{Start: g.Start, Labels: g.Labels}
	for _, sym := range g.symbols() {
		dfa := g.DFAs[sym]
		view.DFAs = append(view.DFAs, dfaView{
			Symbol: dfa.Symbol,
			Name:   dfa.Name,
			First:  dfa.First.Labels(),
			States: dfa.States,
		})
	}
	return structhash.Hash(view, fingerprintVersion)
}

// symbols returns the non-terminal symbols of g in increasing order.
func (g *Grammar) symbols() []int {
	syms := make([]int, 0, len(g.DFAs))
	for sym := range g.DFAs {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}
