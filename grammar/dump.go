package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Dump is a debugging helper. It traces the tables of g with level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------", g.Name)
	for id, l := range g.Labels {
		tracer().Debugf("label %3d = %s", id, g.labelString(l))
	}
	for _, sym := range g.symbols() {
		dfa := g.DFAs[sym]
		tracer().Debugf("DFA %d %s, first = %s", sym, dfa.Name, g.FirstString(dfa))
		for s := range dfa.States {
			tracer().Debugf("    %s", g.StateString(dfa, s))
			tracer().Debugf("        moves: %s", g.MovesString(dfa, s))
		}
	}
	tracer().Debugf("-------------------------")
}

// StateString formats a DFA state for diagnostics.
func (g *Grammar) StateString(dfa *DFA, s int) string {
	var b strings.Builder
	state := dfa.States[s]
	fmt.Fprintf(&b, "[%d]", s)
	if state.Accepting {
		b.WriteString(" (accept)")
	}
	for _, arc := range state.Arcs {
		fmt.Fprintf(&b, " %s→%d", g.labelString(g.Labels[arc.Label]), arc.Next)
	}
	return b.String()
}

// MovesString prints the pre-computed moves of a DFA state, ordered by label id:
// label→next for shifts and label⇒non-terminal/next for pushes.
func (g *Grammar) MovesString(dfa *DFA, s int) string {
	if dfa.accel == nil || s < 0 || s >= dfa.accel.moves.M() {
		return "-"
	}
	var moves []string
	dfa.accel.moves.Row(s, func(label int, next, sym int32) {
		l := g.labelString(g.Labels[label])
		if sym == 0 {
			moves = append(moves, fmt.Sprintf("%s→%d", l, next))
		} else {
			moves = append(moves, fmt.Sprintf("%s⇒%s/%d", l, g.SymbolName(int(sym)), next))
		}
	})
	if len(moves) == 0 {
		return "-"
	}
	return strings.Join(moves, " ")
}

// FirstString prints a first set as labels, sorted by name.
func (g *Grammar) FirstString(dfa *DFA) string {
	set := treeset.NewWithStringComparator()
	for _, l := range dfa.First.Labels() {
		set.Add(g.labelString(g.Labels[l]))
	}
	names := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		names = append(names, it.Value().(string))
	}
	return "{" + strings.Join(names, " ") + "}"
}

func (g *Grammar) labelString(l Label) string {
	if l.IsNonTerminal() {
		return g.SymbolName(l.Symbol)
	}
	if l.Literal != "" {
		return fmt.Sprintf("%q", l.Literal)
	}
	return fmt.Sprintf("#%d", l.Symbol)
}
