package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/npillmayer/pgen/grammar/sparse"
)

// accelerate pre-computes the moves of every state of a DFA. Arcs are visited in
// order and every (state, label) position is claimed by the first arc which
// accepts the label, mirroring a linear scan over the arcs. Labels claimed by more
// than one arc of a state indicate a non-deterministic grammar; they are traced,
// the first arc keeps the label.
func accelerate(g *Grammar, dfa *DFA) *accelerator {
	moves := sparse.NewPairMatrix(len(dfa.States), len(g.Labels), sparse.DefaultNullValue)
	for s, state := range dfa.States {
		conflicts := treeset.NewWithIntComparator()
		for _, arc := range state.Arcs {
			l := g.Labels[arc.Label]
			if !l.IsNonTerminal() {
				if !moves.SetOnce(s, arc.Label, int32(arc.Next), 0) {
					conflicts.Add(arc.Label)
				}
				continue
			}
			for _, fl := range g.DFAs[l.Symbol].First.Labels() {
				if fl < 0 || fl >= len(g.Labels) {
					continue
				}
				if !moves.SetOnce(s, fl, int32(arc.Next), int32(l.Symbol)) {
					conflicts.Add(fl)
				}
			}
		}
		if !conflicts.Empty() {
			tracer().Errorf("grammar %s: DFA %s state %d is ambiguous for labels %v",
				g.Name, dfa.Name, s, conflicts.Values())
		}
	}
	tracer().Debugf("DFA %s: accelerated %d moves for %d states", dfa.Name, moves.ValueCount(), len(dfa.States))
	return &accelerator{moves: moves}
}
