package grammar

import (
	"encoding/json"
	"fmt"
	"io"
)

// Grammar tables may be stored as JSON:
//
//     {
//       "name": "a^n c b^n",
//       "start": 256,
//       "labels": [ {"symbol": 1}, {"symbol": 2}, {"symbol": 3}, {"symbol": 256} ],
//       "dfas": [ {
//         "symbol": 256, "name": "S", "first": [0, 2],
//         "states": [
//           {"arcs": [[0, 1], [2, 3]]},
//           {"arcs": [[3, 2]]},
//           {"arcs": [[1, 3]]},
//           {"accepting": true}
//         ]
//       } ]
//     }
//
// Arcs are pairs [label id, next state]. Tables produced by pgen-style compilers
// mark accepting states with a pseudo-arc [0, self] instead of a flag. Set
// "legacy_accept" to true to have these arcs translated while loading.

// LegacyAcceptLabel is the label id of accept pseudo-arcs in legacy tables.
const LegacyAcceptLabel = 0

type tableFile struct {
	Name         string      `json:"name"`
	Start        int         `json:"start"`
	LegacyAccept bool        `json:"legacy_accept,omitempty"`
	Labels       []labelFile `json:"labels"`
	DFAs         []dfaFile   `json:"dfas"`
}

type labelFile struct {
	Symbol  int    `json:"symbol"`
	Literal string `json:"literal,omitempty"`
}

type dfaFile struct {
	Symbol int         `json:"symbol"`
	Name   string      `json:"name,omitempty"`
	First  []int       `json:"first"`
	States []stateFile `json:"states"`
}

type stateFile struct {
	Arcs      [][2]int `json:"arcs,omitempty"`
	Accepting bool     `json:"accepting,omitempty"`
}

// Load reads grammar tables in JSON format and creates a grammar from them.
func Load(r io.Reader) (*Grammar, error) {
	var tf tableFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: cannot decode table file: %v", ErrMalformedTables, err)
	}
	labels := make([]Label, len(tf.Labels))
	for i, l := range tf.Labels {
		labels[i] = Label{Symbol: l.Symbol, Literal: l.Literal}
	}
	dfas := make(map[int]*DFA, len(tf.DFAs))
	for _, df := range tf.DFAs {
		if _, dup := dfas[df.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate DFA for symbol %d", ErrMalformedTables, df.Symbol)
		}
		dfa := &DFA{
			Symbol: df.Symbol,
			Name:   df.Name,
			First:  NewFirstSet(df.First...),
			States: make([]State, len(df.States)),
		}
		for s, sf := range df.States {
			state := State{Accepting: sf.Accepting}
			for _, a := range sf.Arcs {
				if tf.LegacyAccept && a[0] == LegacyAcceptLabel && a[1] == s {
					state.Accepting = true
					continue
				}
				state.Arcs = append(state.Arcs, Arc{Label: a[0], Next: a[1]})
			}
			dfa.States[s] = state
		}
		dfas[df.Symbol] = dfa
	}
	name := tf.Name
	if name == "" {
		name = "G"
	}
	return New(name, dfas, labels, tf.Start)
}

// WriteJSON writes the tables of g in the format read by Load.
// Accepting states are always written with a flag.
func (g *Grammar) WriteJSON(w io.Writer) error {
	tf := tableFile{
		Name:   g.Name,
		Start:  g.Start,
		Labels: make([]labelFile, len(g.Labels)),
	}
	for i, l := range g.Labels {
		tf.Labels[i] = labelFile{Symbol: l.Symbol, Literal: l.Literal}
	}
	for _, sym := range g.symbols() {
		dfa := g.DFAs[sym]
		df := dfaFile{
			Symbol: sym,
			Name:   dfa.Name,
			First:  dfa.First.Labels(),
			States: make([]stateFile, len(dfa.States)),
		}
		for s, state := range dfa.States {
			sf := stateFile{Accepting: state.Accepting}
			for _, arc := range state.Arcs {
				sf.Arcs = append(sf.Arcs, [2]int{arc.Label, arc.Next})
			}
			df.States[s] = sf
		}
		tf.DFAs = append(tf.DFAs, df)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}
