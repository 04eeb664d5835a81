package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pgen/grammar/sparse"
)

// NTOffset is the smallest non-terminal symbol value. Label symbols below NTOffset
// are token types.
const NTOffset = 256

// Label is an entry of a grammar's label table. Symbol is either a token type or a
// non-terminal symbol. Literal is set for labels which match a token only if
// the token's text is identical to it, e.g. keywords.
type Label struct {
	Symbol  int
	Literal string
}

// IsNonTerminal is true if the label denotes a non-terminal symbol.
func (l Label) IsNonTerminal() bool {
	return l.Symbol >= NTOffset
}

func (l Label) String() string {
	if l.Literal != "" {
		return fmt.Sprintf("%d:%q", l.Symbol, l.Literal)
	}
	return fmt.Sprintf("%d", l.Symbol)
}

// Arc is a transition of a DFA, keyed by a label id.
type Arc struct {
	Label int // label id, i.e. index into the label table
	Next  int // target state
}

// State is a state of a DFA. Accepting marks states where the derivation of the
// DFA's non-terminal may legally end.
type State struct {
	Arcs      []Arc
	Accepting bool
}

// Final is true for purely accepting states, i.e. accepting states without
// a continuation.
func (s State) Final() bool {
	return s.Accepting && len(s.Arcs) == 0
}

// DFA is the automaton for a single non-terminal symbol. State 0 is the
// initial state.
type DFA struct {
	Symbol int       // non-terminal symbol, >= NTOffset
	Name   string    // name of the non-terminal, for diagnostics
	States []State   // states in order
	First  *FirstSet // labels which may start a derivation of Symbol
	accel  *accelerator
}

// Grammar is a set of DFA tables plus a label table. Create one with New.
// Clients must not modify any part of a grammar after creation.
type Grammar struct {
	Name   string
	DFAs   map[int]*DFA // DFAs, indexed by non-terminal symbol
	Labels []Label      // label table, indexed by label id
	Start  int          // default start symbol

	tokens      map[int]int     // token type -> label id of plain token labels
	keywords    map[keyword]int // (token type, literal) -> label id
	fingerprint string
}

type keyword struct {
	tokType int
	literal string
}

// Errors reported for malformed tables or unknown tokens.
var (
	ErrMalformedTables = errors.New("malformed grammar tables")
	ErrNoLabel         = errors.New("no label for token")
)

// New creates a grammar from DFAs, labels and a start symbol. It does not validate
// determinism of the tables, but checks that arcs and first sets refer to existing
// labels, states and DFAs. New pre-computes classification indexes and transition
// accelerators; afterwards the grammar is read-only.
func New(name string, dfas map[int]*DFA, labels []Label, start int) (*Grammar, error) {
	g := &Grammar{
		Name:     name,
		DFAs:     dfas,
		Labels:   labels,
		Start:    start,
		tokens:   make(map[int]int),
		keywords: make(map[keyword]int),
	}
	if _, ok := dfas[start]; !ok {
		return nil, fmt.Errorf("%w: no DFA for start symbol %d", ErrMalformedTables, start)
	}
	for id, l := range labels {
		if l.IsNonTerminal() {
			if _, ok := dfas[l.Symbol]; !ok {
				return nil, fmt.Errorf("%w: label %d refers to unknown non-terminal %d",
					ErrMalformedTables, id, l.Symbol)
			}
			continue
		}
		if l.Literal != "" {
			g.keywords[keyword{l.Symbol, l.Literal}] = id
		} else if _, dup := g.tokens[l.Symbol]; !dup {
			g.tokens[l.Symbol] = id
		}
	}
	for sym, dfa := range dfas {
		if err := g.checkDFA(sym, dfa); err != nil {
			return nil, err
		}
	}
	for _, dfa := range dfas {
		dfa.accel = accelerate(g, dfa)
	}
	fp, err := fingerprint(g)
	if err != nil {
		return nil, fmt.Errorf("cannot fingerprint grammar %s: %w", name, err)
	}
	g.fingerprint = fp
	tracer().Infof("grammar %s: %d DFAs, %d labels, fingerprint %s", name, len(dfas), len(labels), fp)
	return g, nil
}

func (g *Grammar) checkDFA(sym int, dfa *DFA) error {
	if dfa == nil || dfa.Symbol != sym || sym < NTOffset {
		return fmt.Errorf("%w: DFA for symbol %d is missing or mis-numbered", ErrMalformedTables, sym)
	}
	if len(dfa.States) == 0 {
		return fmt.Errorf("%w: DFA %s has no states", ErrMalformedTables, dfa.Name)
	}
	if dfa.First == nil {
		dfa.First = NewFirstSet()
	}
	if dfa.First.Len() == 0 && sym != g.Start {
		tracer().Infof("grammar %s: DFA %s has an empty first set and cannot be pushed", g.Name, dfa.Name)
	}
	for s, state := range dfa.States {
		for _, arc := range state.Arcs {
			if arc.Label < 0 || arc.Label >= len(g.Labels) {
				return fmt.Errorf("%w: DFA %s state %d: arc label %d out of range",
					ErrMalformedTables, dfa.Name, s, arc.Label)
			}
			if arc.Next < 0 || arc.Next >= len(dfa.States) {
				return fmt.Errorf("%w: DFA %s state %d: arc target %d out of range",
					ErrMalformedTables, dfa.Name, s, arc.Next)
			}
		}
	}
	for _, l := range dfa.First.Labels() {
		if l < 0 || l >= len(g.Labels) {
			return fmt.Errorf("%w: DFA %s: first set label %d out of range",
				ErrMalformedTables, dfa.Name, l)
		}
	}
	return nil
}

// DFA returns the automaton for non-terminal sym, or nil.
func (g *Grammar) DFA(sym int) *DFA {
	return g.DFAs[sym]
}

// Fingerprint returns a content hash of the grammar tables. Two grammars with
// identical tables have identical fingerprints.
func (g *Grammar) Fingerprint() string {
	return g.fingerprint
}

// SymbolName returns a name for a symbol: the DFA name for non-terminals, or
// the symbol number for token types.
func (g *Grammar) SymbolName(sym int) string {
	if dfa, ok := g.DFAs[sym]; ok && dfa.Name != "" {
		return dfa.Name
	}
	return fmt.Sprintf("%d", sym)
}

// Classify maps a token to a label id. A keyword label matching the token's
// lexeme takes precedence over the plain label for the token type.
// Tokens the grammar has no label for result in an error wrapping ErrNoLabel.
func (g *Grammar) Classify(tokType int, lexeme string) (int, error) {
	if id, ok := g.keywords[keyword{tokType, lexeme}]; ok {
		return id, nil
	}
	if id, ok := g.tokens[tokType]; ok {
		return id, nil
	}
	return -1, fmt.Errorf("%w: type=%d, lexeme=%q", ErrNoLabel, tokType, lexeme)
}

// --- Moves -----------------------------------------------------------------

// MoveKind is the kind of a parser move for a (state, label) combination.
type MoveKind int8

// Parser moves.
const (
	NoMove MoveKind = iota // no arc applies
	Shift                  // consume a token and go to Next
	Push                   // descend into non-terminal Symbol, resume at Next
)

func (k MoveKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Push:
		return "push"
	}
	return "none"
}

// Move is the result of a transition lookup.
type Move struct {
	Kind   MoveKind
	Next   int // next state in the current DFA
	Symbol int // non-terminal to push, for Kind == Push
}

// Move returns the move for a label id in a given state. The first arc of the
// state which either carries the label itself or leads to a non-terminal with
// the label in its first set wins.
//
// Move is answered from tables pre-computed by New; for a DFA which is not part
// of a grammar created by New it always returns NoMove.
func (dfa *DFA) Move(state int, label int) Move {
	if dfa.accel == nil {
		return Move{Kind: NoMove}
	}
	return dfa.accel.move(state, label)
}

// scan looks up a move by inspecting the arcs of a state in order.
func (dfa *DFA) scan(g *Grammar, state int, label int) Move {
	for _, arc := range dfa.States[state].Arcs {
		l := g.Labels[arc.Label]
		if !l.IsNonTerminal() {
			if arc.Label == label {
				return Move{Kind: Shift, Next: arc.Next}
			}
		} else if g.DFAs[l.Symbol].First.Has(label) {
			return Move{Kind: Push, Next: arc.Next, Symbol: l.Symbol}
		}
	}
	return Move{Kind: NoMove}
}

// accelerator holds pre-computed moves of a DFA.
type accelerator struct {
	moves *sparse.PairMatrix // (state, label) -> (next, 0 | non-terminal)
}

func (acc *accelerator) move(state int, label int) Move {
	if label < 0 || label >= acc.moves.N() {
		return Move{Kind: NoMove}
	}
	next, sym := acc.moves.Pair(state, label)
	if next == acc.moves.NullValue() {
		return Move{Kind: NoMove}
	}
	if sym == 0 {
		return Move{Kind: Shift, Next: int(next)}
	}
	return Move{Kind: Push, Next: int(next), Symbol: int(sym)}
}
