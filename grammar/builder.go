package grammar

import "fmt"

// Builder assembles grammar tables programmatically. It does not compute
// anything: states, arcs and first sets are taken as given.
//
//     b := NewBuilder("G")
//     num := b.TokenLabel(scanner.Int)
//     E, _ := b.NonTerminal("E")
//     b.State(E, false, Arc{num, 1})
//     b.State(E, true)
//     b.First(E, num)
//     g, err := b.Grammar()
//
// The first non-terminal declared is the start symbol, unless Start is called.
type Builder struct {
	name   string
	dfas   map[int]*DFA
	labels []Label
	start  int
	err    error
}

// NewBuilder creates a builder for a grammar.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		dfas: make(map[int]*DFA),
	}
}

// TokenLabel returns the label id for a token type, creating the label if necessary.
func (b *Builder) TokenLabel(tokType int) int {
	return b.label(Label{Symbol: tokType})
}

// KeywordLabel returns the label id for tokens of type tokType with text literal,
// creating the label if necessary.
func (b *Builder) KeywordLabel(tokType int, literal string) int {
	return b.label(Label{Symbol: tokType, Literal: literal})
}

func (b *Builder) label(l Label) int {
	if l.Symbol >= NTOffset {
		b.fail(fmt.Errorf("token type %d collides with non-terminal range", l.Symbol))
		return -1
	}
	for id, x := range b.labels {
		if x == l {
			return id
		}
	}
	b.labels = append(b.labels, l)
	return len(b.labels) - 1
}

// NonTerminal declares a new non-terminal. It returns the non-terminal's symbol
// value and the label id to use for arcs referring to it.
func (b *Builder) NonTerminal(name string) (sym int, label int) {
	sym = NTOffset + len(b.dfas)
	b.dfas[sym] = &DFA{Symbol: sym, Name: name}
	if b.start == 0 {
		b.start = sym
	}
	b.labels = append(b.labels, Label{Symbol: sym})
	return sym, len(b.labels) - 1
}

// State appends a state to the DFA of non-terminal sym and returns its index.
// The first state appended is the initial state.
func (b *Builder) State(sym int, accepting bool, arcs ...Arc) int {
	dfa, ok := b.dfas[sym]
	if !ok {
		b.fail(fmt.Errorf("state for undeclared non-terminal %d", sym))
		return -1
	}
	dfa.States = append(dfa.States, State{Arcs: arcs, Accepting: accepting})
	return len(dfa.States) - 1
}

// First sets the first set of non-terminal sym.
func (b *Builder) First(sym int, labels ...int) {
	dfa, ok := b.dfas[sym]
	if !ok {
		b.fail(fmt.Errorf("first set for undeclared non-terminal %d", sym))
		return
	}
	dfa.First = NewFirstSet(labels...)
}

// Start sets the start symbol.
func (b *Builder) Start(sym int) {
	b.start = sym
}

func (b *Builder) fail(err error) {
	tracer().Errorf("grammar builder %s: %v", b.name, err)
	if b.err == nil {
		b.err = err
	}
}

// Grammar creates the grammar from the tables assembled so far. It returns the
// first error which occured while building, or an error from New.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTables, b.err)
	}
	labels := make([]Label, len(b.labels))
	copy(labels, b.labels)
	dfas := make(map[int]*DFA, len(b.dfas))
	for sym, dfa := range b.dfas {
		d := *dfa
		d.States = append([]State(nil), dfa.States...)
		dfas[sym] = &d
	}
	return New(b.name, dfas, labels, b.start)
}
