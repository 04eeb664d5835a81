package parser

import (
	"fmt"

	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// Converter maps concrete syntax tree nodes to abstract syntax tree nodes.
// It is called for every node as soon as the node's subtree is complete, i.e. from
// the bottom up. Returning a nil node discards the node together with its subtree.
// Returning an error aborts the parse.
type Converter func(g *grammar.Grammar, n *Node) (*Node, error)

// Identity is the default converter. It keeps every node, so the resulting
// tree is the concrete syntax tree.
func Identity(g *grammar.Grammar, n *Node) (*Node, error) {
	return n, nil
}

type phase int8

const (
	uninitialized phase = iota
	parsing
	done
	failed
)

func (ph phase) String() string {
	return [...]string{"uninitialized", "parsing", "done", "failed"}[ph]
}

// Parser is the pushdown engine. Create one with NewParser and prepare it for
// a parse with Setup.
type Parser struct {
	G       *grammar.Grammar
	convert Converter
	stack   []frame // parser stack, TOS is last
	root    *Node   // result of a completed parse
	phase   phase
}

// A frame holds the derivation of a non-terminal in progress. state is the
// position within the frame's DFA; while a child frame is on top, it is the
// state to resume at when the child is popped.
type frame struct {
	dfa   *grammar.DFA
	state int
	node  *Node
}

// NewParser creates a parser for a grammar. If convert is nil, Identity is used.
func NewParser(g *grammar.Grammar, convert Converter) *Parser {
	if convert == nil {
		convert = Identity
	}
	return &Parser{
		G:       g,
		convert: convert,
		stack:   make([]frame, 0, 64),
	}
}

// Setup prepares for parsing, starting with the grammar's start symbol.
// It must be called before the first token is added, and may be called again
// to parse another token sequence, regardless of the outcome of the previous one.
func (p *Parser) Setup() error {
	if p.G == nil {
		return fmt.Errorf("%w: parser has no grammar", ErrUsage)
	}
	return p.SetupStart(p.G.Start)
}

// SetupStart prepares for parsing, using an alternative start symbol.
func (p *Parser) SetupStart(start int) error {
	if p.G == nil {
		return fmt.Errorf("%w: parser has no grammar", ErrUsage)
	}
	dfa := p.G.DFA(start)
	if dfa == nil {
		p.stack, p.root, p.phase = p.stack[:0], nil, uninitialized
		return fmt.Errorf("%w: no DFA for start symbol %d", ErrUsage, start)
	}
	p.stack = append(p.stack[:0], frame{dfa: dfa, state: 0, node: NewNonTerminal(start)})
	p.root = nil
	p.phase = parsing
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Infof("parser set up for start symbol %s", p.G.SymbolName(start))
	return nil
}

// AddToken feeds a token into the parser. typ is the token type, token an opaque
// payload which is stored in the leaf node, and label the label id the token has
// been classified as. AddToken returns true if this token completes the parse.
//
// If the token does not fit, a *ParseError is returned and the parser is unusable
// until Setup is called again. A token added after the parse has been completed
// is reported as TooMuchInput.
func (p *Parser) AddToken(typ int, token interface{}, label int) (bool, error) {
	switch p.phase {
	case done: // the start symbol has been completed by an earlier token
		return false, p.stuck(TooMuchInput, typ, token, label)
	case uninitialized, failed:
		return false, fmt.Errorf("%w: cannot add token to %s parser", ErrUsage, p.phase)
	}
	// loop until the token is shifted; every iteration either shifts, pushes or pops
	for {
		tos := &p.stack[len(p.stack)-1]
		move := tos.dfa.Move(tos.state, label)
		switch move.Kind {
		case grammar.Shift:
			if err := p.shift(typ, token, move.Next); err != nil {
				return false, err
			}
			// pop while we are in an accept-only state
			for p.top().dfa.States[p.top().state].Final() {
				if err := p.pop(); err != nil {
					return false, err
				}
				if len(p.stack) == 0 {
					p.phase = done
					tracer().Infof("parse complete")
					return true, nil
				}
			}
			return false, nil
		case grammar.Push:
			p.push(move.Symbol, move.Next, token)
			continue
		}
		if !tos.dfa.States[tos.state].Accepting {
			return false, p.stuck(BadInput, typ, token, label)
		}
		// an accepting state: reduce and retry the token with the parent
		if err := p.pop(); err != nil {
			return false, err
		}
		if len(p.stack) == 0 {
			return false, p.stuck(TooMuchInput, typ, token, label)
		}
	}
}

// Root returns the root of the syntax tree after a completed parse. If the
// converter discarded the root node, Root returns nil without an error.
func (p *Parser) Root() (*Node, error) {
	if p.phase != done {
		return nil, fmt.Errorf("%w: no parse tree available from %s parser", ErrUsage, p.phase)
	}
	return p.root, nil
}

// Depth returns the number of frames on the parser stack.
func (p *Parser) Depth() int {
	return len(p.stack)
}

// --- Stack operations ------------------------------------------------------

func (p *Parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

// shift creates a leaf for a token and appends it to the node of the TOS frame.
func (p *Parser) shift(typ int, token interface{}, next int) error {
	tos := p.top()
	tracer().Debugf("shift token %d/%v in %s, next state = %d", typ, token, tos.dfa.Name, next)
	leaf, err := p.convert(p.G, NewLeaf(typ, token))
	if err != nil {
		return p.abort(err)
	}
	if leaf != nil {
		tos.node.Children = append(tos.node.Children, leaf)
	}
	tos.state = next
	return nil
}

// push records the resume state with the TOS frame and pushes a frame for a
// non-terminal. The new node keeps the token which started its derivation.
func (p *Parser) push(sym int, next int, token interface{}) {
	dfa := p.G.DFA(sym)
	tos := p.top()
	tracer().Debugf("push %s from %s, resume at state %d", dfa.Name, tos.dfa.Name, next)
	tos.state = next
	node := NewNonTerminal(sym)
	node.Token = token
	p.stack = append(p.stack, frame{dfa: dfa, state: 0, node: node})
}

// pop removes the TOS frame, converts its node and attaches the result to the
// new TOS, or makes it the root if the stack is empty.
func (p *Parser) pop() error {
	popped := p.stack[len(p.stack)-1]
	p.stack[len(p.stack)-1] = frame{}
	p.stack = p.stack[:len(p.stack)-1]
	tracer().Debugf("pop %s with %d children", popped.dfa.Name, len(popped.node.Children))
	node, err := p.convert(p.G, popped.node)
	if err != nil {
		return p.abort(err)
	}
	if node == nil {
		return nil
	}
	if len(p.stack) == 0 {
		p.root = node
	} else {
		tos := p.top()
		tos.node.Children = append(tos.node.Children, node)
	}
	return nil
}

// --- Errors ----------------------------------------------------------------

func (p *Parser) abort(err error) error {
	p.phase = failed
	tracer().Errorf("conversion failed: %v", err)
	return fmt.Errorf("%w: %w", ErrConversion, err)
}

func (p *Parser) stuck(kind ErrorKind, typ int, token interface{}, label int) error {
	p.phase = failed
	perr := &ParseError{Kind: kind, TokType: typ, Token: token, Label: label}
	tracer().Errorf("parser is stuck: %v", perr)
	if kind == BadInput && len(p.stack) > 0 && gconf.GetBool("panic-on-parser-stuck") {
		tos := p.top()
		panic(fmt.Sprintf(`Parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a grammar and do a post-mortem of why the parser got stuck. However, if
this is a production environment and you did not expect this to panic, please
unset panic-on-parser-stuck to its default (false).

%v
in %s
at stack depth %d`, perr, p.G.StateString(tos.dfa, tos.state), len(p.stack)))
	}
	return perr
}
