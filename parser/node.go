package parser

import (
	"fmt"
	"strings"
)

// Node is a node of a syntax tree. Type is either a token type or a non-terminal
// symbol. Token carries the opaque token payload as handed to Parser.AddToken:
// for leaves the token itself, for non-terminals the first token of their
// derivation, which converters may use to report locations. The root node of a
// parse, created by Setup, has no token.
//
// Leaf nodes have no children slice at all (Children == nil), while
// non-terminal nodes start with an empty slice. This distinguishes "no children
// yet" from "is a token".
type Node struct {
	Type     int
	Token    interface{}
	Children []*Node
}

// NewLeaf creates a node for a token.
func NewLeaf(typ int, token interface{}) *Node {
	return &Node{Type: typ, Token: token}
}

// NewNonTerminal creates an empty node for a non-terminal symbol.
func NewNonTerminal(sym int) *Node {
	return &Node{Type: sym, Children: make([]*Node, 0, 4)}
}

// IsLeaf is true for token nodes.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

func (n *Node) String() string {
	if n == nil {
		return "(PNode nil)"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("(PNode %d %v)", n.Type, n.Token)
	}
	return fmt.Sprintf("(PNode %d with %d children)", n.Type, len(n.Children))
}

// Sexpr formats a tree as an s-expression. name is called for every node to
// get its label; leaves are printed bare, non-terminals as (label children…).
//
//    S(a, S(c), b)  is printed as  (S a (S c) b)
//
func (n *Node) Sexpr(name func(*Node) string) string {
	var b strings.Builder
	n.sexpr(&b, name)
	return b.String()
}

func (n *Node) sexpr(b *strings.Builder, name func(*Node) string) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	if n.IsLeaf() {
		b.WriteString(name(n))
		return
	}
	b.WriteString("(")
	b.WriteString(name(n))
	for _, ch := range n.Children {
		b.WriteString(" ")
		ch.sexpr(b, name)
	}
	b.WriteString(")")
}

// Walk visits the nodes of a tree depth first, parents before children.
// If f returns false, the children of a node are skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, ch := range n.Children {
		ch.Walk(f)
	}
}
