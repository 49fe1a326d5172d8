// Package lrparse implements the table-driven shift/reduce parser (C7):
// given a grammar, its ACTION/GOTO table, and a token stream, it runs the
// driver loop of §4.8, producing a step-by-step trace and, on acceptance,
// a concrete parse tree.
package lrparse

import (
	"strings"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

// Node is a single node of a concrete parse tree. A leaf (Children == nil)
// is either a shifted terminal or the synthetic ε leaf produced when an
// empty production is reduced. An interior node's Symbol is a production's
// LHS and its Children are the symbols reduced from the production's RHS,
// in order.
type Node struct {
	Symbol   string
	Children []*Node
}

// leaf builds a terminal (or ε) leaf node.
func leaf(symbol string) *Node {
	return &Node{Symbol: symbol}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// String renders the tree as an indented outline, one symbol per line.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Symbol)
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}

// epsilonLeaf returns the synthetic leaf representing an empty production's
// sole child, per §4.8's handling of ε-reductions.
func epsilonLeaf() *Node {
	return leaf(grammar.Epsilon)
}
