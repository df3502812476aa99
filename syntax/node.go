package syntax

import "strings"

// Node is an interior node or a leaf of the concrete syntax tree. A leaf has
// Token set and no children; an interior node has children and no token.
type Node struct {
	Kind     Kind
	Token    *Token
	Children []*Node
}

// IsLeaf reports whether the node wraps a single token.
func (n *Node) IsLeaf () bool {
	return n.Token != nil
}

// Text reconstructs the exact source text the node covers by concatenating
// its leaves in order.
func (n *Node) Text () string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText (sb *strings.Builder) {
	if n.Token != nil {
		sb.WriteString(n.Token.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(sb)
	}
}

// Span returns the byte offsets covered by the node. An empty node reports
// (0, 0).
func (n *Node) Span () (start, end int) {
	first := n.firstToken()
	if first == nil {
		return 0, 0
	}
	return first.Pos, n.lastToken().End()
}

func (n *Node) firstToken () *Token {
	if n.Token != nil {
		return n.Token
	}
	for _, c := range n.Children {
		if t := c.firstToken(); t != nil {
			return t
		}
	}
	return nil
}

func (n *Node) lastToken () *Token {
	if n.Token != nil {
		return n.Token
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if t := n.Children[i].lastToken(); t != nil {
			return t
		}
	}
	return nil
}

// FirstChild returns the first child of the given kind, or nil.
func (n *Node) FirstChild (kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child of the given kind.
func (n *Node) ChildrenOfKind (kind Kind) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			res = append(res, c)
		}
	}
	return res
}

// FirstToken returns the first non-trivia leaf token under the node, or nil.
func (n *Node) FirstToken () *Token {
	if n.Token != nil {
		if n.Token.IsTrivia() {
			return nil
		}
		return n.Token
	}
	for _, c := range n.Children {
		if t := c.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// Walk calls f for the node and every descendant in depth-first order.
// Returning false from f skips the node's children.
func (n *Node) Walk (f func (*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(f)
	}
}

// Tree is a parse result: a Root node plus the name of the source it was
// built from.
type Tree struct {
	SourceName string
	Root       *Node
}

// Text reproduces the original source byte-for-byte.
func (t *Tree) Text () string {
	return t.Root.Text()
}
