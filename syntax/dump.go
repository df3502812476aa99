package syntax

import (
	"strconv"
	"strings"
)

// Dump renders the tree as an indented kind listing, one node per line.
// Leaf lines carry the token text quoted, so two dumps are equal exactly
// when the trees are.
func Dump (n *Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

// Dump renders the whole tree from the root.
func (t *Tree) Dump () string {
	return Dump(t.Root)
}

func dumpNode (sb *strings.Builder, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Token.Text))
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		dumpNode(sb, c, depth+1)
	}
}
