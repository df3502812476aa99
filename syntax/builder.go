package syntax

import "errors"

// ErrUnbalanced is returned by Finish when the number of StartNode and
// FinishNode calls does not match.
var ErrUnbalanced = errors.New("syntax: unbalanced node stack")

// Builder assembles a tree bottom-up. Every StartNode must be paired with a
// FinishNode; Finish checks the discipline and returns the root.
type Builder struct {
	stack     []*Node
	underflow bool
}

func NewBuilder () *Builder {
	b := &Builder{}
	b.stack = append(b.stack, &Node{Kind: Root})
	return b
}

// StartNode opens a new interior node of the given kind as a child of the
// currently open node.
func (b *Builder) StartNode (kind Kind) {
	n := &Node{Kind: kind}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, n)
	b.stack = append(b.stack, n)
}

// Token appends a leaf to the currently open node.
func (b *Builder) Token (tok Token) {
	t := tok
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, &Node{Kind: tok.Kind, Token: &t})
}

// FinishNode closes the most recently started node. Closing the root is
// reported by Finish, not here.
func (b *Builder) FinishNode () {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
		return
	}
	// Underflow. Remember it so Finish can fail.
	b.underflow = true
}

// Checkpoint marks a position inside the currently open node so that nodes
// emitted after it can later be wrapped retroactively. Used by the expression
// grammar, where the enclosing node kind depends on what follows.
type Checkpoint struct {
	node  *Node
	index int
}

func (b *Builder) Checkpoint () Checkpoint {
	top := b.stack[len(b.stack)-1]
	return Checkpoint{node: top, index: len(top.Children)}
}

// StartNodeAt opens a node of the given kind that adopts everything emitted
// into the checkpointed node since the checkpoint was taken. The checkpoint
// must belong to the currently open node.
func (b *Builder) StartNodeAt (cp Checkpoint, kind Kind) {
	top := b.stack[len(b.stack)-1]
	if cp.node != top || cp.index > len(top.Children) {
		b.underflow = true
		b.StartNode(kind)
		return
	}
	n := &Node{Kind: kind}
	n.Children = append(n.Children, top.Children[cp.index:]...)
	top.Children = append(top.Children[:cp.index], n)
	b.stack = append(b.stack, n)
}

// Depth returns the number of open nodes, the root included.
func (b *Builder) Depth () int {
	return len(b.stack)
}

// Finish returns the completed root node. It fails if any node is still open
// or FinishNode was called more times than StartNode.
func (b *Builder) Finish () (*Node, error) {
	if b.underflow || len(b.stack) != 1 {
		return nil, ErrUnbalanced
	}
	root := b.stack[0]
	b.stack = nil
	return root, nil
}
