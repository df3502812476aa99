package syntax

import "github.com/goccy/go-json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Pos      int         `json:"pos,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// MarshalJSON serializes the node as a nested kind/text structure suitable
// for tooling that inspects trees outside of Go.
func (n *Node) MarshalJSON () ([]byte, error) {
	return json.Marshal(toJSONNode(n))
}

// MarshalJSON serializes the root node.
func (t *Tree) MarshalJSON () ([]byte, error) {
	return t.Root.MarshalJSON()
}

func toJSONNode (n *Node) *jsonNode {
	j := &jsonNode{Kind: n.Kind.String()}
	if n.Token != nil {
		j.Text = n.Token.Text
		j.Pos = n.Token.Pos
		return j
	}
	for _, c := range n.Children {
		j.Children = append(j.Children, toJSONNode(c))
	}
	return j
}
