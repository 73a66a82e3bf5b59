// Package tree holds the result shape produced by both parser drivers:
// a node that is either a leaf (a bare name) or a composite with a name
// and a flat list of children, alternating sub-nodes and operator-name
// leaves in source order.
package tree

import "strings"

// Node is a leaf when Children is empty, and a composite when Children
// is non-empty. A leaf with an empty Name is the CONCAT marker. A
// composite with an empty Name only occurs transiently, between an
// operator's ToNode and the driver tagging the result with its level
// name; every composite returned to a caller has a non-empty Name.
type Node struct {
	Name     string
	Children []*Node
}

// Leaf builds a bare atom or bare operator-spelling node.
func Leaf(name string) *Node {
	return &Node{Name: name}
}

// Composite builds a named node wrapping the given children, in the
// exact order they should render.
func Composite(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// ConcatMarker builds the unnamed leaf a hallucinated concatenation
// operator frame contributes to its enclosing composite; it renders as
// the literal word CONCAT.
func ConcatMarker() *Node {
	return &Node{}
}

// ConcatLeaf is the rendered spelling of a ConcatMarker leaf.
const ConcatLeaf = "CONCAT"

// Render implements the textual form: a leaf renders as its own name
// (or CONCAT, for the unnamed concatenation marker); a composite
// renders as "name{ c1 c2 … }", with each child rendered recursively.
func (n *Node) Render() string {
	if n == nil {
		return ""
	}
	if len(n.Children) == 0 {
		if n.Name == "" {
			return ConcatLeaf
		}
		return n.Name
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.Render()
	}
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteString("{ ")
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(" }")
	return b.String()
}
