package ast

import (
	"fmt"

	"github.com/xiam/lispy/lexer"
)

// Node represents leaf of the parse tree
type Node struct {
	p *Node

	tag      string
	tok      *lexer.Token
	children []*Node
}

// New creates and returns an orphaned node with the given tag and token. The
// token may be nil.
func New(tag string, tok *lexer.Token) *Node {
	return &Node{
		tag:      tag,
		tok:      tok,
		children: []*Node{},
	}
}

// NewRoot creates and returns an empty root node
func NewRoot() *Node {
	return New(TagRoot, nil)
}

// Push appends a child node and returns it
func (n *Node) Push(node *Node) *Node {
	n.children = append(n.children, node)
	node.p = n
	return node
}

// PushLeaf appends a new leaf built from tok
func (n *Node) PushLeaf(tag string, tok *lexer.Token) *Node {
	return n.Push(New(tag, tok))
}

// Tag returns the tag of the node
func (n *Node) Tag() string {
	return n.tag
}

// Is returns true if the node tag contains name
func (n *Node) Is(name string) bool {
	return HasTag(n.tag, name)
}

// Token returns the token associated to the node
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Contents returns the literal text of the node, leaves only.
func (n *Node) Contents() string {
	if n.tok == nil {
		return ""
	}
	return n.tok.Text()
}

// Children returns all the children elements of the node
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Parent returns the node this node was pushed into
func (n *Node) Parent() *Node {
	return n.p
}

func (n Node) String() string {
	if len(n.children) > 0 || n.tok == nil {
		return fmt.Sprintf("(%v)[%d]", n.tag, len(n.children))
	}
	return fmt.Sprintf("(%v): %q", n.tag, n.Contents())
}
