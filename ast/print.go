package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("  ", level)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%s%s %q\n", indent, n.Tag(), n.Contents())
		return
	}
	fmt.Fprintf(w, "%s%s\n", indent, n.Tag())
	for _, child := range n.Children() {
		printLevel(w, child, level+1)
	}
}

// Encode transforms a node back into its text representation
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ":nil"
	}
	if n.IsLeaf() {
		return n.Contents()
	}

	var (
		opening, closing string
		nodes       []string
	)
	for _, child := range n.Children() {
		switch {
		case child.Is(TagRegex):
			continue
		case child.Tag() == TagChar && opening == "":
			opening = child.Contents()
		case child.Tag() == TagChar:
			closing = child.Contents()
		default:
			nodes = append(nodes, encodeNode(child))
		}
	}
	return opening + strings.Join(nodes, " ") + closing
}
