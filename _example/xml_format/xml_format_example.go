package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if !node.IsLeaf() {
		fmt.Printf("%s<node tag=%q>\n", indent, node.Tag())
		children := node.Children()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</node>\n", indent)
		return
	}
	fmt.Printf("%s<leaf tag=%q>%s</leaf>\n", indent, node.Tag(), node.Contents())
}

func main() {
	input := `(eval {+ 1 (* 2 3)}) {head tail}`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
