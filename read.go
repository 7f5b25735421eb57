package lispy

import (
	"fmt"
	"strconv"

	"github.com/xiam/lispy/ast"
)

// Read turns a parse tree into an unevaluated value. The root and every
// parenthesized group become S-expressions, braced groups become
// Q-expressions.
func Read(n *ast.Node) *Value {
	switch {
	case n.Is("number"):
		return readNumber(n.Contents())
	case n.Is("symbol"):
		return NewSymbol(n.Contents())
	}

	var x *Value
	switch {
	case n.Tag() == ast.TagRoot, n.Is("sexpr"):
		x = NewSExpr()
	case n.Is("qexpr"):
		x = NewQExpr()
	default:
		panic(fmt.Sprintf("unknown node tag %q", n.Tag()))
	}

	for _, child := range n.Children() {
		switch child.Contents() {
		case "(", ")", "{", "}":
			continue
		}
		if child.Tag() == ast.TagRegex {
			continue
		}
		x.Append(Read(child))
	}

	return x
}

func readNumber(s string) *Value {
	i64, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return newError(ErrInvalidNumber, "Invalid number")
	}
	return NewNumber(i64)
}
