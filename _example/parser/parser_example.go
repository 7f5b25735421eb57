package main

import (
	"fmt"
	"log"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/parser"
)

func main() {
	input := `(join {1 2} (list (* 3 4) (max 5 -6)) (tail {0 7}))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)

	v := lispy.Eval(lispy.Read(root))
	fmt.Println(v)
	v.Destroy()
}
