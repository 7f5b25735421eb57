// Package lispy evaluates a small S-expression language of integers,
// Q-expressions and a fixed set of built-in operations.
//
//	v, err := lispy.EvalString("(+ 1 (* 2 3))")
//	if err != nil {
//		// parse error
//	}
//	fmt.Println(v) // 7
//	v.Destroy()
//
// Evaluation never fails with a Go error: failures are error values that
// print as "Error: <message>".
package lispy

import (
	"github.com/xiam/lispy/parser"
)

// Parse reads src into an unevaluated S-expression holding every top level
// expression.
func Parse(src string) (*Value, error) {
	root, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	return Read(root), nil
}

// EvalString parses and evaluates src. The returned error is always a parse
// error.
func EvalString(src string) (*Value, error) {
	v, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Eval(v), nil
}
