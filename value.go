package lispy

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

type ValueType uint8

const (
	ValueTypeNumber ValueType = iota
	ValueTypeError
	ValueTypeSymbol
	ValueTypeSExpr
	ValueTypeQExpr
)

var valueTypes = map[ValueType]string{
	ValueTypeNumber: "number",
	ValueTypeError:  "error",
	ValueTypeSymbol: "symbol",
	ValueTypeSExpr:  "sexpr",
	ValueTypeQExpr:  "qexpr",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// liveValues counts values that were created and not yet destroyed.
var liveValues int64

// Live returns the number of values that were created and not destroyed yet.
func Live() int64 {
	return atomic.LoadInt64(&liveValues)
}

// Value is a number, an error, a symbol, or a list of values. Lists own their
// cells: a cell belongs to exactly one list, and is destroyed with it.
type Value struct {
	num   int64
	str   string
	err   error
	cells []*Value

	released bool

	Type ValueType
}

func newValue(vt ValueType) *Value {
	atomic.AddInt64(&liveValues, 1)
	return &Value{Type: vt}
}

func NewNumber(n int64) *Value {
	v := newValue(ValueTypeNumber)
	v.num = n
	return v
}

func NewError(msg string) *Value {
	return newErrorValue(errors.New(msg))
}

func newErrorValue(err error) *Value {
	v := newValue(ValueTypeError)
	v.err = err
	return v
}

func NewSymbol(name string) *Value {
	v := newValue(ValueTypeSymbol)
	v.str = name
	return v
}

func NewSExpr() *Value {
	v := newValue(ValueTypeSExpr)
	v.cells = []*Value{}
	return v
}

func NewQExpr() *Value {
	v := newValue(ValueTypeQExpr)
	v.cells = []*Value{}
	return v
}

// IsList returns true for S-expressions and Q-expressions.
func (v *Value) IsList() bool {
	return v.Type == ValueTypeSExpr || v.Type == ValueTypeQExpr
}

// Append adds x to the end of v and returns v. v takes ownership of x.
func (v *Value) Append(x *Value) *Value {
	if !v.IsList() {
		panic(fmt.Sprintf("cannot append to a value of type %v", v.Type))
	}
	v.cells = append(v.cells, x)
	return v
}

// Pop removes the i-th cell of v and hands it over to the caller.
func (v *Value) Pop(i int) *Value {
	x := v.cells[i]

	n := len(v.cells)
	copy(v.cells[i:], v.cells[i+1:])
	v.cells[n-1] = nil
	v.cells = v.cells[:n-1]

	return x
}

// Take pops the i-th cell of v and destroys what is left of v.
func (v *Value) Take(i int) *Value {
	x := v.Pop(i)
	v.Destroy()
	return x
}

// Destroy releases v and every cell it owns. Destroying a value twice panics.
func (v *Value) Destroy() {
	if v.released {
		panic(fmt.Sprintf("%v value destroyed twice", v.Type))
	}
	for _, cell := range v.cells {
		cell.Destroy()
	}
	v.cells = nil
	v.released = true
	atomic.AddInt64(&liveValues, -1)
}

func (v *Value) Int() int64 {
	return v.num
}

func (v *Value) Sym() string {
	return v.str
}

// Err returns the error carried by an error value, nil otherwise.
func (v *Value) Err() error {
	return v.err
}

func (v *Value) Len() int {
	return len(v.cells)
}

func (v *Value) Cell(i int) *Value {
	return v.cells[i]
}

func (v *Value) String() string {
	switch v.Type {
	case ValueTypeNumber:
		return fmt.Sprintf("%d", v.num)
	case ValueTypeError:
		return "Error: " + v.err.Error()
	case ValueTypeSymbol:
		return v.str
	case ValueTypeSExpr:
		return "(" + v.join() + ")"
	case ValueTypeQExpr:
		return "{" + v.join() + "}"
	}
	panic("unreachable")
}

func (v *Value) join() string {
	values := make([]string, 0, len(v.cells))
	for i := range v.cells {
		values = append(values, v.cells[i].String())
	}
	return strings.Join(values, " ")
}
