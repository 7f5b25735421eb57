package lispy

// Builtin identifies one of the operations the evaluator knows about.
type Builtin uint8

const (
	BuiltinNone Builtin = iota
	BuiltinList
	BuiltinHead
	BuiltinTail
	BuiltinJoin
	BuiltinEval
	BuiltinAdd
	BuiltinSub
	BuiltinMul
	BuiltinDiv
	BuiltinMod
	BuiltinPow
	BuiltinMin
	BuiltinMax
)

var builtinNames = map[Builtin]string{
	BuiltinList: "list",
	BuiltinHead: "head",
	BuiltinTail: "tail",
	BuiltinJoin: "join",
	BuiltinEval: "eval",
	BuiltinAdd:  "+",
	BuiltinSub:  "-",
	BuiltinMul:  "*",
	BuiltinDiv:  "/",
	BuiltinMod:  "%",
	BuiltinPow:  "^",
	BuiltinMin:  "min",
	BuiltinMax:  "max",
}

var builtinsByName = func() map[string]Builtin {
	m := make(map[string]Builtin, len(builtinNames))
	for b, name := range builtinNames {
		m[name] = b
	}
	return m
}()

func (b Builtin) String() string {
	return builtinNames[b]
}

// LookupBuiltin returns the built-in called name, or BuiltinNone.
func LookupBuiltin(name string) Builtin {
	return builtinsByName[name]
}

// Call applies the built-in called name to args, an S-expression of
// evaluated arguments. Call takes ownership of args.
func Call(name string, args *Value) *Value {
	return call(LookupBuiltin(name), args)
}

func call(b Builtin, a *Value) *Value {
	switch b {
	case BuiltinList:
		return builtinList(a)
	case BuiltinHead:
		return builtinHead(a)
	case BuiltinTail:
		return builtinTail(a)
	case BuiltinJoin:
		return builtinJoin(a)
	case BuiltinEval:
		return builtinEval(a)
	case BuiltinAdd, BuiltinSub, BuiltinMul, BuiltinDiv, BuiltinMod, BuiltinPow, BuiltinMin, BuiltinMax:
		return builtinOp(b, a)
	}
	return argError(a, ErrUnknownFunction, "Unknown function")
}

// expectList checks that a holds exactly one Q-expression, and that it has
// cells if nonEmpty is set. On failure a is destroyed and an error value is
// returned.
func expectList(b Builtin, a *Value, nonEmpty bool) *Value {
	switch {
	case a.Len() == 0:
		return argError(a, ErrArgCount, "Function '%v' passed no arguments!", b)
	case a.Len() > 1:
		return argError(a, ErrArgCount, "Function '%v' passed too many arguments!", b)
	case a.Cell(0).Type != ValueTypeQExpr:
		return argError(a, ErrArgType, "Function '%v' passed incorrect type!", b)
	case nonEmpty && a.Cell(0).Len() == 0:
		return argError(a, ErrEmptyList, "Function '%v' passed {}!", b)
	}
	return nil
}

func builtinList(a *Value) *Value {
	a.Type = ValueTypeQExpr
	return a
}

func builtinHead(a *Value) *Value {
	if err := expectList(BuiltinHead, a, true); err != nil {
		return err
	}

	v := a.Take(0)
	for _, cell := range v.cells[1:] {
		cell.Destroy()
	}
	clear(v.cells[1:])
	v.cells = v.cells[:1]
	return v
}

func builtinTail(a *Value) *Value {
	if err := expectList(BuiltinTail, a, true); err != nil {
		return err
	}

	v := a.Take(0)
	v.Pop(0).Destroy()
	return v
}

func builtinEval(a *Value) *Value {
	if err := expectList(BuiltinEval, a, false); err != nil {
		return err
	}

	x := a.Take(0)
	x.Type = ValueTypeSExpr
	return Eval(x)
}

func builtinJoin(a *Value) *Value {
	if a.Len() == 0 {
		return argError(a, ErrArgCount, "Function '%v' passed no arguments!", BuiltinJoin)
	}
	for _, cell := range a.cells {
		if cell.Type != ValueTypeQExpr {
			return argError(a, ErrArgType, "Function '%v' passed incorrect type!", BuiltinJoin)
		}
	}

	// the emptied lists stay in a and are released with it
	x := a.Pop(0)
	for _, y := range a.cells {
		x.cells = append(x.cells, y.cells...)
		y.cells = nil
	}
	a.Destroy()
	return x
}

func builtinOp(op Builtin, a *Value) *Value {
	if a.Len() == 0 {
		return argError(a, ErrArgCount, "Function '%v' passed no arguments!", op)
	}
	for _, cell := range a.cells {
		if cell.Type != ValueTypeNumber {
			return argError(a, ErrArgType, "Cannot operate on non-number")
		}
	}

	x := a.Pop(0)
	if op == BuiltinSub && a.Len() == 0 {
		x.num = -x.num
	}

	for _, y := range a.cells {
		if err := fold(op, x, y); err != nil {
			x.Destroy()
			a.Destroy()
			return err
		}
	}

	a.Destroy()
	return x
}

// fold accumulates y into x. It returns an error value when y can't be
// applied, leaving x untouched.
func fold(op Builtin, x *Value, y *Value) *Value {
	switch op {
	case BuiltinAdd:
		x.num += y.num
	case BuiltinSub:
		x.num -= y.num
	case BuiltinMul:
		x.num *= y.num
	case BuiltinDiv:
		if y.num == 0 {
			return newError(ErrDivisionByZero, "Division by zero")
		}
		x.num /= y.num
	case BuiltinMod:
		if y.num == 0 {
			return newError(ErrDivisionByZero, "Division by zero")
		}
		x.num %= y.num
	case BuiltinPow:
		if y.num < 0 {
			return newError(ErrNegativeExponent, "Negative exponent")
		}
		x.num = ipow(x.num, y.num)
	case BuiltinMin:
		if y.num < x.num {
			x.num = y.num
		}
	case BuiltinMax:
		if y.num > x.num {
			x.num = y.num
		}
	}
	return nil
}

// ipow raises base to exp by squaring, wrapping around on overflow like the
// other operators.
func ipow(base int64, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
