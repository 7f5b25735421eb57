package lispy

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "eval: ", 0)

// SetLogger makes the evaluator trace every reduction to l. A nil logger
// turns tracing off.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Eval reduces v and returns the result, taking ownership of v. Values other
// than S-expressions evaluate to themselves.
func Eval(v *Value) *Value {
	if v.Type == ValueTypeSExpr {
		return evalSExpr(v)
	}
	return v
}

func evalSExpr(v *Value) *Value {
	for i := range v.cells {
		v.cells[i] = Eval(v.cells[i])
		if v.cells[i].Type == ValueTypeError {
			logger.Printf("%v: %v", v, v.cells[i])
			return v.Take(i)
		}
	}

	switch v.Len() {
	case 0:
		return v
	case 1:
		return v.Take(0)
	}

	f := v.Pop(0)
	if f.Type != ValueTypeSymbol {
		logger.Printf("%v %v: not a symbol", f, v)
		f.Destroy()
		v.Destroy()
		return newError(ErrNotSymbol, "S-expression does not start with symbol.")
	}

	logger.Printf("%v %v", f, v)
	result := call(LookupBuiltin(f.Sym()), v)
	logger.Printf("%v -> %v", f, result)

	f.Destroy()
	return result
}
