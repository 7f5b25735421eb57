package lispy

import (
	"errors"
	"fmt"
)

// Kinds of the errors carried by error values. Use errors.Is on Value.Err
// to tell them apart.
var (
	ErrInvalidNumber    = errors.New("invalid number")
	ErrNotSymbol        = errors.New("not a symbol")
	ErrUnknownFunction  = errors.New("unknown function")
	ErrArgCount         = errors.New("wrong number of arguments")
	ErrArgType          = errors.New("wrong argument type")
	ErrEmptyList        = errors.New("empty list")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
)

type evalError struct {
	kind error
	msg  string
}

func (e *evalError) Error() string {
	return e.msg
}

func (e *evalError) Unwrap() error {
	return e.kind
}

func newError(kind error, format string, args ...interface{}) *Value {
	return newErrorValue(&evalError{
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
	})
}

// argError destroys the arguments a built-in could not accept.
func argError(args *Value, kind error, format string, a ...interface{}) *Value {
	args.Destroy()
	return newError(kind, format, a...)
}
