package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispy/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error describes where and why parsing failed.
type Error struct {
	Err error

	Line int
	Col  int
	Text string
}

func newError(err error, tok *lexer.Token) *Error {
	line, col := tok.Pos()
	return &Error{
		Err:  err,
		Line: line,
		Col:  col,
		Text: tok.Text(),
	}
}

func (e *Error) Error() string {
	if e.Err == ErrUnexpectedEOF {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}
