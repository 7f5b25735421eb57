package lexer

import (
	"fmt"
)

// closers maps the token that opens a group to the token that closes it.
var closers = map[TokenType]TokenType{
	TokenOpenExpression: TokenCloseExpression,
	TokenOpenQuote:      TokenCloseQuote,
}

// Token is a lexeme of the language: a paren or brace, a run of blanks, a
// newline, an integer, a word or an operator.
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

// NewToken creates a token of type tt. line and col are 1-based.
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the first rune of the token. A
// synthesized EOF token is at 0:0.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the token exactly as it was read, "-12" for a negative
// integer, "" for EOF.
func (t Token) Text() string {
	return t.lexeme
}

func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Closer returns the token type that ends the group t opens, or
// TokenInvalid if t does not open a group.
func (t Token) Closer() TokenType {
	if tt, ok := closers[t.tt]; ok {
		return tt
	}
	return TokenInvalid
}

// IsBlank is true for whitespace and newlines, which separate expressions
// and carry no value.
func (t Token) IsBlank() bool {
	return t.tt == TokenWhitespace || t.tt == TokenNewLine
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
