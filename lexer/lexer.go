package lexer

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"text/scanner"
)

// ErrForceStopped is returned by Scan when the lexer was stopped before
// reaching the end of its input.
var ErrForceStopped = errors.New("lexer was stopped")

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isOpenQuote  = isTokenType(TokenOpenQuote)
	isCloseQuote = isTokenType(TokenCloseQuote)

	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)

	isWord     = isTokenType(TokenWord)
	isInteger  = isTokenType(TokenInteger)
	isOperator = isTokenType(TokenOperator)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	done     chan struct{}
	stopOnce sync.Once

	buf []rune

	start  int
	offset int
	lines  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected. The channel is closed when Scan returns.
func (lx *Lexer) Tokens() <-chan Token {
	return lx.tokens
}

// Stop makes a running Scan return ErrForceStopped as soon as it tries to
// emit its next token. It is safe to call Stop more than once, and after Scan
// has returned.
func (lx *Lexer) Stop() {
	lx.stopOnce.Do(func() {
		close(lx.done)
	})
}

func (lx *Lexer) stopped() bool {
	select {
	case <-lx.done:
		return true
	default:
		return false
	}
}

// Scan starts scanning the reader for tokens.
func (lx *Lexer) Scan() error {
	defer close(lx.tokens)

	for state := lexState(lexDefaultState); state != nil; {
		if lx.stopped() {
			return ErrForceStopped
		}
		state = state(lx)
	}

	return nil
}

func (lx *Lexer) emit(tt TokenType) {
	tok := Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	}

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}

	select {
	case lx.tokens <- tok:
	case <-lx.done:
	}
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexEOF
	}

	switch {

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isOpenQuote(r):
		return lexEmit(TokenOpenQuote)
	case isCloseQuote(r):
		return lexEmit(TokenCloseQuote)

	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	case isInteger(r):
		return lexCollectStream(TokenInteger)
	case isMinusSign(r) && isInteger(lx.peek()):
		return lexCollectStream(TokenInteger)
	case isOperator(r):
		return lexEmit(TokenOperator)
	case isWordStart(r):
		return lexCollectStream(TokenWord)

	default:
		return lexEmit(TokenInvalid)
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				break
			}
		}
		return lexEmit(tt)
	}
}

func lexEOF(lx *Lexer) lexState {
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it.
// Characters that do not belong to the language are returned as
// TokenInvalid, the last token is always TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.Tokens() {
			tokens = append(tokens, tok)
		}
		close(done)
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
