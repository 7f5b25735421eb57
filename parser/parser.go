package parser

import (
	"bytes"
	"io"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser builds a tagged parse tree out of the tokens of a lexer.
type Parser struct {
	lx   *lexer.Lexer
	root *ast.Node

	lastTok *lexer.Token
	nextTok *lexer.Token

	lastErr error
}

// New creates a parser that reads source code from r.
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.root = ast.NewRoot()
	p.lx = lexer.New(r)
	return p
}

// Parse consumes the whole input. The lexer goroutine is always stopped and
// waited for before Parse returns.
func (p *Parser) Parse() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	p.root.PushLeaf(ast.TagRegex, nil)

	for state := parserState(parserDefaultState); state != nil; {
		state = state(p)
	}

	p.lx.Stop()
	for range p.lx.Tokens() {
		// drain channel
	}

	err := <-errCh
	if p.lastErr != nil {
		return p.lastErr
	}
	if err != nil && err != lexer.ErrForceStopped {
		return err
	}

	p.root.PushLeaf(ast.TagRegex, nil)
	return nil
}

// Root returns the tree built by Parse.
func (p *Parser) Root() *ast.Node {
	return p.root
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.lastTok, p.nextTok = tok, nil
		return tok
	}

	tok := p.read()
	p.lastTok, p.nextTok = tok, nil
	return tok
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil

	default:
		if state := parserStateData(p.root)(p); state != nil {
			return state
		}
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserStateData(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.curr()
		if tok.IsBlank() {
			return nil
		}

		switch tok.Type() {
		case lexer.TokenInteger:
			root.PushLeaf(ast.TagNumber, tok)

		case lexer.TokenWord:
			root.PushLeaf(ast.TagWordSymbol, tok)

		case lexer.TokenOperator:
			root.PushLeaf(ast.TagCharSymbol, tok)

		case lexer.TokenOpenExpression, lexer.TokenOpenQuote:
			tag := ast.TagSExpr
			if tok.Is(lexer.TokenOpenQuote) {
				tag = ast.TagQExpr
			}
			group := root.Push(ast.New(tag, nil))
			group.PushLeaf(ast.TagChar, tok)
			if state := parserStateGroup(group, tok.Closer())(p); state != nil {
				return state
			}

		default:
			return parserErrorState(newError(ErrUnexpectedToken, tok))
		}

		return nil
	}
}

// parserStateGroup reads the contents of group up to its closing token. Only
// nested groups recurse.
func parserStateGroup(group *ast.Node, closer lexer.TokenType) parserState {
	return func(p *Parser) parserState {
		for {
			tok := p.next()

			switch tok.Type() {
			case lexer.TokenEOF:
				return parserErrorState(newError(ErrUnexpectedEOF, tok))

			case closer:
				group.PushLeaf(ast.TagChar, tok)
				return nil
			}

			if state := parserStateData(group)(p); state != nil {
				return state
			}
		}
	}
}

// Parse parses in and returns the root of its parse tree.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	err := p.Parse()
	if err != nil {
		return nil, err
	}

	return p.root, nil
}
