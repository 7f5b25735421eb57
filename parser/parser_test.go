package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lispy/ast"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `{}`,
			Out: `{}`,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 3 -3 56789`,
			Out: `1 3 -3 56789`,
		},
		{
			In:  `{1 2 3}`,
			Out: `{1 2 3}`,
		},
		{
			In:  "{1\n\t 2\n\n3\n}",
			Out: "{1 2 3}",
		},
		{
			In:  `{1 {1 2 3} 3} 4 {5 6} 7 8`,
			Out: `{1 {1 2 3} 3} 4 {5 6} 7 8`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
		{
			In:  `(1 2 {} {3{4{5}}} 6 (7))`,
			Out: `(1 2 {} {3 {4 {5}}} 6 (7))`,
		},
		{
			In:  `({(1{2})}3)`,
			Out: `({(1 {2})} 3)`,
		},
		{
			In:  `(+ 1 2 3 4)`,
			Out: `(+ 1 2 3 4)`,
		},
		{
			In:  `{+ 1 2 3 4}`,
			Out: `{+ 1 2 3 4}`,
		},
		{
			In:  "+ 1 (* 2\n\t3)",
			Out: `+ 1 (* 2 3)`,
		},
		{
			In:  `(eval (head {(+ 1 2) (+ 10 20)}))`,
			Out: `(eval (head {(+ 1 2) (+ 10 20)}))`,
		},
		{
			In:  `(join {1} {2} {3}) (list -1 -2) (foo bar_2)`,
			Out: `(join {1} {2} {3}) (list -1 -2) (foo bar_2)`,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err)
		assert.NotNil(t, root)

		s := ast.Encode(root)
		assert.Equal(t, testCases[i].Out, string(s))
	}
}

func TestParserTags(t *testing.T) {
	root, err := Parse([]byte(`(- 5) {list}`))
	assert.NoError(t, err)

	assert.Equal(t, ast.TagRoot, root.Tag())

	children := root.Children()
	if !assert.Len(t, children, 4) {
		return
	}
	assert.Equal(t, ast.TagRegex, children[0].Tag())
	assert.Equal(t, ast.TagSExpr, children[1].Tag())
	assert.Equal(t, ast.TagQExpr, children[2].Tag())
	assert.Equal(t, ast.TagRegex, children[3].Tag())

	sexpr := children[1].Children()
	if assert.Len(t, sexpr, 4) {
		assert.Equal(t, ast.TagChar, sexpr[0].Tag())
		assert.Equal(t, "(", sexpr[0].Contents())
		assert.Equal(t, ast.TagCharSymbol, sexpr[1].Tag())
		assert.Equal(t, "-", sexpr[1].Contents())
		assert.Equal(t, ast.TagNumber, sexpr[2].Tag())
		assert.Equal(t, "5", sexpr[2].Contents())
		assert.Equal(t, ast.TagChar, sexpr[3].Tag())
		assert.Equal(t, ")", sexpr[3].Contents())
	}

	qexpr := children[2].Children()
	if assert.Len(t, qexpr, 3) {
		assert.Equal(t, ast.TagWordSymbol, qexpr[1].Tag())
		assert.Equal(t, "list", qexpr[1].Contents())
		assert.Equal(t, children[2], qexpr[1].Parent())
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Line int
		Col  int
	}{
		{
			In:   `(}`,
			Err:  ErrUnexpectedToken,
			Line: 1, Col: 2,
		},
		{
			In:   `{)`,
			Err:  ErrUnexpectedToken,
			Line: 1, Col: 2,
		},
		{
			In:   `1 )}`,
			Err:  ErrUnexpectedToken,
			Line: 1, Col: 3,
		},
		{
			In:   `+}`,
			Err:  ErrUnexpectedToken,
			Line: 1, Col: 2,
		},
		{
			In:   `(+ 1 [2])`,
			Err:  ErrUnexpectedToken,
			Line: 1, Col: 6,
		},
		{
			In:   `(`,
			Err:  ErrUnexpectedEOF,
			Line: 1, Col: 2,
		},
		{
			In: `(1 2 3 4
			(5 6 7 8
			(4 6})
			)`,
			Err:  ErrUnexpectedToken,
			Line: 3, Col: 8,
		},
		{
			In: `(1 2 3 4
			{5 6 7 8`,
			Err:  ErrUnexpectedEOF,
			Line: 2, Col: 12,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.Nil(t, root)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "%q: %v", testCases[i].In, err)

		var perr *Error
		if assert.True(t, errors.As(err, &perr)) {
			assert.Equal(t, testCases[i].Line, perr.Line, testCases[i].In)
			assert.Equal(t, testCases[i].Col, perr.Col, testCases[i].In)
		}
	}
}

func TestParserErrorMessage(t *testing.T) {
	_, err := Parse([]byte(`(+ 1 ]`))
	assert.EqualError(t, err, `1:6: unexpected token "]"`)

	_, err = Parse([]byte(`{1 2`))
	assert.EqualError(t, err, `1:5: unexpected EOF`)
}

func TestParserReader(t *testing.T) {
	p := New(strings.NewReader("(tail {1 2 3})\n(head {4})"))
	assert.NoError(t, p.Parse())
	assert.Equal(t, "(tail {1 2 3}) (head {4})", string(ast.Encode(p.Root())))
}

func TestParserLongGroup(t *testing.T) {
	const n = 1000000

	for _, delims := range [][2]string{{"(", ")"}, {"{", "}"}} {
		in := delims[0] + "+" + strings.Repeat(" 1", n) + delims[1]

		root, err := Parse([]byte(in))
		if !assert.NoError(t, err) {
			continue
		}

		children := root.Children()
		if assert.Len(t, children, 3) {
			// delimiters, the symbol and n numbers
			assert.Len(t, children[1].Children(), n+3)
		}
	}
}
