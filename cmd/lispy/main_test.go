package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInputs(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{``, []string{}},
		{"\n\n", []string{}},
		{"+ 1 2\n(head {1 2})", []string{"+ 1 2", "(head {1 2})"}},
		{"(+ 1\n  2)\n5\n", []string{"(+ 1\n  2)", "5"}},
		{"{1\n{2\n}}", []string{"{1\n{2\n}}"}},
		{"1\n(+ 1", []string{"1", "(+ 1"}},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, splitInputs(testCases[i].In), testCases[i].In)
	}
}

func TestOpenGroups(t *testing.T) {
	testCases := []struct {
		Lines []string
		Open  []bool
	}{
		{[]string{"+ 1 2"}, []bool{false}},
		{[]string{"(+ 1", "2", ")"}, []bool{true, true, false}},
		{[]string{"{1 (2", "}"}, []bool{true, false}},
		{[]string{"(1 ]", "("}, []bool{false, false}},
		{[]string{") (", "1"}, []bool{false, false}},
		{[]string{"{(", ")", "", "}"}, []bool{true, true, true, false}},
	}

	for i := range testCases {
		var group openGroups
		for j, line := range testCases[i].Lines {
			assert.Equal(t, testCases[i].Open[j], group.feed(line), "%q", testCases[i].Lines[:j+1])
		}
	}
}

func TestSplitInputsLongGroup(t *testing.T) {
	const n = 50000

	src := "(+" + strings.Repeat("\n 1", n) + "\n)\n(- 3)"

	inputs := splitInputs(src)
	if assert.Len(t, inputs, 2) {
		assert.Equal(t, "(- 3)", inputs[1])

		var out bytes.Buffer
		assert.NoError(t, evalPrint(&out, inputs[0]))
		assert.Equal(t, "50000\n", out.String())
	}
}

func TestRunEvalString(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, 0, runEvalString(&out, &errOut, `(eval (head {(+ 1 2) (+ 10 20)}))`))
	assert.Equal(t, "3\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	assert.Equal(t, 0, runEvalString(&out, &errOut, `(/ 10 0)`))
	assert.Equal(t, "Error: Division by zero\n", out.String())

	out.Reset()
	assert.Equal(t, 1, runEvalString(&out, &errOut, `(+ 1 2`))
	assert.Empty(t, out.String())
	assert.Equal(t, "lispy: 1:7: unexpected EOF\n", errOut.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.lspy")
	src := "(list 1 2 3)\n\n(join {1}\n      {2})\n(1 2)\n(+ 1 ]\n- 5\n"
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var out, errOut bytes.Buffer
	assert.Equal(t, 1, runFile(&out, &errOut, path))
	assert.Equal(t, "{1 2 3}\n{1 2}\nError: S-expression does not start with symbol.\n-5\n", out.String())
	assert.Contains(t, errOut.String(), `unexpected token "]"`)

	errOut.Reset()
	assert.Equal(t, 1, runFile(&out, &errOut, filepath.Join(t.TempDir(), "missing.lspy")))
	assert.Contains(t, errOut.String(), "cannot read")
}
