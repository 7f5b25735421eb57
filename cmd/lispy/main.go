package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/lexer"
)

const appName = "lispy"

func main() {
	var (
		evalStr    string
		configPath string
		trace      bool
	)
	flag.StringVar(&evalStr, "e", "", "Evaluate the given expression and exit")
	flag.StringVar(&configPath, "config", "", "Read REPL settings from the given YAML file")
	flag.BoolVar(&trace, "trace", false, "Log every reduction to stderr")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
	if trace || cfg.Trace {
		lispy.SetLogger(log.New(os.Stderr, "eval: ", 0))
	}

	args := flag.Args()

	switch {
	case evalStr != "":
		os.Exit(runEvalString(os.Stdout, os.Stderr, evalStr))
	case len(args) > 0:
		os.Exit(runFile(os.Stdout, os.Stderr, args[0]))
	default:
		os.Exit(runREPL(cfg))
	}
}

// evalPrint evaluates src as a single S-expression and prints the result.
// Only parse errors are returned, evaluation errors are printed like any
// other value.
func evalPrint(w io.Writer, src string) error {
	v, err := lispy.EvalString(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	v.Destroy()
	return nil
}

func runEvalString(w io.Writer, errw io.Writer, src string) int {
	if err := evalPrint(w, src); err != nil {
		fmt.Fprintf(errw, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func runFile(w io.Writer, errw io.Writer, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errw, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	status := 0
	for _, input := range splitInputs(string(src)) {
		if err := evalPrint(w, input); err != nil {
			fmt.Fprintf(errw, "%s: %s: %v\n", appName, path, err)
			status = 1
		}
	}
	return status
}

// openGroups follows the groups an input opens and closes, one line at a
// time, so that each line is lexed once however long the input grows.
type openGroups struct {
	closers []lexer.TokenType
	broken  bool
}

// feed lexes the next line of the input and returns true while a group is
// still open. Input the parser would reject for another reason than a
// missing closer counts as complete, so the parse error gets reported.
func (g *openGroups) feed(line string) bool {
	if g.broken {
		return false
	}

	tokens, err := lexer.Tokenize([]byte(line))
	if err != nil {
		g.broken = true
		return false
	}

	for _, tok := range tokens {
		switch tok.Type() {
		case lexer.TokenOpenExpression, lexer.TokenOpenQuote:
			g.closers = append(g.closers, tok.Closer())
		case lexer.TokenCloseExpression, lexer.TokenCloseQuote:
			last := len(g.closers) - 1
			if last < 0 || g.closers[last] != tok.Type() {
				g.broken = true
				return false
			}
			g.closers = g.closers[:last]
		case lexer.TokenInvalid:
			g.broken = true
			return false
		}
	}

	return len(g.closers) > 0
}

// splitInputs cuts src into the inputs the REPL would have received: one
// per line, lines being joined while a group is left open. Blank inputs are
// dropped.
func splitInputs(src string) []string {
	inputs := []string{}

	var (
		lines []string
		group openGroups
	)
	for _, line := range strings.Split(src, "\n") {
		lines = append(lines, line)
		if group.feed(line) {
			continue
		}

		input := strings.Join(lines, "\n")
		if strings.TrimSpace(input) != "" {
			inputs = append(inputs, input)
		}
		lines = lines[:0]
		group = openGroups{}
	}

	if len(lines) > 0 {
		inputs = append(inputs, strings.Join(lines, "\n"))
	}
	return inputs
}

func runREPL(cfg *Config) int {
	fmt.Print(cfg.Banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		input, ok := readInput(ln, cfg)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := evalPrint(os.Stdout, input); err != nil {
			fmt.Println(err)
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

// readInput reads lines until they form a complete input. It returns false
// when the user closes the input with Ctrl+D.
func readInput(ln *liner.State, cfg *Config) (string, bool) {
	var (
		lines []string
		group openGroups
	)

	prompt := cfg.Prompt
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", true
			}
			return "", false
		}

		lines = append(lines, line)
		if !group.feed(line) {
			return strings.Join(lines, "\n"), true
		}
		prompt = cfg.Continuation
	}
}
